package paymentdb

import (
	"fmt"

	"github.com/webcore-labs/stripe-gateway/api/database"
)

// EnsureSchema creates the audit tables if they do not exist. Called once at
// bootstrap when a database is configured.
func EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS payment_charge (
			charge_id   TEXT PRIMARY KEY,
			amount      BIGINT NOT NULL,
			currency    TEXT NOT NULL,
			customer_id TEXT,
			description TEXT,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS payment_customer (
			customer_id TEXT PRIMARY KEY,
			email       TEXT,
			plan_id     TEXT,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range statements {
		if _, err := database.GetDB().Exec(stmt); err != nil {
			return fmt.Errorf("failed to ensure audit schema: %w", err)
		}
	}
	return nil
}

// InsertCharge records one successful charge. Amount is in minor units, as
// transmitted to the provider.
func InsertCharge(chargeID string, amount int64, currency, customerID, description string) error {
	_, err := database.GetDB().Exec(
		`INSERT INTO payment_charge (charge_id, amount, currency, customer_id, description)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (charge_id) DO NOTHING`,
		chargeID, amount, currency, customerID, description,
	)
	return err
}

// InsertCustomer records one successful customer creation.
func InsertCustomer(customerID, email, planID string) error {
	_, err := database.GetDB().Exec(
		`INSERT INTO payment_customer (customer_id, email, plan_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (customer_id) DO NOTHING`,
		customerID, email, planID,
	)
	return err
}

// Recorder adapts the package-level insert funcs to the app layer's AuditStore.
type Recorder struct{}

func (Recorder) RecordCharge(chargeID string, amount int64, currency, customerID, description string) error {
	return InsertCharge(chargeID, amount, currency, customerID, description)
}

func (Recorder) RecordCustomer(customerID, email, planID string) error {
	return InsertCustomer(customerID, email, planID)
}
