package app

import (
	"context"
	"log/slog"
	"sync"

	stripe "github.com/stripe/stripe-go"
)

// fakeGateway is a hand-rolled PaymentGateway stub. It captures the params of
// every call and returns whatever the test configured.
type fakeGateway struct {
	calls []string

	chargeParams *stripe.ChargeParams
	charge       stripe.Charge
	chargeErr    error

	customerParams *stripe.CustomerParams
	customer       stripe.Customer
	customerErr    error

	getCustomer stripe.Customer
	getErr      error

	subParams *stripe.SubscriptionParams
	sub       stripe.Subscription
	subErr    error

	updateID string
	cancelID string
}

func (f *fakeGateway) CreateCharge(params *stripe.ChargeParams) (stripe.Charge, error) {
	f.calls = append(f.calls, "charge.create")
	f.chargeParams = params
	return f.charge, f.chargeErr
}

func (f *fakeGateway) CreateCustomer(params *stripe.CustomerParams) (stripe.Customer, error) {
	f.calls = append(f.calls, "customer.create")
	f.customerParams = params
	return f.customer, f.customerErr
}

func (f *fakeGateway) GetCustomer(id string) (stripe.Customer, error) {
	f.calls = append(f.calls, "customer.get")
	return f.getCustomer, f.getErr
}

func (f *fakeGateway) CreateSubscription(params *stripe.SubscriptionParams) (stripe.Subscription, error) {
	f.calls = append(f.calls, "sub.create")
	f.subParams = params
	return f.sub, f.subErr
}

func (f *fakeGateway) UpdateSubscription(id string, params *stripe.SubscriptionParams) (stripe.Subscription, error) {
	f.calls = append(f.calls, "sub.update")
	f.updateID = id
	f.subParams = params
	return f.sub, f.subErr
}

func (f *fakeGateway) CancelSubscription(id string) (stripe.Subscription, error) {
	f.calls = append(f.calls, "sub.cancel")
	f.cancelID = id
	return f.sub, f.subErr
}

type recordedCharge struct {
	chargeID    string
	amount      int64
	currency    string
	customerID  string
	description string
}

type recordedCustomer struct {
	customerID string
	email      string
	planID     string
}

// fakeStore is an in-memory AuditStore.
type fakeStore struct {
	charges   []recordedCharge
	customers []recordedCustomer
	err       error
}

func (f *fakeStore) RecordCharge(chargeID string, amount int64, currency, customerID, description string) error {
	if f.err != nil {
		return f.err
	}
	f.charges = append(f.charges, recordedCharge{chargeID, amount, currency, customerID, description})
	return nil
}

func (f *fakeStore) RecordCustomer(customerID, email, planID string) error {
	if f.err != nil {
		return f.err
	}
	f.customers = append(f.customers, recordedCustomer{customerID, email, planID})
	return nil
}

// recordingHandler captures slog records so tests can assert on log volume.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) countLevel(level slog.Level) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.Level == level {
			n++
		}
	}
	return n
}

func newTestLogger() (*slog.Logger, *recordingHandler) {
	h := &recordingHandler{}
	return slog.New(h), h
}
