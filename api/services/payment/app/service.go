package app

import (
	"fmt"
	"log/slog"

	stripe "github.com/stripe/stripe-go"

	config "github.com/webcore-labs/stripe-gateway/api/config"
	gw "github.com/webcore-labs/stripe-gateway/api/services/payment/gateway"
)

// Service defines the payment operations exposed to the transport layer.
// Every method returns either a success payload or an error: contract
// violations surface as the sentinel errors in errors.go, expected provider
// failures as *Failure. Never both a payload and an error.
type Service interface {
	Charge(req ChargeRequest) (ChargeResult, error)
	CreateCustomer(req CustomerRequest) (CustomerResult, error)
	UpdateSubscription(customerID string, upd SubscriptionUpdate) (stripe.Subscription, error)
	CancelSubscription(customerID string) (stripe.Subscription, error)
	RetrieveCustomer(customerID string) (stripe.Customer, error)
}

// AuditStore records successful provider operations. Recording is best-effort:
// a failed write is logged but never turns a successful provider call into a
// caller-visible failure.
type AuditStore interface {
	RecordCharge(chargeID string, amount int64, currency, customerID, description string) error
	RecordCustomer(customerID, email, planID string) error
}

// Options carries the adapter defaults resolved once at startup.
type Options struct {
	// Currency applied when a charge request does not set one.
	Currency string
	// Fields projects charge results into the caller's local field names.
	Fields FieldMap
}

// serviceImpl is a concrete implementation.
type serviceImpl struct {
	gw    gw.PaymentGateway
	store AuditStore // nil disables audit recording
	opts  Options
	log   *slog.Logger
}

// NewService wires a payment service. store may be nil; zero-value Options
// fall back to the documented defaults.
func NewService(g gw.PaymentGateway, store AuditStore, opts Options, log *slog.Logger) Service {
	if opts.Currency == "" {
		opts.Currency = config.DefaultCurrency
	}
	if opts.Fields == nil {
		opts.Fields = DefaultFieldMap()
	}
	if log == nil {
		log = slog.Default()
	}
	return serviceImpl{gw: g, store: store, opts: opts, log: log}
}

// invoke runs one provider call and classifies its outcome. A failure is
// logged exactly once with its kind and the raw SDK detail; the caller only
// ever sees the user-safe Failure message.
func invoke[T any](log *slog.Logger, op string, call func() (T, error)) (T, error) {
	v, err := call()
	if err != nil {
		f := classify(err)
		log.Error("payment provider call failed",
			slog.String("op", op),
			slog.String("kind", string(f.Kind)),
			slog.String("detail", err.Error()))
		var zero T
		return zero, f
	}
	return v, nil
}

// record persists an audit row when a store is configured.
func (s serviceImpl) record(op string, fn func() error) {
	if s.store == nil {
		return
	}
	if err := fn(); err != nil {
		s.log.Error("failed to record audit row", slog.String("op", op), slog.String("detail", err.Error()))
	}
}

// Charge charges a card token or a stored customer and returns the provider
// response projected through the configured field map.
func (s serviceImpl) Charge(req ChargeRequest) (ChargeResult, error) {
	if req.Token == "" && req.CustomerID == "" {
		return nil, ErrMissingPaymentSource
	}
	if req.Token != "" && req.CustomerID != "" {
		return nil, ErrAmbiguousPaymentSource
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	currency := req.Currency
	if currency == "" {
		currency = s.opts.Currency
	}
	params := &stripe.ChargeParams{
		Amount:   stripe.Int64(minorUnits(req.Amount)),
		Currency: stripe.String(currency),
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	if req.Token != "" {
		if err := params.SetSource(req.Token); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMissingPaymentSource, err)
		}
	} else {
		params.Customer = stripe.String(req.CustomerID)
	}

	ch, err := invoke(s.log, "charge.create", func() (stripe.Charge, error) {
		return s.gw.CreateCharge(params)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("charge succeeded", slog.String("charge_id", ch.ID))
	s.record("charge.create", func() error {
		customerID := req.CustomerID
		if ch.Customer != nil && ch.Customer.ID != "" {
			customerID = ch.Customer.ID
		}
		return s.store.RecordCharge(ch.ID, ch.Amount, string(ch.Currency), customerID, req.Description)
	})
	return ChargeResult(s.opts.Fields.Project(chargeDocument(ch))), nil
}

// CreateCustomer stores a customer against the card token, optionally
// subscribing it to a plan.
func (s serviceImpl) CreateCustomer(req CustomerRequest) (CustomerResult, error) {
	if req.Token == "" {
		return CustomerResult{}, ErrMissingCardToken
	}

	params := &stripe.CustomerParams{}
	if err := params.SetSource(req.Token); err != nil {
		return CustomerResult{}, fmt.Errorf("%w: %v", ErrMissingCardToken, err)
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	if req.Email != "" {
		params.Email = stripe.String(req.Email)
	}

	cust, err := invoke(s.log, "customer.create", func() (stripe.Customer, error) {
		return s.gw.CreateCustomer(params)
	})
	if err != nil {
		return CustomerResult{}, err
	}

	if req.PlanID != "" {
		// The SDK dropped customer-create-with-plan; subscribe in a second call.
		subParams := &stripe.SubscriptionParams{
			Customer: stripe.String(cust.ID),
			Items:    []*stripe.SubscriptionItemsParams{{Plan: stripe.String(req.PlanID)}},
		}
		if _, err := invoke(s.log, "sub.create", func() (stripe.Subscription, error) {
			return s.gw.CreateSubscription(subParams)
		}); err != nil {
			return CustomerResult{}, err
		}
	}

	s.log.Info("customer created", slog.String("customer_id", cust.ID))
	s.record("customer.create", func() error {
		return s.store.RecordCustomer(cust.ID, req.Email, req.PlanID)
	})
	return CustomerResult{CustomerID: cust.ID}, nil
}
