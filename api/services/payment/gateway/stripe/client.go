package stripegw

import (
	stripe "github.com/stripe/stripe-go"
	"github.com/stripe/stripe-go/charge"
	"github.com/stripe/stripe-go/customer"
	"github.com/stripe/stripe-go/sub"

	gw "github.com/webcore-labs/stripe-gateway/api/services/payment/gateway"
)

// SetKey configures the Stripe SDK key once during bootstrap.
func SetKey(key string) { stripe.Key = key }

// client is the Stripe SDK-backed implementation of the gateway.
type client struct{}

// New returns a PaymentGateway backed by the official Stripe SDK.
func New() gw.PaymentGateway { return client{} }

func (client) CreateCharge(params *stripe.ChargeParams) (stripe.Charge, error) {
	chPtr, err := charge.New(params)
	if err != nil {
		return stripe.Charge{}, err
	}
	if chPtr == nil {
		return stripe.Charge{}, nil
	}
	return *chPtr, nil
}

func (client) CreateCustomer(params *stripe.CustomerParams) (stripe.Customer, error) {
	custPtr, err := customer.New(params)
	if err != nil {
		return stripe.Customer{}, err
	}
	if custPtr == nil {
		return stripe.Customer{}, nil
	}
	return *custPtr, nil
}

func (client) GetCustomer(id string) (stripe.Customer, error) {
	custPtr, err := customer.Get(id, nil)
	if err != nil {
		return stripe.Customer{}, err
	}
	if custPtr == nil {
		return stripe.Customer{}, nil
	}
	return *custPtr, nil
}

func (client) CreateSubscription(params *stripe.SubscriptionParams) (stripe.Subscription, error) {
	subPtr, err := sub.New(params)
	if err != nil {
		return stripe.Subscription{}, err
	}
	if subPtr == nil {
		return stripe.Subscription{}, nil
	}
	return *subPtr, nil
}

func (client) UpdateSubscription(id string, params *stripe.SubscriptionParams) (stripe.Subscription, error) {
	subPtr, err := sub.Update(id, params)
	if err != nil {
		return stripe.Subscription{}, err
	}
	if subPtr == nil {
		return stripe.Subscription{}, nil
	}
	return *subPtr, nil
}

func (client) CancelSubscription(id string) (stripe.Subscription, error) {
	subPtr, err := sub.Cancel(id, nil)
	if err != nil {
		return stripe.Subscription{}, err
	}
	if subPtr == nil {
		return stripe.Subscription{}, nil
	}
	return *subPtr, nil
}
