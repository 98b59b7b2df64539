package gateway

import stripe "github.com/stripe/stripe-go"

// PaymentGateway abstracts the Stripe SDK operations needed by the app layer.
// Methods return values (not pointers) to respect the project's preference
// to avoid pointer types in public interfaces.
type PaymentGateway interface {
	CreateCharge(params *stripe.ChargeParams) (stripe.Charge, error)
	CreateCustomer(params *stripe.CustomerParams) (stripe.Customer, error)
	GetCustomer(id string) (stripe.Customer, error)
	CreateSubscription(params *stripe.SubscriptionParams) (stripe.Subscription, error)
	UpdateSubscription(id string, params *stripe.SubscriptionParams) (stripe.Subscription, error)
	CancelSubscription(id string) (stripe.Subscription, error)
}
