package app

import (
	"log/slog"

	stripe "github.com/stripe/stripe-go"
)

// UpdateSubscription applies create-or-replace semantics: an active
// subscription is moved to the new plan (optionally prorating), otherwise a
// new subscription is created. The raw provider subscription state is returned
// unprojected.
func (s serviceImpl) UpdateSubscription(customerID string, upd SubscriptionUpdate) (stripe.Subscription, error) {
	if customerID == "" {
		return stripe.Subscription{}, ErrMissingCustomerID
	}
	if upd.PlanID == "" {
		return stripe.Subscription{}, ErrMissingPlanID
	}

	cust, err := invoke(s.log, "customer.get", func() (stripe.Customer, error) {
		return s.gw.GetCustomer(customerID)
	})
	if err != nil {
		return stripe.Subscription{}, err
	}

	var proration *string
	if upd.Prorate != nil {
		if *upd.Prorate {
			proration = stripe.String("create_prorations")
		} else {
			proration = stripe.String("none")
		}
	}

	if existing, ok := activeSubscription(cust); ok {
		item := &stripe.SubscriptionItemsParams{Plan: stripe.String(upd.PlanID)}
		if existing.Items != nil && len(existing.Items.Data) > 0 && existing.Items.Data[0] != nil {
			item.ID = stripe.String(existing.Items.Data[0].ID)
		}
		params := &stripe.SubscriptionParams{
			Items:             []*stripe.SubscriptionItemsParams{item},
			ProrationBehavior: proration,
		}
		return invoke(s.log, "sub.update", func() (stripe.Subscription, error) {
			return s.gw.UpdateSubscription(existing.ID, params)
		})
	}

	params := &stripe.SubscriptionParams{
		Customer:          stripe.String(customerID),
		Items:             []*stripe.SubscriptionItemsParams{{Plan: stripe.String(upd.PlanID)}},
		ProrationBehavior: proration,
	}
	return invoke(s.log, "sub.create", func() (stripe.Subscription, error) {
		return s.gw.CreateSubscription(params)
	})
}

// CancelSubscription cancels the customer's active subscription. A customer
// without one is a safe no-op returning a zero subscription.
func (s serviceImpl) CancelSubscription(customerID string) (stripe.Subscription, error) {
	if customerID == "" {
		return stripe.Subscription{}, ErrMissingCustomerID
	}

	cust, err := invoke(s.log, "customer.get", func() (stripe.Customer, error) {
		return s.gw.GetCustomer(customerID)
	})
	if err != nil {
		return stripe.Subscription{}, err
	}

	existing, ok := activeSubscription(cust)
	if !ok {
		return stripe.Subscription{}, nil
	}
	return invoke(s.log, "sub.cancel", func() (stripe.Subscription, error) {
		return s.gw.CancelSubscription(existing.ID)
	})
}

// RetrieveCustomer returns the raw provider customer record, unprojected.
func (s serviceImpl) RetrieveCustomer(customerID string) (stripe.Customer, error) {
	if customerID == "" {
		return stripe.Customer{}, ErrMissingCustomerID
	}
	cust, err := invoke(s.log, "customer.get", func() (stripe.Customer, error) {
		return s.gw.GetCustomer(customerID)
	})
	if err != nil {
		return stripe.Customer{}, err
	}
	s.log.Info("customer retrieved", slog.String("customer_id", cust.ID))
	return cust, nil
}
