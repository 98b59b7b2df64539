package app

import (
	"encoding/json"
	"math"
	"time"

	stripe "github.com/stripe/stripe-go"
)

// minorUnits converts a major-unit amount to the provider's integer minor
// units (cents for two-decimal currencies).
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// isSubscriptionCancelled returns true if the subscription is cancelled or past its cancel timestamp
func isSubscriptionCancelled(sub stripe.Subscription) bool {
	now := time.Now().Unix()
	if sub.CancelAt != 0 && now > sub.CancelAt {
		return true
	}
	if sub.Status == stripe.SubscriptionStatusCanceled {
		return true
	}
	return false
}

// activeSubscription returns the customer's first subscription that is not
// cancelled, if any.
func activeSubscription(cust stripe.Customer) (stripe.Subscription, bool) {
	if cust.Subscriptions == nil {
		return stripe.Subscription{}, false
	}
	for _, sub := range cust.Subscriptions.Data {
		if sub == nil {
			continue
		}
		if !isSubscriptionCancelled(*sub) {
			return *sub, true
		}
	}
	return stripe.Subscription{}, false
}

// chargeDocument renders a charge as a generic string-keyed mapping for field
// projection by round-tripping the struct through encoding/json. Expandable
// sub-objects (source, customer) keep their own marshalling, so nested
// projection paths resolve against the same keys the provider uses.
func chargeDocument(ch stripe.Charge) map[string]interface{} {
	doc := map[string]interface{}{}
	b, err := json.Marshal(ch)
	if err != nil {
		return doc
	}
	_ = json.Unmarshal(b, &doc)
	return doc
}
