package app

// ChargeRequest describes a one-off charge. Amount is in major currency units
// (e.g. dollars) and is converted to integer minor units before transmission.
// Exactly one of Token and CustomerID must be set.
type ChargeRequest struct {
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency,omitempty"`
	Description string  `json:"description,omitempty"`
	Token       string  `json:"token,omitempty"`
	CustomerID  string  `json:"customer_id,omitempty"`
}

// CustomerRequest describes a stored-customer creation. Token is required;
// everything else is forwarded only when present.
type CustomerRequest struct {
	Token       string `json:"token"`
	Description string `json:"description,omitempty"`
	Email       string `json:"email,omitempty"`
	PlanID      string `json:"plan_id,omitempty"`
}

// SubscriptionUpdate replaces a customer's plan. Prorate is forwarded to the
// provider only when set.
type SubscriptionUpdate struct {
	PlanID  string `json:"plan_id"`
	Prorate *bool  `json:"prorate,omitempty"`
}

// ChargeResult is the charge response projected through the configured field
// map, keyed by the caller's local field names.
type ChargeResult map[string]interface{}

// CustomerResult carries the provider identifier of a newly created customer.
type CustomerResult struct {
	CustomerID string `json:"customer_id"`
}
