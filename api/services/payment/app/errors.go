package app

import (
	"errors"
	"net"
	"net/url"

	stripe "github.com/stripe/stripe-go"
)

// Contract errors for the payment app layer. These flag programmer/caller
// mistakes and are returned before any provider call is made. Expected runtime
// failures are returned as *Failure instead, never as one of these.
var (

	// ErrMissingPaymentSource indicates a charge request with neither a card token nor a stored customer id.
	ErrMissingPaymentSource = errors.New("charge requires a card token or a stored customer id")
	// ErrAmbiguousPaymentSource indicates a charge request carrying both a card token and a stored customer id.
	ErrAmbiguousPaymentSource = errors.New("charge accepts either a card token or a stored customer id, not both")
	// ErrInvalidAmount indicates a charge amount that is absent or not a positive number.
	ErrInvalidAmount = errors.New("charge amount must be a positive number")
	// ErrMissingCardToken indicates a customer-creation request without a card token.
	ErrMissingCardToken = errors.New("customer creation requires a card token")
	// ErrMissingCustomerID indicates a customer/subscription operation without a customer id.
	ErrMissingCustomerID = errors.New("customer id is required")
	// ErrMissingPlanID indicates a subscription update without a plan id.
	ErrMissingPlanID = errors.New("subscription update requires a plan id")
)

// IsValidationError reports whether err is one of the contract errors above.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrMissingPaymentSource,
		ErrAmbiguousPaymentSource,
		ErrInvalidAmount,
		ErrMissingCardToken,
		ErrMissingCustomerID,
		ErrMissingPlanID,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ErrorKind is the fixed classification of an expected provider failure.
type ErrorKind string

const (
	KindCard           ErrorKind = "card_error"
	KindInvalidRequest ErrorKind = "invalid_request"
	KindAuthentication ErrorKind = "authentication"
	KindConnection     ErrorKind = "connection"
	KindProcessor      ErrorKind = "processor"
	KindUnknown        ErrorKind = "unknown"
)

// Canned user-safe messages for the kinds whose provider detail must not leak.
const (
	msgAuthentication = "payment processor API key error."
	msgConnection     = "network communication with payment processor failed, try again later."
	msgProcessor      = "payment processor error, try again later."
	msgUnknown        = "there was an error, try again later."
)

// Failure is an expected runtime failure of a provider call. Message is always
// safe to show to the caller; the raw provider error only ever reaches the log.
type Failure struct {
	Kind    ErrorKind
	Message string
}

func (f *Failure) Error() string { return f.Message }

// classify maps whatever the Stripe SDK raised onto the fixed taxonomy. The
// order mirrors the SDK's own error specificity, most specific first. Card and
// invalid-request failures pass the provider's human message through verbatim.
func classify(err error) *Failure {
	var se *stripe.Error
	if errors.As(err, &se) {
		switch se.Type {
		case stripe.ErrorTypeCard:
			return &Failure{Kind: KindCard, Message: se.Msg}
		case stripe.ErrorTypeInvalidRequest:
			return &Failure{Kind: KindInvalidRequest, Message: se.Msg}
		case stripe.ErrorTypeAuthentication:
			return &Failure{Kind: KindAuthentication, Message: msgAuthentication}
		case stripe.ErrorTypeAPIConnection:
			return &Failure{Kind: KindConnection, Message: msgConnection}
		default:
			// api_error, rate_limit and the rest are provider-side faults.
			return &Failure{Kind: KindProcessor, Message: msgProcessor}
		}
	}
	// The SDK hands transport failures (refused connections, dial timeouts)
	// back unwrapped, so they never arrive as a typed provider error.
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &Failure{Kind: KindConnection, Message: msgConnection}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &Failure{Kind: KindConnection, Message: msgConnection}
	}
	return &Failure{Kind: KindUnknown, Message: msgUnknown}
}
