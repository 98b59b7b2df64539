package router

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/webcore-labs/stripe-gateway/api/router/response"
	paymentapp "github.com/webcore-labs/stripe-gateway/api/services/payment/app"
)

// New returns the central HTTP router exposing the payment operations.
func New(log *slog.Logger, svc paymentapp.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/charges", chargeHandler(log, svc))
		r.Post("/customers", createCustomerHandler(log, svc))
		r.Get("/customers/{id}", retrieveCustomerHandler(log, svc))
		r.Put("/customers/{id}/subscription", updateSubscriptionHandler(log, svc))
		r.Delete("/customers/{id}/subscription", cancelSubscriptionHandler(log, svc))
	})

	return r
}

// failureStatus maps a failure kind to an HTTP status code.
func failureStatus(kind paymentapp.ErrorKind) int {
	switch kind {
	case paymentapp.KindCard:
		return http.StatusPaymentRequired
	case paymentapp.KindInvalidRequest:
		return http.StatusUnprocessableEntity
	case paymentapp.KindAuthentication, paymentapp.KindProcessor:
		return http.StatusBadGateway
	case paymentapp.KindConnection:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError renders a service error: expected failures carry their
// user-safe message and a kind-dependent status, contract violations map to
// 400, anything else to a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var f *paymentapp.Failure
	if errors.As(err, &f) {
		render.Status(r, failureStatus(f.Kind))
		render.JSON(w, r, response.Error(f.Message))
		return
	}
	if paymentapp.IsValidationError(err) {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}
	log.Error("unexpected service error", slog.String("detail", err.Error()))
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, response.Error("there was an error, try again later."))
}
