package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/webcore-labs/stripe-gateway/api/router/response"
	paymentapp "github.com/webcore-labs/stripe-gateway/api/services/payment/app"
)

type subscriptionForm struct {
	PlanID  string `json:"plan_id" validate:"required"`
	Prorate *bool  `json:"prorate"`
}

func updateSubscriptionHandler(log *slog.Logger, svc paymentapp.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "router.subscription.update"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var form subscriptionForm
		if err := render.DecodeJSON(r.Body, &form); err != nil {
			log.Error("failed to decode request body", slog.String("detail", err.Error()))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(form); err != nil {
			validateErr := err.(validator.ValidationErrors)
			log.Error("invalid subscription request", slog.String("detail", err.Error()))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		sub, err := svc.UpdateSubscription(chi.URLParam(r, "id"), paymentapp.SubscriptionUpdate{
			PlanID:  form.PlanID,
			Prorate: form.Prorate,
		})
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		render.JSON(w, r, response.OKWithData(sub))
	}
}

func cancelSubscriptionHandler(log *slog.Logger, svc paymentapp.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "router.subscription.cancel"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		sub, err := svc.CancelSubscription(chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		render.JSON(w, r, response.OKWithData(sub))
	}
}
