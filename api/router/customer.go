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

type customerForm struct {
	Token       string `json:"token" validate:"required"`
	Description string `json:"description"`
	Email       string `json:"email" validate:"omitempty,email"`
	PlanID      string `json:"plan_id"`
}

func createCustomerHandler(log *slog.Logger, svc paymentapp.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "router.customer.create"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var form customerForm
		if err := render.DecodeJSON(r.Body, &form); err != nil {
			log.Error("failed to decode request body", slog.String("detail", err.Error()))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(form); err != nil {
			validateErr := err.(validator.ValidationErrors)
			log.Error("invalid customer request", slog.String("detail", err.Error()))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		result, err := svc.CreateCustomer(paymentapp.CustomerRequest{
			Token:       form.Token,
			Description: form.Description,
			Email:       form.Email,
			PlanID:      form.PlanID,
		})
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		render.JSON(w, r, response.OKWithData(result))
	}
}

func retrieveCustomerHandler(log *slog.Logger, svc paymentapp.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "router.customer.retrieve"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		cust, err := svc.RetrieveCustomer(chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		render.JSON(w, r, response.OKWithData(cust))
	}
}
