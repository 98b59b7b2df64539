package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/webcore-labs/stripe-gateway/api/router/response"
	paymentapp "github.com/webcore-labs/stripe-gateway/api/services/payment/app"
)

type chargeForm struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	Token       string  `json:"token"`
	CustomerID  string  `json:"customer_id"`
}

func chargeHandler(log *slog.Logger, svc paymentapp.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "router.charge"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var form chargeForm
		if err := render.DecodeJSON(r.Body, &form); err != nil {
			log.Error("failed to decode request body", slog.String("detail", err.Error()))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(form); err != nil {
			validateErr := err.(validator.ValidationErrors)
			log.Error("invalid charge request", slog.String("detail", err.Error()))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		result, err := svc.Charge(paymentapp.ChargeRequest{
			Amount:      form.Amount,
			Currency:    form.Currency,
			Description: form.Description,
			Token:       form.Token,
			CustomerID:  form.CustomerID,
		})
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		render.JSON(w, r, response.OKWithData(result))
	}
}
