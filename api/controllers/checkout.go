package controllers

import (
	"net/http"

	"github.com/bencom-ar/storefront-backend/api/middleware"
	"github.com/bencom-ar/storefront-backend/api/responses"
	"github.com/bencom-ar/storefront-backend/api/validators"
	cartsvc "github.com/bencom-ar/storefront-backend/internal/cart"
	"github.com/bencom-ar/storefront-backend/internal/checkout"
	pkgerrors "github.com/bencom-ar/storefront-backend/pkg/errors"
	"github.com/bencom-ar/storefront-backend/pkg/logger"
)

type whatsappHandoffRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

// CheckoutWhatsApp renders the order message for the visitor's cart and
// returns the deep link the client should open.
func CheckoutWhatsApp(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		token := middleware.CartTokenFromContext(r.Context())

		var payload whatsappHandoffRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Handoff(r.Context(), token, cartsvc.Customer{
			Name:  payload.Name,
			Email: payload.Email,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
