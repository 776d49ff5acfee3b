package controllers

import (
	"net/http"

	"github.com/bencom-ar/storefront-backend/api/responses"
	"github.com/bencom-ar/storefront-backend/api/validators"
	"github.com/bencom-ar/storefront-backend/internal/contact"
	pkgerrors "github.com/bencom-ar/storefront-backend/pkg/errors"
	"github.com/bencom-ar/storefront-backend/pkg/logger"
)

// ContactSend relays a contact form submission to the shop inbox.
func ContactSend(svc contact.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contact service unavailable"))
			return
		}

		var payload contact.SendInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Send(r.Context(), payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "sent"})
	}
}
