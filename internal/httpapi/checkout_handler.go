package httpapi

import (
	"errors"
	"log"
	"net/http"

	"github.com/VasaraSujal/king-hub/internal/checkout"
)

type CheckoutResponseDTO struct {
	RedirectURL string `json:"redirect_url"`
	Status      string `json:"status"`
}

// POST /api/v1/checkout
func (a *API) Checkout(w http.ResponseWriter, r *http.Request) {
	coupon, delivery := a.couponState()

	redirectURL, err := a.orchestrator.Checkout(r.Context(), coupon, delivery)
	switch {
	case errors.Is(err, checkout.ErrCheckoutInFlight):
		respondError(w, http.StatusConflict, "checkout_in_flight", "a checkout attempt is already in progress")
		return
	case errors.Is(err, checkout.ErrNoAddress):
		respondError(w, http.StatusUnprocessableEntity, "missing_address", "please enter a delivery address")
		return
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusUnprocessableEntity, "empty_cart", "your cart is empty, add items before checkout")
		return
	case err != nil:
		log.Printf("[%s] checkout failed: %v", getRequestID(r.Context()), err)
		respondError(w, http.StatusBadGateway, "payment_unavailable", "payment failed, please try again")
		return
	}

	respondJSON(w, http.StatusOK, CheckoutResponseDTO{
		RedirectURL: redirectURL,
		Status:      a.orchestrator.Status().String(),
	})
}
