package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/VasaraSujal/king-hub/internal/pricing"
)

type ApplyCouponRequestDTO struct {
	Code string `json:"code"`
}

type SetDeliveryRequestDTO struct {
	Kind     string `json:"kind"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
}

// POST /api/v1/coupon
//
// The discount is resolved against the subtotal at this moment and
// kept as is afterwards; cart changes do not refresh it until the
// coupon is applied again.
func (a *API) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req ApplyCouponRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	coupon, err := pricing.ApplyCoupon(req.Code, a.ledger.Total())

	a.mu.Lock()
	a.coupon = coupon
	a.mu.Unlock()

	if errors.Is(err, pricing.ErrInvalidCoupon) {
		respondError(w, http.StatusUnprocessableEntity, "invalid_coupon", "invalid coupon code")
		return
	}

	a.respondCart(w, http.StatusOK)
}

// PUT /api/v1/delivery
func (a *API) SetDeliveryOption(w http.ResponseWriter, r *http.Request) {
	var req SetDeliveryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	option := pricing.DeliveryOption{
		Kind:     pricing.DeliveryKind(req.Kind),
		Date:     req.Date,
		TimeSlot: req.TimeSlot,
	}
	if err := option.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_delivery_option", err.Error())
		return
	}

	a.mu.Lock()
	a.delivery = option
	a.mu.Unlock()

	a.respondCart(w, http.StatusOK)
}

// GET /api/v1/summary
func (a *API) GetSummary(w http.ResponseWriter, r *http.Request) {
	coupon, delivery := a.couponState()
	respondJSON(w, http.StatusOK, pricing.Summarize(a.ledger, coupon, delivery))
}
