package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/VasaraSujal/king-hub/internal/cart"
	"github.com/VasaraSujal/king-hub/internal/catalog"
	"github.com/VasaraSujal/king-hub/internal/pricing"
)

type AddItemRequestDTO struct {
	ItemID string `json:"item_id"`
}

type UpdateQuantityRequestDTO struct {
	Delta int `json:"delta"`
}

type CartResponseDTO struct {
	Items   []cart.LineItem `json:"items"`
	Summary pricing.Summary `json:"summary"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// POST /api/v1/cart/items
//
// The unit price is resolved from the item's currently selected size
// and locked into the line at add time.
func (a *API) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ItemID == "" {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item_id is required")
		return
	}

	item, ok := a.menu.Store().Get(req.ItemID)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "item is not in the current menu")
		return
	}

	a.ledger.Add(item, catalog.SelectedPrice(item))
	a.respondCart(w, http.StatusCreated)
}

// GET /api/v1/cart
func (a *API) GetCart(w http.ResponseWriter, r *http.Request) {
	a.respondCart(w, http.StatusOK)
}

// PATCH /api/v1/cart/items/{item_id}/quantity
func (a *API) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Delta != 1 && req.Delta != -1 {
		respondError(w, http.StatusBadRequest, "invalid_delta", "delta must be +1 or -1")
		return
	}

	a.ledger.UpdateQuantity(itemID, req.Delta)
	a.respondCart(w, http.StatusOK)
}

// DELETE /api/v1/cart/items/{item_id}
//
// First call arms the removal and answers 202; a second call within
// the confirm window commits it.
func (a *API) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")

	if removed := a.ledger.Remove(itemID); !removed {
		if a.ledger.PendingRemoval(itemID) {
			respondJSON(w, http.StatusAccepted, map[string]interface{}{
				"item_id":              itemID,
				"pending_confirmation": true,
			})
			return
		}
		respondError(w, http.StatusNotFound, "not_found", "item is not in the cart")
		return
	}
	a.respondCart(w, http.StatusOK)
}

// DELETE /api/v1/cart
func (a *API) ClearCart(w http.ResponseWriter, r *http.Request) {
	a.ledger.Clear()
	a.respondCart(w, http.StatusOK)
}

func (a *API) respondCart(w http.ResponseWriter, status int) {
	coupon, delivery := a.couponState()
	respondJSON(w, status, CartResponseDTO{
		Items:   a.ledger.Items(),
		Summary: pricing.Summarize(a.ledger, coupon, delivery),
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
