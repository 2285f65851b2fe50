package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/VasaraSujal/king-hub/internal/address"
)

type AddressRequestDTO struct {
	Address string `json:"address"`
}

type AddressListResponseDTO struct {
	Addresses []string `json:"addresses"`
	Selected  string   `json:"selected"`
}

// POST /api/v1/addresses
func (a *API) SaveAddress(w http.ResponseWriter, r *http.Request) {
	var req AddressRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := a.book.Save(r.Context(), req.Address); err != nil {
		if errors.Is(err, address.ErrEmptyAddress) {
			respondError(w, http.StatusUnprocessableEntity, "empty_address", "please enter an address")
			return
		}
		log.Printf("[%s] saving address failed: %v", getRequestID(r.Context()), err)
		respondError(w, http.StatusInternalServerError, "storage_error", "could not save the address")
		return
	}

	a.respondAddresses(w, http.StatusCreated)
}

// GET /api/v1/addresses
func (a *API) ListAddresses(w http.ResponseWriter, r *http.Request) {
	a.respondAddresses(w, http.StatusOK)
}

// PUT /api/v1/addresses/selected
//
// The selected address does not have to be a saved one; an ad hoc
// address can be typed and used for checkout directly.
func (a *API) SelectAddress(w http.ResponseWriter, r *http.Request) {
	var req AddressRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	a.book.Select(req.Address)
	a.respondAddresses(w, http.StatusOK)
}

func (a *API) respondAddresses(w http.ResponseWriter, status int) {
	respondJSON(w, status, AddressListResponseDTO{
		Addresses: a.book.List(),
		Selected:  a.book.Selected(),
	})
}
