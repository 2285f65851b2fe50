package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/VasaraSujal/king-hub/internal/catalog"
)

type BrowseMenuResponseDTO struct {
	Category string         `json:"category"`
	Items    []catalog.Item `json:"items"`
}

// GET /api/v1/menu?category=Pizza&term=piz&sort=price-asc
//
// A term that names a category exactly switches to it instead of
// filtering; a category switch refetches and drops the term's effect
// while the sort mode carries over.
func (a *API) BrowseMenu(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	term := q.Get("term")
	sortMode := catalog.SortMode(q.Get("sort"))
	if sortMode == "" {
		sortMode = catalog.SortPopularity
	}

	if switched, ok := catalog.MatchCategory(term); ok {
		category = switched
		term = ""
	}
	if category == "" {
		category = a.menu.Store().Category()
	}
	if category == "" {
		respondError(w, http.StatusBadRequest, "missing_category", "category is required")
		return
	}

	if category != a.menu.Store().Category() {
		term = ""
		if _, err := a.menu.SwitchCategory(r.Context(), category); err != nil {
			log.Printf("[%s] menu fetch for %q failed: %v", getRequestID(r.Context()), category, err)
			respondError(w, http.StatusBadGateway, "menu_unavailable", "could not fetch the menu, please try again")
			return
		}
	}

	items := catalog.Query(a.menu.Store().Items(), term, sortMode)
	respondJSON(w, http.StatusOK, BrowseMenuResponseDTO{
		Category: a.menu.Store().Category(),
		Items:    items,
	})
}

type SetSizeRequestDTO struct {
	Size catalog.Size `json:"size"`
}

// PUT /api/v1/menu/items/{item_id}/size
func (a *API) SetItemSize(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")

	var req SetSizeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	switch req.Size {
	case catalog.SizeSmall, catalog.SizeMedium, catalog.SizeLarge:
	default:
		respondError(w, http.StatusBadRequest, "invalid_size", "size must be Small, Medium or Large")
		return
	}

	if !a.menu.Store().SetSize(itemID, req.Size) {
		respondError(w, http.StatusNotFound, "not_found", "item is not in the current menu")
		return
	}

	item, _ := a.menu.Store().Get(itemID)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"item_id": itemID,
		"size":    req.Size,
		"price":   catalog.SelectedPrice(item),
	})
}
