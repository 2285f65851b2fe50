package httpapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/VasaraSujal/king-hub/internal/address"
	"github.com/VasaraSujal/king-hub/internal/cart"
	"github.com/VasaraSujal/king-hub/internal/catalog"
	"github.com/VasaraSujal/king-hub/internal/checkout"
	"github.com/VasaraSujal/king-hub/internal/pricing"
)

// API is the in-process surface the rendering collaborator talks to.
// It owns the session-scoped coupon and delivery state the way the
// cart page used to.
type API struct {
	menu         *catalog.Service
	ledger       *cart.Ledger
	book         *address.Book
	orchestrator *checkout.Orchestrator

	mu       sync.Mutex
	coupon   pricing.Coupon
	delivery pricing.DeliveryOption
}

func NewAPI(menu *catalog.Service, ledger *cart.Ledger, book *address.Book, orch *checkout.Orchestrator) *API {
	return &API{
		menu:         menu,
		ledger:       ledger,
		book:         book,
		orchestrator: orch,
		delivery:     pricing.DeliveryOption{Kind: pricing.DeliveryStandard},
	}
}

// Handler builds the chi router for the API.
func (a *API) Handler(requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/menu", func(r chi.Router) {
			r.Get("/", a.BrowseMenu)
			r.Put("/items/{item_id}/size", a.SetItemSize)
		})
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", a.GetCart)
			r.Post("/items", a.AddItem)
			r.Patch("/items/{item_id}/quantity", a.UpdateQuantity)
			r.Delete("/items/{item_id}", a.RemoveItem)
			r.Delete("/", a.ClearCart)
		})
		r.Post("/coupon", a.ApplyCoupon)
		r.Put("/delivery", a.SetDeliveryOption)
		r.Get("/summary", a.GetSummary)
		r.Route("/addresses", func(r chi.Router) {
			r.Get("/", a.ListAddresses)
			r.Post("/", a.SaveAddress)
			r.Put("/selected", a.SelectAddress)
		})
		r.Post("/checkout", a.Checkout)
	})

	return otelhttp.NewHandler(r, "storefront")
}

// couponState returns the session coupon and delivery snapshot.
func (a *API) couponState() (pricing.Coupon, pricing.DeliveryOption) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.coupon, a.delivery
}
