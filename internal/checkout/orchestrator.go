package checkout

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/VasaraSujal/king-hub/internal/cart"
	"github.com/VasaraSujal/king-hub/internal/pricing"
)

// AddressSelector is the only view of the address book the
// orchestrator gets: it reads the selected address and never mutates
// the book.
type AddressSelector interface {
	Selected() string
}

// Orchestrator drives a checkout attempt through
// Idle -> Validating -> RequestingSession -> Redirecting, falling back
// to Idle on any failure with cart, address and delivery state fully
// intact. At most one attempt is in flight at a time and nothing is
// retried automatically.
type Orchestrator struct {
	mu        sync.Mutex
	status    Status
	ledger    *cart.Ledger
	addresses AddressSelector
	payments  SessionCreator
}

func NewOrchestrator(ledger *cart.Ledger, addresses AddressSelector, payments SessionCreator) *Orchestrator {
	return &Orchestrator{
		status:    StatusIdle,
		ledger:    ledger,
		addresses: addresses,
		payments:  payments,
	}
}

// Status returns the current state of the machine.
func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// InFlight reports whether a session request has been issued and not
// yet answered, for the UI's in-progress indicator.
func (o *Orchestrator) InFlight() bool {
	return o.Status() == StatusRequestingSession
}

// Checkout runs one attempt and returns the redirect URL of the
// created session. The request is not cancelled once issued; a slow
// provider simply delays the transition.
func (o *Orchestrator) Checkout(ctx context.Context, coupon pricing.Coupon, delivery pricing.DeliveryOption) (string, error) {
	o.mu.Lock()
	if o.status == StatusRequestingSession {
		o.mu.Unlock()
		return "", ErrCheckoutInFlight
	}
	o.status = StatusValidating
	o.mu.Unlock()

	addr := o.addresses.Selected()
	if strings.TrimSpace(addr) == "" {
		o.setStatus(StatusIdle)
		return "", ErrNoAddress
	}
	if o.ledger.Len() == 0 {
		o.setStatus(StatusIdle)
		return "", ErrEmptyCart
	}

	attemptID := uuid.NewString()
	summary := pricing.Summarize(o.ledger, coupon, delivery)

	lines := o.ledger.Items()
	req := &SessionRequest{
		Items:           make([]SessionItem, 0, len(lines)),
		DeliveryAddress: addr,
		DeliveryOption:  string(delivery.Kind),
		TotalAmount:     summary.GrandTotal,
	}
	for _, l := range lines {
		req.Items = append(req.Items, SessionItem{
			Name:     l.Name,
			Price:    l.UnitPrice,
			Quantity: l.Quantity,
		})
	}

	o.setStatus(StatusRequestingSession)
	log.Printf("checkout attempt %s: requesting session for %d items, total %.2f", attemptID, len(req.Items), req.TotalAmount)

	// Once issued, the session request is not cancelled or timed out; a
	// slow provider only delays the transition.
	session, err := o.payments.CreateSession(context.WithoutCancel(ctx), req)
	if err != nil {
		return "", o.fail(attemptID, err)
	}
	if session.URL == "" {
		return "", o.fail(attemptID, ErrMissingRedirectURL)
	}

	o.setStatus(StatusRedirecting)
	log.Printf("checkout attempt %s: redirecting to payment provider", attemptID)
	return session.URL, nil
}

// fail records the failure and returns the machine to idle. No cart or
// address state is touched, the attempt can be re-initiated as is.
func (o *Orchestrator) fail(attemptID string, err error) error {
	log.Printf("checkout attempt %s failed: %v", attemptID, err)
	o.setStatus(StatusFailed)
	o.setStatus(StatusIdle)
	return err
}

func (o *Orchestrator) setStatus(s Status) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status = s
}
