package cart

import (
	"sync"
	"time"

	"github.com/VasaraSujal/king-hub/internal/catalog"
)

// RemovalConfirmWindow is how long an armed removal stays armed before
// auto-disarming.
const RemovalConfirmWindow = 3 * time.Second

// Ledger is the ordered collection of cart line items. Re-adding an
// item already in the cart merges into the existing line instead of
// appending a duplicate.
//
// Removal is two-phase: the first Remove arms a pending confirmation,
// a second Remove within the confirm window commits it. The pending
// state auto-disarms on a timer the ledger owns.
type Ledger struct {
	mu      sync.Mutex
	lines   []LineItem
	pending map[string]*time.Timer
	window  time.Duration
}

func NewLedger() *Ledger {
	return NewLedgerWithWindow(RemovalConfirmWindow)
}

// NewLedgerWithWindow builds a ledger with a custom confirm window.
func NewLedgerWithWindow(window time.Duration) *Ledger {
	return &Ledger{
		pending: make(map[string]*time.Timer),
		window:  window,
	}
}

// Add puts one unit of item into the cart at the given resolved unit
// price, merging by item id when the item is already present.
func (l *Ledger) Add(item catalog.Item, unitPrice float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].ItemID == item.ID {
			l.lines[i].Quantity++
			return
		}
	}

	l.lines = append(l.lines, LineItem{
		ItemID:      item.ID,
		Name:        item.Name,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		UnitPrice:   unitPrice,
		Quantity:    1,
		AddedAt:     time.Now(),
	})
}

// UpdateQuantity applies a +1/-1 delta to the line with the given id.
// Decrementing below one removes the line; an absent id is a no-op.
func (l *Ledger) UpdateQuantity(id string, delta int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].ItemID != id {
			continue
		}
		l.lines[i].Quantity += delta
		if l.lines[i].Quantity < 1 {
			l.removeLine(id)
		}
		return
	}
}

// Remove asks to delete a line. The first call arms the removal and
// returns false; a second call while armed commits it and returns
// true. Removing an absent id is a no-op.
func (l *Ledger) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.has(id) {
		return false
	}

	if _, armed := l.pending[id]; armed {
		l.removeLine(id)
		return true
	}

	l.pending[id] = time.AfterFunc(l.window, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.pending, id)
	})
	return false
}

// PendingRemoval reports whether a removal of id is armed and awaiting
// confirmation.
func (l *Ledger) PendingRemoval(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, armed := l.pending[id]
	return armed
}

// Clear empties the cart and disarms every pending removal.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = nil
	for id, timer := range l.pending {
		timer.Stop()
		delete(l.pending, id)
	}
}

// Total is the cart subtotal over current lines.
func (l *Ledger) Total() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	var total float64
	for _, line := range l.lines {
		total += line.LineTotal()
	}
	return total
}

// Items returns a snapshot of the lines in insertion order.
func (l *Ledger) Items() []LineItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LineItem, len(l.lines))
	copy(out, l.lines)
	return out
}

// Len is the number of distinct lines in the cart.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}

// removeLine deletes the line and disarms its pending removal, if any.
// Caller holds the lock.
func (l *Ledger) removeLine(id string) {
	for i, line := range l.lines {
		if line.ItemID == id {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			break
		}
	}
	if timer, armed := l.pending[id]; armed {
		timer.Stop()
		delete(l.pending, id)
	}
}

func (l *Ledger) has(id string) bool {
	for _, line := range l.lines {
		if line.ItemID == id {
			return true
		}
	}
	return false
}
