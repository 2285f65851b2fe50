package address

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var ErrEmptyAddress = errors.New("address must not be empty")

// Book is the in-session view of the saved delivery addresses plus the
// currently selected one. The saved list keeps insertion order and
// permits duplicates; the selected address may be typed ad hoc and
// used for checkout without ever being saved.
type Book struct {
	mu       sync.Mutex
	repo     RepoInterface
	saved    []string
	selected string
}

// NewBook loads the persisted address list and returns the session
// book over it.
func NewBook(ctx context.Context, repo RepoInterface) (*Book, error) {
	saved, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Book{repo: repo, saved: saved}, nil
}

// Save appends the address to the saved list and persists the whole
// list. Empty or whitespace-only addresses are rejected with
// ErrEmptyAddress, a reported and recoverable condition.
func (b *Book) Save(ctx context.Context, addr string) error {
	if strings.TrimSpace(addr) == "" {
		return ErrEmptyAddress
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	updated := append(append([]string{}, b.saved...), addr)
	if err := b.repo.Store(ctx, updated); err != nil {
		return err
	}
	b.saved = updated
	return nil
}

// List returns the saved addresses in insertion order.
func (b *Book) List() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]string, len(b.saved))
	copy(out, b.saved)
	return out
}

// Select makes addr the active delivery address. It does not have to
// be a member of the saved list.
func (b *Book) Select(addr string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.selected = addr
}

// Selected returns the active delivery address.
func (b *Book) Selected() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selected
}
