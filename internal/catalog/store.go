package catalog

import "sync"

// Store holds the last fetched catalog snapshot for one category.
//
// Every category switch starts a new fetch generation; a late-arriving
// response carrying a stale generation is discarded so an abandoned
// category can never overwrite a newer one.
type Store struct {
	mu       sync.RWMutex
	category string
	items    []Item
	gen      uint64
}

func NewStore() *Store {
	return &Store{}
}

// BeginFetch marks the start of a fetch for category and returns the
// generation token the eventual Replace must present.
func (s *Store) BeginFetch(category string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.category = category
	return s.gen
}

// Replace installs a freshly fetched snapshot. It reports false and
// keeps the current snapshot when gen has been superseded by a newer
// BeginFetch.
func (s *Store) Replace(gen uint64, items []Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.items = items
	return true
}

// Category returns the category of the most recent fetch.
func (s *Store) Category() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.category
}

// Items returns a copy of the current snapshot in natural order.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the snapshot entry with the given id.
func (s *Store) Get(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// SetSize updates the selected size of one snapshot entry. Unknown ids
// are a no-op.
func (s *Store) SetSize(id string, size Size) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].SelectedSize = size
			return true
		}
	}
	return false
}
