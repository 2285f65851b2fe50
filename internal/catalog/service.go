package catalog

import (
	"context"
	"errors"
	"log"
	"math/rand"

	"golang.org/x/sync/singleflight"
)

// MenuCache holds fetched category menus so quick category switches do
// not refetch from the backend.
type MenuCache interface {
	Get(ctx context.Context, category string) ([]Item, error)
	Set(ctx context.Context, category string, items []Item) error
	Delete(ctx context.Context, category string) error
}

var ErrCacheMiss = errors.New("cache miss")

// MenuFetcher is the outbound contract of Client.
type MenuFetcher interface {
	FetchMenu(ctx context.Context, category string) ([]Item, error)
}

// Service loads category menus into the Store. A nil cache disables
// caching; the singleflight group collapses concurrent fetches of the
// same category.
type Service struct {
	fetcher MenuFetcher
	cache   MenuCache
	store   *Store
	sfg     singleflight.Group
}

func NewService(fetcher MenuFetcher, cache MenuCache, store *Store) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   cache,
		store:   store,
	}
}

// Store exposes the snapshot the service fills.
func (s *Service) Store() *Store {
	return s.store
}

// SwitchCategory replaces the catalog snapshot with the menu for
// category. A response that arrives after a newer switch is discarded.
func (s *Service) SwitchCategory(ctx context.Context, category string) ([]Item, error) {
	gen := s.store.BeginFetch(category)

	// The fetch is not cancelled once issued; supersession is handled
	// by the generation check below, never by aborting the request.
	ctx = context.WithoutCancel(ctx)

	v, err, _ := s.sfg.Do(category, func() (interface{}, error) {
		if s.cache != nil {
			items, errGet := s.cache.Get(ctx, category)
			if errGet == nil {
				return items, nil
			}
			if !errors.Is(errGet, ErrCacheMiss) {
				log.Printf("menu cache get error: %v", errGet)
			}
		}

		items, errFetch := s.fetcher.FetchMenu(ctx, category)
		if errFetch != nil {
			return nil, errFetch
		}

		if s.cache != nil {
			if errSet := s.cache.Set(ctx, category, items); errSet != nil {
				log.Printf("menu cache set error: %v", errSet)
			}
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	items := decorate(v.([]Item), category)
	if !s.store.Replace(gen, items) {
		log.Printf("discarding stale menu response for %q", category)
		return nil, nil
	}
	return items, nil
}

// decorate fills the default size and the display-only metrics the
// renderer shows (mock rating, review count and prep time, same ranges
// the storefront has always used). These never feed pricing.
func decorate(items []Item, category string) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		if it.Category == "" {
			it.Category = category
		}
		it.SelectedSize = SizeSmall
		it.Rating = float64(int((rand.Float64()*2+3)*10)) / 10 // 3.0 - 5.0
		it.Reviews = rand.Intn(500) + 10
		it.PreparationTime = rand.Intn(20) + 10
		out[i] = it
	}
	return out
}
