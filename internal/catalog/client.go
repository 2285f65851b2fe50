package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Client fetches category menus from the storefront backend.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		http: resty.New().SetBaseURL(baseURL),
	}
}

// FetchMenu retrieves the menu for one category. A response body that
// is not a JSON array is treated as an empty catalog; only transport
// failures and non-success statuses are errors.
func (c *Client) FetchMenu(ctx context.Context, category string) ([]Item, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get("/api/menu/" + strings.ToLower(category))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu for %q: %w", category, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("menu request for %q failed with status %d", category, resp.StatusCode())
	}

	var items []Item
	if err := json.Unmarshal(resp.Body(), &items); err != nil {
		log.Printf("menu response for %q is not an item array, treating as empty: %v", category, err)
		return []Item{}, nil
	}

	return items, nil
}
