// Package catalogclient implements the CatalogProvider port against the
// storefront stock feed. The feed publishes per-category item arrays plus the
// taco size tier table; any transport or decoding failure is surfaced as a
// dependency error so callers fail closed before touching a cart.
package catalogclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tacoshare/internal/core/domain/model/catalog"
	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// Client fetches live stock from the storefront.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a stock feed client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

type stockItem struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	InStock bool    `json:"in_stock"`
}

type sizeTier struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	MaxMeats        int     `json:"max_meats"`
	MaxSauces       int     `json:"max_sauces"`
	AllowGarnitures bool    `json:"allow_garnitures"`
}

type stockFeed struct {
	Proteins  []stockItem `json:"proteins"`
	Sauces    []stockItem `json:"sauces"`
	Garnishes []stockItem `json:"garnishes"`
	Addons    []stockItem `json:"addons"`
	Beverages []stockItem `json:"beverages"`
	Desserts  []stockItem `json:"desserts"`
	Tacos     []sizeTier  `json:"tacos"`
}

// GetCatalog fetches the current stock feed and converts it to a catalog
// snapshot.
func (c *Client) GetCatalog(ctx context.Context) (catalog.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stock", nil)
	if err != nil {
		return catalog.Snapshot{}, errs.NewDependencyUnavailableError("catalog", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return catalog.Snapshot{}, errs.NewDependencyUnavailableError("catalog", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return catalog.Snapshot{}, errs.NewDependencyUnavailableError(
			"catalog", fmt.Errorf("unexpected status: %d", resp.StatusCode))
	}

	var feed stockFeed
	if err = json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return catalog.Snapshot{}, errs.NewDependencyUnavailableError("catalog", err)
	}

	return toSnapshot(feed)
}

func toSnapshot(feed stockFeed) (catalog.Snapshot, error) {
	categories := map[catalog.Category][]stockItem{
		catalog.CategoryProtein:  feed.Proteins,
		catalog.CategorySauce:    feed.Sauces,
		catalog.CategoryGarnish:  feed.Garnishes,
		catalog.CategoryAddon:    feed.Addons,
		catalog.CategoryBeverage: feed.Beverages,
		catalog.CategoryDessert:  feed.Desserts,
	}

	items := make(map[catalog.Category][]catalog.Item, len(categories))
	for category, raw := range categories {
		converted := make([]catalog.Item, 0, len(raw))
		for _, entry := range raw {
			price, err := kernel.PriceFromFloat(entry.Price)
			if err != nil {
				return catalog.Snapshot{}, errs.NewDependencyUnavailableError(
					"catalog", fmt.Errorf("item %q: %w", entry.ID, err))
			}

			item, err := catalog.NewItem(entry.ID, entry.Name, price, entry.InStock)
			if err != nil {
				return catalog.Snapshot{}, errs.NewDependencyUnavailableError(
					"catalog", fmt.Errorf("item %q: %w", entry.ID, err))
			}
			converted = append(converted, item)
		}
		items[category] = converted
	}

	tiers := make([]catalog.SizeTier, 0, len(feed.Tacos))
	for _, entry := range feed.Tacos {
		price, err := kernel.PriceFromFloat(entry.Price)
		if err != nil {
			return catalog.Snapshot{}, errs.NewDependencyUnavailableError(
				"catalog", fmt.Errorf("tier %q: %w", entry.ID, err))
		}

		tier, err := catalog.RestoreSizeTier(
			catalog.Size(entry.ID), price, entry.MaxMeats, entry.MaxSauces, entry.AllowGarnitures)
		if err != nil {
			return catalog.Snapshot{}, errs.NewDependencyUnavailableError(
				"catalog", fmt.Errorf("tier %q: %w", entry.ID, err))
		}
		tiers = append(tiers, tier)
	}

	return catalog.NewSnapshot(items, tiers), nil
}
