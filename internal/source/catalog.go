package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"dora-styles/internal/config"
	"dora-styles/internal/fetcher"
)

// DefaultCatalogURL is the raw-file root of the published style catalog.
const DefaultCatalogURL = "https://raw.githubusercontent.com/dora-styles/dora-styles/main/packages/styles"

// Catalog fetches styles from <BaseURL>/<lang>/<name>.<lang>.
type Catalog struct {
	BaseURL string
	Fetcher fetcher.Fetcher
}

// NewCatalog returns a Catalog rooted at baseURL, or DefaultCatalogURL when empty.
func NewCatalog(baseURL string, f fetcher.Fetcher) *Catalog {
	if baseURL == "" {
		baseURL = DefaultCatalogURL
	}
	return &Catalog{BaseURL: strings.TrimSuffix(baseURL, "/"), Fetcher: f}
}

// URL returns the catalog location of a style.
func (c *Catalog) URL(name string, lang config.StyleLanguage) string {
	return c.BaseURL + "/" + stylePath(name, lang)
}

// Fetch downloads a style. A 404 is reported as ErrStyleNotFound; any other
// failure is returned as a fetch error carrying the status or transport message.
func (c *Catalog) Fetch(ctx context.Context, name string, lang config.StyleLanguage) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	url := c.URL(name, lang)
	body, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		var serr *fetcher.StatusError
		if errors.As(err, &serr) && serr.StatusCode == http.StatusNotFound {
			return "", notFound(name, lang, c.BaseURL)
		}
		return "", fmt.Errorf("failed to fetch style %q: %w", name, err)
	}
	return body, nil
}

func (c *Catalog) Describe() string { return c.BaseURL }
