package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rafters-ui/rafters/internal/logging"
	"go.uber.org/zap"
)

// DefaultTimeout is the default HTTP request timeout for registry fetches
const DefaultTimeout = 30 * time.Second

// Client fetches component metadata and payloads from a Rafters registry
type Client struct {
	// BaseURL is the registry root (e.g., "https://registry.rafters.dev")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewClient creates a registry client for the given base URL
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Index fetches the registry index: every published component entry with
// its design-intent metadata.
func (c *Client) Index(ctx context.Context) (*Index, error) {
	var index Index
	if err := c.getJSON(ctx, "/index.json", &index); err != nil {
		return nil, err
	}

	logging.Debug("Fetched registry index",
		zap.String("registry", c.BaseURL),
		zap.String("version", index.Version),
		zap.Int("components", len(index.Components)),
	)

	return &index, nil
}

// Component fetches the full payload for one component by name.
// Returns a NotFound error when the registry has no such component.
func (c *Client) Component(ctx context.Context, name string) (*Component, error) {
	var comp Component
	err := c.getJSON(ctx, "/components/"+name+".json", &comp)
	if err != nil {
		var regErr *Error
		if errors.As(err, &regErr) && regErr.StatusCode == http.StatusNotFound {
			return nil, newNotFoundError(name)
		}
		return nil, err
	}

	logging.Debug("Fetched component payload",
		zap.String("component", name),
		zap.Int("files", len(comp.Files)),
	)

	return &comp, nil
}

// getJSON performs a one-shot GET and decodes the response body into v.
func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	url := c.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return newTransportError(fmt.Sprintf("failed to build request for %s", url), err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return newTransportError(fmt.Sprintf("failed to reach registry at %s", c.BaseURL), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return newHTTPError(resp.StatusCode,
			fmt.Sprintf("registry returned HTTP %d for %s", resp.StatusCode, url))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return newDecodeError(fmt.Sprintf("malformed JSON from %s", url), err)
	}

	return nil
}
