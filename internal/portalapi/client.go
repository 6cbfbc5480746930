// Package portalapi talks to the listing portals' public location
// autocomplete endpoints.
package portalapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/captain-burah/estateflow-pro/internal/domain"
)

// DefaultTimeout bounds a single portal lookup request.
const DefaultTimeout = 10 * time.Second

// LocationClient searches a portal's location taxonomy.
type LocationClient interface {
	SearchLocations(ctx context.Context, portal domain.PortalName, query string) ([]domain.PortalLocation, error)
}

// Client is an HTTP LocationClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a location client against the given base URL.
func NewClient(baseURL string) *Client {
	return NewClientWithTimeout(baseURL, DefaultTimeout)
}

// NewClientWithTimeout creates a location client with a custom request timeout.
func NewClientWithTimeout(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type locationDTO struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	NameAr *string `json:"nameAr,omitempty"`
}

type locationsResponse struct {
	Data []locationDTO `json:"data"`
}

// SearchLocations queries the portal location endpoint and maps the response
// into domain locations.
func (c *Client) SearchLocations(ctx context.Context, portal domain.PortalName, query string) ([]domain.PortalLocation, error) {
	endpoint := fmt.Sprintf("%s/portals/%s/locations?q=%s", c.baseURL, portal, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create location request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("portal location request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("portal location lookup returned %d: %s", resp.StatusCode, string(body))
	}

	var payload locationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode location response: %w", err)
	}

	locations := make([]domain.PortalLocation, len(payload.Data))
	for i, dto := range payload.Data {
		locations[i] = domain.PortalLocation{
			ID:     dto.ID,
			Name:   dto.Name,
			NameAr: dto.NameAr,
			Portal: portal,
		}
	}
	return locations, nil
}
