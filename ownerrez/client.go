package ownerrez

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"t2gstays/config"

	"golang.org/x/time/rate"
)

const (
	// OwnerRez allows 300 requests per 5 minutes per account; the limiter
	// spreads calls out with headroom for CDN cache misses arriving in bursts.
	upstreamInterval = 1200 * time.Millisecond
	upstreamBurst    = 10

	attemptTimeout = 10 * time.Second
	retryDelay     = 300 * time.Millisecond
	maxBody        = 4 << 20
)

// UpstreamError carries a non-2xx vendor status so handlers can decide
// between propagating it and degrading to an empty result.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ownerrez responded with %d", e.Status)
}

// Client talks to the OwnerRez v2 API with Basic auth. Credentials are read
// from the environment on every call (see config.VendorFromEnv), so the
// client itself holds no secret state.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: attemptTimeout},
		limiter: rate.NewLimiter(rate.Every(upstreamInterval), upstreamBurst),
	}
}

// Properties lists all properties on the account.
func (c *Client) Properties(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/properties", nil)
}

// Property fetches a single property record.
func (c *Client) Property(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, "/properties/"+url.PathEscape(id), nil)
}

// Listing fetches the marketing companion record (full gallery, description,
// amenities). Requires the vendor's integrated-websites add-on.
func (c *Client) Listing(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, "/listings/"+url.PathEscape(id), nil)
}

// Bookings lists active bookings for a property. The vendor has no separate
// availability resource; bookings carry the arrival/departure dates the
// blocked-date expansion needs.
func (c *Client) Bookings(ctx context.Context, propertyID, from string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("property_ids", propertyID)
	q.Set("status", "active")
	q.Set("page_size", "100")
	if from != "" {
		q.Set("since_utc", from)
	}
	return c.get(ctx, "/bookings", q)
}

// Rates lists rate periods for a property.
func (c *Client) Rates(ctx context.Context, propertyID, from, to string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("property_id", propertyID)
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}
	return c.get(ctx, "/rates", q)
}

// Reviews lists guest reviews for a property.
func (c *Client) Reviews(ctx context.Context, propertyID string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("property_id", propertyID)
	q.Set("page_size", "50")
	return c.get(ctx, "/reviews", q)
}

// get performs one authenticated GET with a single bounded retry. Transport
// errors and 5xx responses are retried once after a short pause; 4xx responses
// are final.
func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	vendor, err := config.VendorFromEnv()
	if err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay):
			}
		}

		body, err := c.do(ctx, u, vendor)
		if err == nil {
			return body, nil
		}
		var ue *UpstreamError
		if errors.As(err, &ue) && ue.Status < 500 {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, u string, vendor config.Vendor) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(vendor.Email, vendor.Token)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ownerrez request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("ownerrez read: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &UpstreamError{Status: res.StatusCode, Body: truncate(string(body), 512)}
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("ownerrez: malformed JSON from %s", u)
	}
	return json.RawMessage(body), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
