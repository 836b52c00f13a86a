// Package geocoding resolves free-text destinations through a Nominatim
// compatible search API. It is independent of the backend client and of
// the session: no token is ever sent.
package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/UhCardoso/travel-manager-front/internal/client/metrics"
	"github.com/UhCardoso/travel-manager-front/internal/client/models"
	"github.com/UhCardoso/travel-manager-front/internal/logging"
)

const (
	DefaultURL       = "https://nominatim.openstreetmap.org"
	DefaultUserAgent = "travel-manager-client"
	defaultTimeout   = 10 * time.Second
)

// ErrLookupFailed is returned for every failed search, whatever the cause.
var ErrLookupFailed = errors.New("failed to search destinations, check your connection and try again")

// Searcher looks destinations up by free text.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.Destination, error)
}

type Option func(*Nominatim)

// WithLimit caps the number of results; 0 leaves the server default.
func WithLimit(n int) Option { return func(g *Nominatim) { g.limit = n } }

func WithUserAgent(ua string) Option { return func(g *Nominatim) { g.userAgent = ua } }

func WithHTTPClient(c *http.Client) Option { return func(g *Nominatim) { g.http = c } }

func WithLogger(l logging.Logger) Option { return func(g *Nominatim) { g.log = l } }

func WithMetrics(m *metrics.Metrics) Option { return func(g *Nominatim) { g.metrics = m } }

type Nominatim struct {
	baseURL   string
	limit     int
	userAgent string
	http      *http.Client
	metrics   *metrics.Metrics
	log       logging.Logger
}

var _ Searcher = (*Nominatim)(nil)

func NewNominatim(baseURL string, opts ...Option) *Nominatim {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	g := &Nominatim{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: DefaultUserAgent,
		log:       logging.Nop(),
	}
	for _, o := range opts {
		o(g)
	}
	if g.http == nil {
		g.http = &http.Client{Timeout: defaultTimeout}
	}
	if g.metrics != nil {
		c := *g.http
		c.Transport = g.metrics.Instrument("geocoder", c.Transport)
		g.http = &c
	}
	return g
}

// Search returns the matches for query. A blank query yields no results
// and makes no network call.
func (g *Nominatim) Search(ctx context.Context, query string) ([]models.Destination, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Destination{}, nil
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("addressdetails", "1")
	if g.limit > 0 {
		q.Set("limit", strconv.Itoa(g.limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.http.Do(req)
	if err != nil {
		g.log.Warn(ctx, "destination search failed", "query", query, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		g.log.Warn(ctx, "destination search failed", "query", query, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrLookupFailed, resp.StatusCode)
	}

	var out []models.Destination
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrLookupFailed, err)
	}
	if out == nil {
		out = []models.Destination{}
	}

	g.log.Debug(ctx, "destination search", "query", query, "results", len(out))
	return out, nil
}
