package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rshade/catalogview/internal/logging"
)

// DefaultEndpoint is the public catalog the tool reads when nothing else is configured.
const DefaultEndpoint = "https://api.escuelajs.co/api/v1/products"

// ErrLoadFailure is matched by every error returned from Loader.Load.
var ErrLoadFailure = errors.New("unable to load products")

// LoadError describes a failed catalog fetch.
type LoadError struct {
	// Endpoint is the URL that was requested.
	Endpoint string

	// StatusCode is the HTTP status received, or 0 when no response arrived.
	StatusCode int

	// Err is the underlying cause.
	Err error
}

// Error implements error.
func (e *LoadError) Error() string {
	return fmt.Sprintf("%v: %v", ErrLoadFailure, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrLoadFailure) hold for every LoadError.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailure
}

// Loader fetches the full product list from a REST endpoint in a single request.
type Loader struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient sets the client used for the request.
func WithHTTPClient(c *http.Client) LoaderOption {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// WithTimeout bounds the request duration. Zero means no bound.
func WithTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) {
		l.timeout = d
	}
}

// NewLoader creates a Loader for endpoint.
func NewLoader(endpoint string, opts ...LoaderOption) *Loader {
	l := &Loader{
		endpoint: endpoint,
		client:   &http.Client{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Endpoint returns the configured endpoint URL.
func (l *Loader) Endpoint() string {
	return l.endpoint
}

// Load performs the fetch and decodes the JSON array of products.
// Any failure is returned as a *LoadError; there is no retry.
func (l *Loader) Load(ctx context.Context) ([]Product, error) {
	log := logging.FromContext(ctx).With().Str("component", "catalog").Logger()
	start := time.Now()

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return nil, l.fail(0, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	log.Debug().Ctx(ctx).Str("endpoint", l.endpoint).Msg("fetching products")

	resp, err := l.client.Do(req)
	if err != nil {
		log.Warn().Ctx(ctx).Err(err).Str("endpoint", l.endpoint).Msg("product fetch failed")
		return nil, l.fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn().Ctx(ctx).
			Str("endpoint", l.endpoint).
			Int("status", resp.StatusCode).
			Msg("product fetch returned non-success status")
		return nil, l.fail(resp.StatusCode, fmt.Errorf("unexpected status %s", resp.Status))
	}

	var products []Product
	if err = json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, l.fail(resp.StatusCode, fmt.Errorf("decoding product list: %w", err))
	}
	if products == nil {
		products = []Product{}
	}

	log.Info().Ctx(ctx).
		Str("endpoint", l.endpoint).
		Int("status", resp.StatusCode).
		Int("count", len(products)).
		Dur("duration", time.Since(start)).
		Msg("products loaded")

	return products, nil
}

func (l *Loader) fail(status int, err error) *LoadError {
	return &LoadError{Endpoint: l.endpoint, StatusCode: status, Err: err}
}
