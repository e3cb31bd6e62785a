package geocode

//go:generate mockgen -source=client.go -destination=mocks/mock.go

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fireReport/internal/config"
	"fireReport/internal/domain"
	"fireReport/internal/metrics"
	"fireReport/pkg/e"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

const (
	kindSearch  = "search"
	kindReverse = "reverse"
)

// Geocoder resolves addresses to coordinates and back.
type Geocoder interface {
	Search(ctx context.Context, address string) (domain.LatLng, error)
	Reverse(ctx context.Context, p domain.LatLng) (string, error)
}

// Client talks to a Nominatim-compatible provider.
type Client struct {
	logger    *slog.Logger
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
	http      *http.Client
}

func NewClient(cfg config.GeocoderConfig, logger *slog.Logger) *Client {
	rps := cfg.RPS
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		logger:    logger,
		baseURL:   strings.TrimRight(cfg.URL, "/"),
		userAgent: cfg.UserAgent,
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

type searchHit struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

type reverseHit struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

func (c *Client) Search(ctx context.Context, address string) (domain.LatLng, error) {
	const op = "geocode.Search"
	start := time.Now()

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.LatLng{}, e.Wrap(op, e.ErrInvalidInput)
	}

	q := url.Values{}
	q.Set("format", "json")
	q.Set("q", address)
	q.Set("limit", "1")

	var hits []searchHit
	if err := c.get(ctx, op, "/search", q, &hits); err != nil {
		metrics.RecordGeocode(kindSearch, "error", time.Since(start))
		return domain.LatLng{}, err
	}
	if len(hits) == 0 {
		metrics.RecordGeocode(kindSearch, "empty", time.Since(start))
		return domain.LatLng{}, e.Wrap(op, e.ErrNoResults)
	}

	lat, errLat := strconv.ParseFloat(hits[0].Lat, 64)
	lng, errLng := strconv.ParseFloat(hits[0].Lon, 64)
	p := domain.LatLng{Lat: lat, Lng: lng}
	if errLat != nil || errLng != nil || !p.Valid() {
		metrics.RecordGeocode(kindSearch, "error", time.Since(start))
		return domain.LatLng{}, fmt.Errorf("%s: lat=%q lon=%q: %w", op, hits[0].Lat, hits[0].Lon, e.ErrInvalidCoordinates)
	}

	metrics.RecordGeocode(kindSearch, "ok", time.Since(start))
	c.logger.Debug("geocode search", slog.String("address", address), slog.Float64("lat", lat), slog.Float64("lng", lng))
	return p, nil
}

func (c *Client) Reverse(ctx context.Context, p domain.LatLng) (string, error) {
	const op = "geocode.Reverse"
	start := time.Now()

	if !p.Valid() {
		return "", e.Wrap(op, e.ErrInvalidCoordinates)
	}

	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(p.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(p.Lng, 'f', -1, 64))
	q.Set("addressdetails", "1")

	var hit reverseHit
	if err := c.get(ctx, op, "/reverse", q, &hit); err != nil {
		metrics.RecordGeocode(kindReverse, "error", time.Since(start))
		return "", err
	}
	// Nominatim answers 200 with {"error": "Unable to geocode"} over open water.
	if hit.DisplayName == "" {
		metrics.RecordGeocode(kindReverse, "empty", time.Since(start))
		return "", e.Wrap(op, e.ErrNoResults)
	}

	metrics.RecordGeocode(kindReverse, "ok", time.Since(start))
	return hit.DisplayName, nil
}

func (c *Client) get(ctx context.Context, op, path string, q url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return e.WrapError(ctx, op, ctx.Err())
		}
		return e.WrapError(ctx, op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return e.Wrap(op, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("geocoder request failed", slog.String("path", path), slog.String("error", err.Error()))
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return e.WrapError(ctx, op, err)
		}
		return fmt.Errorf("%s: %v: %w", op, err, e.ErrInternal)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("geocoder bad status", slog.String("path", path), slog.Int("status", resp.StatusCode))
		return fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, e.ErrInternal)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode: %v: %w", op, err, e.ErrInternal)
	}
	return nil
}
