package geocode

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"fireReport/internal/config"
	"fireReport/internal/domain"
	"fireReport/pkg/e"

	"github.com/h2non/gock"
)

const testURL = "http://geocoder.test"

func newTestClient() *Client {
	c := NewClient(config.GeocoderConfig{
		URL:       testURL,
		UserAgent: "parte-test/1.0",
		RPS:       1000,
		Timeout:   2 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	gock.InterceptClient(c.http)
	return c
}

func TestClient_Search(t *testing.T) {
	defer gock.Off()

	gock.New(testURL).
		Get("/search").
		MatchParam("format", "json").
		MatchParam("q", "Carmen 560, Curicó").
		MatchParam("limit", "1").
		MatchHeader("User-Agent", "parte-test/1.0").
		Reply(http.StatusOK).
		JSON([]map[string]string{{"lat": "-34.9828", "lon": "-71.2333", "display_name": "Carmen 560"}})

	c := newTestClient()
	p, err := c.Search(context.Background(), "Carmen 560, Curicó")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if p.Lat != -34.9828 || p.Lng != -71.2333 {
		t.Fatalf("unexpected point: %+v", p)
	}
	if !gock.IsDone() {
		t.Fatalf("pending mocks: %d", len(gock.Pending()))
	}
}

func TestClient_Search_NoResults(t *testing.T) {
	defer gock.Off()

	gock.New(testURL).Get("/search").Reply(http.StatusOK).JSON([]map[string]string{})

	_, err := newTestClient().Search(context.Background(), "nowhere")
	if !errors.Is(err, e.ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
}

func TestClient_Search_EmptyAddress(t *testing.T) {
	defer gock.Off()

	_, err := newTestClient().Search(context.Background(), "   ")
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestClient_Search_BadCoordinates(t *testing.T) {
	defer gock.Off()

	gock.New(testURL).Get("/search").Reply(http.StatusOK).
		JSON([]map[string]string{{"lat": "abc", "lon": "-71"}})

	_, err := newTestClient().Search(context.Background(), "x")
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
}

func TestClient_Search_ServerError(t *testing.T) {
	defer gock.Off()

	gock.New(testURL).Get("/search").Reply(http.StatusServiceUnavailable)

	_, err := newTestClient().Search(context.Background(), "x")
	if !errors.Is(err, e.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestClient_Search_Canceled(t *testing.T) {
	defer gock.Off()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient().Search(ctx, "x")
	if !errors.Is(err, e.ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
}

func TestClient_Reverse(t *testing.T) {
	defer gock.Off()

	gock.New(testURL).
		Get("/reverse").
		MatchParam("format", "json").
		MatchParam("lat", "-34.9828").
		MatchParam("lon", "-71.2333").
		MatchParam("addressdetails", "1").
		Reply(http.StatusOK).
		JSON(map[string]string{"display_name": "Carmen 560, Curicó, Chile"})

	addr, err := newTestClient().Reverse(context.Background(), domain.LatLng{Lat: -34.9828, Lng: -71.2333})
	if err != nil {
		t.Fatalf("Reverse: %v", err)
	}
	if addr != "Carmen 560, Curicó, Chile" {
		t.Fatalf("unexpected address %q", addr)
	}
}

func TestClient_Reverse_Empty(t *testing.T) {
	defer gock.Off()

	gock.New(testURL).Get("/reverse").Reply(http.StatusOK).
		JSON(map[string]string{"error": "Unable to geocode"})

	_, err := newTestClient().Reverse(context.Background(), domain.LatLng{Lat: -40, Lng: -90})
	if !errors.Is(err, e.ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
}

func TestClient_Reverse_InvalidPoint(t *testing.T) {
	defer gock.Off()

	_, err := newTestClient().Reverse(context.Background(), domain.LatLng{Lat: 91, Lng: 0})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
}
