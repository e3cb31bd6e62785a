package components

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fireReport/internal/config"
	"fireReport/internal/domain"
)

func testConfig(backend, dir string) *config.Config {
	return &config.Config{
		Env:     "test",
		Http:    config.HttpConfig{Port: ":0", ShutdownTimeout: time.Second},
		Storage: config.StorageConfig{Backend: backend, Dir: dir},
		Form:    config.FormConfig{MaxHistory: 10, AutosaveInterval: time.Hour, SaveOnUpdate: false},
		Rules:   config.RulesConfig{MinFireUnits: 1, MinVolunteers: 1, MaxResponseMinutes: 30},
		Geocoder: config.GeocoderConfig{
			URL: "http://geocoder.invalid", RPS: 1, Timeout: time.Second,
		},
		RateLimit: config.RateLimitConfig{RPS: 2, Burst: 5, TTL: time.Minute},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInitComponents_UnknownBackend(t *testing.T) {
	if _, err := InitComponents(context.Background(), testConfig("s3", ""), testLogger()); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestInitComponents_FileBackendSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(config.BackendFile, t.TempDir())

	first, err := InitComponents(ctx, cfg, testLogger())
	if err != nil {
		t.Fatalf("InitComponents: %v", err)
	}
	if err := first.Store.Update(ctx, domain.SectionFireUnits, []domain.FireUnit{{Code: "B-6"}}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	// SaveOnUpdate is off: only the shutdown flush persists the edit.
	first.ShutdownAll()

	second, err := InitComponents(ctx, cfg, testLogger())
	if err != nil {
		t.Fatalf("InitComponents after restart: %v", err)
	}
	defer second.ShutdownAll()

	units := second.Store.GetAll().FireUnits
	if len(units) != 1 || units[0].Code != "B-6" {
		t.Fatalf("edit not restored: %+v", units)
	}
	if length, _ := second.Store.HistoryPosition(); length != 0 {
		t.Fatalf("history must start empty after restart, got %d entries", length)
	}
}

func TestSetupLogger(t *testing.T) {
	for _, env := range []string{"local", "dev", "prod", ""} {
		if SetupLogger(env) == nil {
			t.Fatalf("nil logger for env %q", env)
		}
	}
}
