package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "memory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Form.MaxHistory != 50 {
		t.Fatalf("expected history 50, got %d", cfg.Form.MaxHistory)
	}
	if cfg.Form.AutosaveInterval != 30*time.Second {
		t.Fatalf("expected 30s autosave, got %s", cfg.Form.AutosaveInterval)
	}
	if cfg.Rules.MaxResponseMinutes != 30 || cfg.Rules.MinFireUnits != 1 || cfg.Rules.MinVolunteers != 1 {
		t.Fatalf("unexpected rules: %+v", cfg.Rules)
	}
	if !cfg.Form.SaveOnUpdate {
		t.Fatalf("expected save on update by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("FORM_MAX_HISTORY", "5")
	t.Setenv("RULES_MAX_RESPONSE_MINUTES", "45")
	t.Setenv("FORM_SAVE_ON_UPDATE", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Form.MaxHistory != 5 || cfg.Rules.MaxResponseMinutes != 45 || cfg.Form.SaveOnUpdate {
		t.Fatalf("overrides not applied: %+v %+v", cfg.Form, cfg.Rules)
	}
}

func TestValidate_Errors(t *testing.T) {
	base := func() *Config {
		return &Config{
			Http:     HttpConfig{Port: ":8080"},
			Storage:  StorageConfig{Backend: BackendMemory},
			Form:     FormConfig{MaxHistory: 50, AutosaveInterval: 30 * time.Second},
			Rules:    RulesConfig{MinFireUnits: 1, MinVolunteers: 1, MaxResponseMinutes: 30},
			Geocoder: GeocoderConfig{RPS: 1},
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("base config should be valid: %v", err)
	}

	cases := map[string]func(*Config){
		"port":     func(c *Config) { c.Http.Port = "8080" },
		"backend":  func(c *Config) { c.Storage.Backend = "sqlite" },
		"file dir": func(c *Config) { c.Storage.Backend = BackendFile; c.Storage.Dir = "" },
		"history":  func(c *Config) { c.Form.MaxHistory = 0 },
		"autosave": func(c *Config) { c.Form.AutosaveInterval = time.Millisecond },
		"rules":    func(c *Config) { c.Rules.MinVolunteers = -1 },
		"rps":      func(c *Config) { c.Geocoder.RPS = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base()
			mutate(c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
