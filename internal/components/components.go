package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fireReport/internal/api"
	"fireReport/internal/config"
	"fireReport/internal/geocode"
	"fireReport/internal/render"
	"fireReport/internal/service"
	"fireReport/internal/storage"
	"fireReport/internal/storage/file"
	"fireReport/internal/storage/memory"
	"fireReport/internal/storage/postgres"
	"fireReport/internal/storage/redis"
	"fireReport/internal/store"
	"fireReport/internal/validation"
	"fireReport/pkg/logger"

	"github.com/robfig/cron/v3"
)

// saveTimeout bounds a single save, both on schedule and on shutdown.
const saveTimeout = 5 * time.Second

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Store      *store.Store
	Autosave   *cron.Cron
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{logger: logger}

	kv, err := c.initStorage(ctx, cfg)
	if err != nil {
		c.closeBackends()
		return nil, err
	}

	st := store.New(kv, logger, store.Options{
		MaxHistory:   cfg.Form.MaxHistory,
		SaveOnUpdate: cfg.Form.SaveOnUpdate,
	})
	if !st.Load(ctx) {
		logger.Warn("Saved form could not be restored, starting empty")
	}
	c.Store = st

	autosave, err := st.StartAutosave(cfg.Form.AutosaveInterval, saveTimeout)
	if err != nil {
		c.closeBackends()
		return nil, fmt.Errorf("failed to schedule autosave: %w", err)
	}
	c.Autosave = autosave

	engine := validation.New(validation.Rules{
		MinPatients:        cfg.Rules.MinPatients,
		MinVehicles:        cfg.Rules.MinVehicles,
		MinFireUnits:       cfg.Rules.MinFireUnits,
		MinVolunteers:      cfg.Rules.MinVolunteers,
		MaxResponseMinutes: cfg.Rules.MaxResponseMinutes,
	}, logger, time.Now)

	geo := geocode.NewClient(cfg.Geocoder, logger)

	renderer, err := render.NewRenderer()
	if err != nil {
		c.ShutdownAll()
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	srv := service.NewService(st, engine, geo, logger)
	c.HttpServer = api.NewServer(ctx, cfg, logger, srv, renderer)
	logger.Info("Initialized server")

	return c, nil
}

func (c *Components) initStorage(ctx context.Context, cfg *config.Config) (storage.KV, error) {
	c.logger.Info("Initializing storage", slog.String("backend", cfg.Storage.Backend))

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendFile:
		kv, err := file.New(cfg.Storage.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to init file storage: %w", err)
		}
		return kv, nil
	case config.BackendRedis:
		r, err := redis.NewRedis(ctx, cfg, c.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		c.Redis = r
		return redis.NewKV(r, cfg.Redis.KeyPrefix), nil
	case config.BackendPostgres:
		pg, err := postgres.NewPostgres(ctx, cfg, c.logger)
		if err != nil {
			c.logger.Error("Failed to init postgres", slog.Any("error", err))
			return nil, fmt.Errorf("failed to init postgres: %w", err)
		}
		c.Postgres = pg
		return pg.Forms, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

// ShutdownAll stops autosave, writes the form one last time and closes the
// storage backend.
func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	if c.Autosave != nil {
		<-c.Autosave.Stop().Done()
	}

	if c.Store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		if !c.Store.Flush(ctx) {
			c.logger.Error("Final save failed")
		}
		cancel()
	}

	c.closeBackends()

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}

func (c *Components) closeBackends() {
	if c.Postgres != nil {
		c.Postgres.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}
}
