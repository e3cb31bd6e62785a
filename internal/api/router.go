package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"fireReport/internal/api/handlers/http/form"
	"fireReport/internal/api/handlers/http/system"
	"fireReport/internal/config"
	"fireReport/internal/middleware"
	"fireReport/internal/render"
	"fireReport/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, renderer *render.Renderer) *Server {
	formHandler := form.NewHandler(logger, svc.Form, svc.Reports, svc.Locator, renderer)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(ctx, cfg, formHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(ctx context.Context, cfg *config.Config, formHandler *form.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/form", func(fr chi.Router) {
			fr.Get("/document", formHandler.FormDocument)

			fr.Route("/sections/{section}", func(sr chi.Router) {
				sr.Get("/", formHandler.FormSectionGet)
				sr.Put("/", formHandler.FormSectionUpdate)
				sr.Post("/items", formHandler.FormItemAdd)
				sr.Delete("/items/{id}", formHandler.FormItemRemove)
			})

			fr.Post("/undo", formHandler.FormUndo)
			fr.Post("/redo", formHandler.FormRedo)
			fr.Post("/reset", formHandler.FormReset)
			fr.Put("/step", formHandler.FormStep)

			fr.Post("/validate", formHandler.FormValidate)
			fr.Post("/validate/field", formHandler.FormFieldCheck)
			fr.Post("/report", formHandler.FormReport)
			fr.Get("/preview", formHandler.FormPreview)

			// Geocoding hits a third-party provider.
			fr.Route("/location", func(lr chi.Router) {
				lr.Use(middleware.Limit(ctx, cfg.RateLimit, logger))
				lr.Post("/search", formHandler.LocationSearch)
				lr.Post("/pin", formHandler.LocationPin)
			})
		})

		api.Get("/health", systemHandler.SystemHealth)
	})

	r.Method(http.MethodGet, "/metrics", systemHandler.Metrics())

	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
