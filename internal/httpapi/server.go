// Package httpapi exposes the start-date shift and schedule reads over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/crewshift/internal/app"
	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const shutdownTimeout = 10 * time.Second

type Params struct {
	Addr     string
	Logger   *slog.Logger
	Shifter  app.ShiftStartDateUseCase
	Projects service.ProjectService
	Manpower service.ManpowerService
	Calendar *calendar.Calendar

	// CORSOrigins enables CORS for these origins. Empty leaves it off.
	CORSOrigins []string
}

type Server struct {
	addr     string
	logger   *slog.Logger
	shifter  app.ShiftStartDateUseCase
	projects service.ProjectService
	manpower service.ManpowerService
	cal      *calendar.Calendar
	origins  []string
}

func NewServer(p Params) *Server {
	log := p.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		addr:     p.Addr,
		logger:   log,
		shifter:  p.Shifter,
		projects: p.Projects,
		manpower: p.Manpower,
		cal:      p.Calendar,
		origins:  p.CORSOrigins,
	}
}

// Handler returns the router with all middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	if len(s.origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", s.handleHealth)

	r.Route("/projects", func(r chi.Router) {
		r.Put("/updateStartDate", s.handleLegacyShift)
		r.Route("/{projectID}", func(r chi.Router) {
			r.Put("/start-date", s.handleShift)
			r.Get("/manpower", s.handleProjectManpower)
		})
	})

	r.Route("/calendar", func(r chi.Router) {
		r.Get("/working-days", s.handleWorkingDays)
		r.Get("/holidays", s.handleHolidays)
	})

	return r
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.InfoContext(r.Context(), "http_request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
			"remote", r.RemoteAddr,
		)
	})
}
