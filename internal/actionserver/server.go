package actionserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/indexer-tools/actionq/pkg/logging"
	"github.com/indexer-tools/actionq/pkg/metrics"
)

// Version of the reference action server.
const Version = "0.2.0"

// Server is the in-memory reference implementation of the action management
// API. One route per remote operation; request and response bodies are the
// shared wire shapes in pkg/types.
type Server struct {
	router *mux.Router
	store  *Store
	logger logging.Logger
	http   *http.Server
}

func NewServer(logger logging.Logger) *Server {
	s := &Server{
		router: mux.NewRouter(),
		store:  NewStore(),
		logger: logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	handler := NewHandler(s.store, s.logger)

	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(s.instrument)

	api.HandleFunc("/actions/queue", handler.QueueActions).Methods("POST")
	api.HandleFunc("/actions/approve", handler.ApproveActions).Methods("POST")
	api.HandleFunc("/actions/execute", handler.ExecuteApprovedActions).Methods("POST")
	api.HandleFunc("/actions/cancel", handler.CancelActions).Methods("POST")
	api.HandleFunc("/actions/delete", handler.DeleteActions).Methods("POST")
	api.HandleFunc("/actions/update", handler.UpdateActions).Methods("POST")
	api.HandleFunc("/actions/{id:[0-9]+}", handler.GetAction).Methods("GET")
	api.HandleFunc("/actions", handler.ListActions).Methods("GET")
	api.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

// Handler returns the full HTTP handler, CORS included. Tests mount it on
// an httptest.Server.
func (s *Server) Handler() http.Handler {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "Accept"},
	})
	return corsHandler.Handler(s.router)
}

// Start serves the API on addr until the context is canceled.
func (s *Server) Start(ctx context.Context, addr string) error {
	metrics.StartUptimeTracking()

	s.http = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Action server listening on %s", addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}

// instrument records per-route request metrics.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		route := mux.CurrentRoute(r)
		endpoint := r.URL.Path
		if route != nil {
			if template, err := route.GetPathTemplate(); err == nil {
				endpoint = template
			}
		}
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, endpoint, http.StatusText(recorder.status)).Inc()
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
