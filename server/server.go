// Package server exposes a Planner over HTTP.
//
// Routes:
//
//	POST /plan         JSON PlanRequest in, PlanResponse or {"error"} out
//	GET  /map          MapSummary of the loaded grid
//	GET  /plan/stream  WebSocket: one PlanRequest in, label events then
//	                   a done or error event out; a retry event separates
//	                   the dilated and raw passes
//	GET  /metrics      prometheus exposition
//
// POST /plan shares one Planner, so those plans run one at a time under a
// mutex. A stream plans on its own clone and never holds the mutex while
// writing to its client.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kenny-designs/wavefront/config"
	"github.com/kenny-designs/wavefront/planner"
	"github.com/kenny-designs/wavefront/wavefront"
)

// Routes served by Server.
const (
	URIPlan    = "/plan"
	URIMap     = "/map"
	URIStream  = "/plan/stream"
	URIMetrics = "/metrics"
)

const shutdownTimeout = 5 * time.Second

// Server serves plans from one Planner.
type Server struct {
	cfg      config.ServerConfig
	dilate   bool
	retry    bool
	log      *zap.Logger
	router   *way.Router
	upgrader websocket.Upgrader
	registry *prometheus.Registry
	metrics  *metrics

	mu      sync.Mutex
	planner *planner.Planner
}

// New returns a Server over p. Requests that omit dilate use
// cfg.Planner.Dilate, and cfg.Planner.RetryUndilated replans blocked
// dilated requests on the raw map.
func New(p *planner.Planner, cfg *config.Config, log *zap.Logger) *Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	s := &Server{
		cfg:      cfg.Server,
		dilate:   cfg.Planner.Dilate,
		retry:    cfg.Planner.RetryUndilated,
		log:      log,
		registry: reg,
		metrics:  newMetrics(reg),
		planner:  p,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc(http.MethodPost, URIPlan, s.handlePlan())
	s.router.HandleFunc(http.MethodGet, URIMap, s.handleMap())
	s.router.HandleFunc(http.MethodGet, URIStream, s.handleStream())
	s.router.Handle(http.MethodGet, URIMetrics, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on cfg.BindAddress until ctx is done, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.BindAddress,
		Handler:      s,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.cfg.BindAddress))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("shutting down")
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// plan runs one request on the shared planner.
func (s *Server) plan(req PlanRequest) (*PlanResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.planOn(s.planner, req, nil)
}

// snapshot returns a private copy of the shared planner for callers that
// must not hold the lock while planning.
func (s *Server) snapshot() *planner.Planner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.planner.Clone()
}

// planOn runs req on p, retrying without dilation when configured to, and
// records metrics. retry, if set, runs before the second pass. p must not
// be used concurrently.
func (s *Server) planOn(p *planner.Planner, req PlanRequest, retry func(), trace ...wavefront.Option) (*PlanResponse, error) {
	dilate := s.dilate
	if req.Dilate != nil {
		dilate = *req.Dilate
	}

	began := time.Now()
	res, err := p.PlanTraced(req.Start, req.Goal, dilate, trace...)
	if err != nil && dilate && s.retry && errors.Is(err, planner.ErrNoPath) {
		s.log.Info("dilated plan blocked, retrying on raw map",
			zap.Stringer("start", req.Start), zap.Stringer("goal", req.Goal))
		if retry != nil {
			retry()
		}
		dilate = false
		res, err = p.PlanTraced(req.Start, req.Goal, dilate, trace...)
	}
	s.metrics.observe(time.Since(began), res, err)
	if err != nil {
		return nil, err
	}

	return &PlanResponse{
		Waypoints: res.Waypoints,
		Hops:      res.Hops,
		Labeled:   res.Labeled,
		Dilated:   dilate,
	}, nil
}

// statusFor maps a plan error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, planner.ErrOutOfBounds):
		return http.StatusBadRequest
	case errors.Is(err, planner.ErrNoPath):
		return http.StatusNotFound
	case errors.Is(err, planner.ErrUnreachableGoal):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
