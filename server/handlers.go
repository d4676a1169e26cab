package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/kenny-designs/wavefront/planner"
)

const maxRequestBytes = 1 << 16

// PlanRequest asks for a plan between two physical points.
type PlanRequest struct {
	Start planner.Point `json:"start"`
	Goal  planner.Point `json:"goal"`
	// Dilate overrides the server default when set.
	Dilate *bool `json:"dilate,omitempty"`
}

// PlanResponse is a successful plan.
type PlanResponse struct {
	Waypoints []planner.Point `json:"waypoints"`
	Hops      int             `json:"hops"`
	Labeled   int             `json:"labeled"`
	// Dilated reports whether the returned plan was made on the dilated map.
	Dilated bool `json:"dilated"`
}

// MapSummary describes the loaded grid.
type MapSummary struct {
	Side             int     `json:"side"`
	CellSize         float64 `json:"cell_size"`
	FlipY            bool    `json:"flip_y"`
	Extent           float64 `json:"extent"`
	Occupied         int     `json:"occupied"`
	Free             int     `json:"free"`
	Components       int     `json:"components"`
	LargestComponent int     `json:"largest_component"`
	DilationRadius   int     `json:"dilation_radius"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handlePlan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlanRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			s.respond(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("decode request: %v", err)})
			return
		}

		resp, err := s.plan(req)
		if err != nil {
			status := statusFor(err)
			s.log.Info("plan failed",
				zap.Stringer("start", req.Start), zap.Stringer("goal", req.Goal),
				zap.Int("status", status), zap.Error(err))
			s.respond(w, status, errorResponse{Error: err.Error()})
			return
		}
		s.log.Debug("plan",
			zap.Stringer("start", req.Start), zap.Stringer("goal", req.Goal),
			zap.Int("waypoints", len(resp.Waypoints)), zap.Int("hops", resp.Hops))
		s.respond(w, http.StatusOK, resp)
	}
}

func (s *Server) handleMap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, http.StatusOK, s.summary())
	}
}

// summary describes the raw map; it clears any dilation left by the last
// plan first.
func (s *Server) summary() MapSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.planner.Grid()
	g.Reset()
	f := s.planner.Frame()
	sum := MapSummary{
		Side:           g.Side,
		CellSize:       f.CellSize,
		FlipY:          f.FlipY,
		Extent:         float64(g.Side) * f.CellSize / 2,
		DilationRadius: s.planner.DilationRadius(),
	}
	for i := 0; i < g.Len(); i++ {
		if g.Cell(i).Occupied {
			sum.Occupied++
		} else {
			sum.Free++
		}
	}
	comps := g.FreeComponents()
	sum.Components = len(comps)
	for _, c := range comps {
		if len(c) > sum.LargestComponent {
			sum.LargestComponent = len(c)
		}
	}
	return sum
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Warn("write response", zap.Error(err))
	}
}
