package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kenny-designs/wavefront/wavefront"
)

// Stream event types.
const (
	EventLabel = "label"
	EventRetry = "retry" // the dilated pass failed; labels restart on the raw map
	EventDone  = "done"
	EventError = "error"
)

const streamWriteWait = 10 * time.Second

// StreamEvent is one message sent on /plan/stream.
type StreamEvent struct {
	Type   string        `json:"type"`
	Label  *Label        `json:"label,omitempty"`
	Plan   *PlanResponse `json:"plan,omitempty"`
	Error  string        `json:"error,omitempty"`
	Status int           `json:"status,omitempty"`
}

// Label is a cell receiving its wavefront distance, in grid indices.
type Label struct {
	X        int `json:"x"`
	Y        int `json:"y"`
	Distance int `json:"distance"`
}

func (s *Server) handleStream() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.log.Warn("websocket upgrade", zap.Error(err))
			return
		}
		defer conn.Close()
		s.metrics.streams.Inc()
		defer s.metrics.streams.Dec()

		var req PlanRequest
		if err := conn.ReadJSON(&req); err != nil {
			s.log.Info("stream request", zap.Error(err))
			s.writeEvent(conn, StreamEvent{Type: EventError, Error: err.Error(), Status: http.StatusBadRequest})
			return
		}

		events := make(chan StreamEvent, s.cfg.StreamBuffer)
		done := make(chan struct{})
		go s.drain(conn, events, done)

		p := s.snapshot()
		g := p.Grid()
		retry := func() { events <- StreamEvent{Type: EventRetry} }
		resp, err := s.planOn(p, req, retry, wavefront.WithOnEnqueue(func(idx, dist int) {
			x, y := g.Coordinate(idx)
			events <- StreamEvent{Type: EventLabel, Label: &Label{X: x, Y: y, Distance: dist}}
		}))
		if err != nil {
			events <- StreamEvent{Type: EventError, Error: err.Error(), Status: statusFor(err)}
		} else {
			events <- StreamEvent{Type: EventDone, Plan: resp}
		}
		close(events)
		<-done

		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(streamWriteWait))
	}
}

// drain writes events to conn until the channel closes. After a write
// error it keeps receiving so the planner never blocks on a dead client.
func (s *Server) drain(conn *websocket.Conn, events <-chan StreamEvent, done chan<- struct{}) {
	defer close(done)
	failed := false
	for ev := range events {
		if failed {
			continue
		}
		if err := s.writeEvent(conn, ev); err != nil {
			s.log.Info("stream client gone", zap.Error(err))
			failed = true
		}
	}
}

func (s *Server) writeEvent(conn *websocket.Conn, ev StreamEvent) error {
	if err := conn.SetWriteDeadline(time.Now().Add(streamWriteWait)); err != nil {
		return err
	}
	return conn.WriteJSON(ev)
}
