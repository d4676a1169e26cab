package server

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kenny-designs/wavefront/planner"
)

type metrics struct {
	plans    *prometheus.CounterVec
	duration prometheus.Histogram
	hops     prometheus.Histogram
	labeled  prometheus.Histogram
	streams  prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		plans: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wavefront_plans_total",
			Help: "Plans served by result",
		}, []string{"result"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wavefront_plan_duration_seconds",
			Help:    "Time to plan, dilation and retry included",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
		hops: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wavefront_plan_hops",
			Help:    "Path length of successful plans in cells",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		labeled: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wavefront_plan_labeled_cells",
			Help:    "Cells labeled by the wavefront per successful plan",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		streams: f.NewGauge(prometheus.GaugeOpts{
			Name: "wavefront_stream_clients",
			Help: "Open /plan/stream connections",
		}),
	}
}

func (m *metrics) observe(d time.Duration, res *planner.Result, err error) {
	m.duration.Observe(d.Seconds())
	m.plans.WithLabelValues(resultLabel(err)).Inc()
	if err == nil {
		m.hops.Observe(float64(res.Hops))
		m.labeled.Observe(float64(res.Labeled))
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, planner.ErrOutOfBounds):
		return "out_of_bounds"
	case errors.Is(err, planner.ErrNoPath):
		return "no_path"
	case errors.Is(err, planner.ErrUnreachableGoal):
		return "unreachable_goal"
	}
	return "error"
}
