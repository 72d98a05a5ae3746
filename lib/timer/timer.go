package timer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var stageDuration = promauto.NewSummaryVec(prometheus.SummaryOpts{
	Name: "risp_stage_duration_seconds",
	Help: "Duration of individual interpreter stages (tokenize, parse, eval)",
	Objectives: map[float64]float64{
		0.50: 0.05,
		0.90: 0.05,
		0.99: 0.01,
	},
}, []string{"stage"})

type Timer struct {
	timer *prometheus.Timer
}

// Stop records the time elapsed since Start and returns it in seconds.
func (t Timer) Stop() float64 {
	return t.timer.ObserveDuration().Seconds()
}

// Start begins timing stage. Typical use: defer timer.Start("risp.eval").Stop()
func Start(stage string) Timer {
	return Timer{
		timer: prometheus.NewTimer(stageDuration.WithLabelValues(stage)),
	}
}
