package sw

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	alignmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swalign_alignments_total",
		Help: "Alignments run, by engine and result.",
	}, []string{"engine", "result"})

	cellsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swalign_cells_total",
		Help: "DP cells covered by successful alignments, by engine.",
	}, []string{"engine"})

	alignmentDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "swalign_alignment_duration_seconds",
		Help:    "Wall time of one alignment, by engine.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"engine"})
)

func observe(engine string, n, m int, elapsed time.Duration, err error) {
	alignmentsTotal.WithLabelValues(engine, kindLabel(err)).Inc()
	if err != nil {
		return
	}
	cellsTotal.WithLabelValues(engine).Add(float64(n) * float64(m))
	alignmentDuration.WithLabelValues(engine).Observe(elapsed.Seconds())
}
