package postcodes

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts validation outcomes served over HTTP.
type Metrics struct {
	Validations *prometheus.CounterVec
	Batches     prometheus.Counter
	BatchSize   prometheus.Histogram
}

// NewMetrics registers the module collectors on reg. A nil reg uses the
// default Prometheus registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Validations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ukpostcode_validations_total",
			Help: "Total number of postcodes validated, by outcome",
		}, []string{"result"}),
		Batches: f.NewCounter(prometheus.CounterOpts{
			Name: "ukpostcode_batches_total",
			Help: "Total number of batch validation requests served",
		}),
		BatchSize: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ukpostcode_batch_size",
			Help:    "Number of postcodes per batch validation request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		}),
	}
}

func (m *Metrics) observe(valid bool) {
	if m == nil {
		return
	}
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.Validations.WithLabelValues(result).Inc()
}

func (m *Metrics) observeBatch(size int) {
	if m == nil {
		return
	}
	m.Batches.Inc()
	m.BatchSize.Observe(float64(size))
}
