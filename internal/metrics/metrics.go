package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github/chapool/go-hdgen/internal/config"
)

const namespace = "hdgen"

// Service collects generator metrics in its own registry. There is no
// listener, metrics are exported through WriteTextfile for the node
// exporter textfile collector. A nil *Service is valid and records nothing.
type Service struct {
	registry *prometheus.Registry

	walletsGenerated *prometheus.CounterVec
	batchFailures    *prometheus.CounterVec
	batchDuration    *prometheus.HistogramVec
}

//nolint:nilnil // a nil *Service is the disabled state
func New(cfg config.Generator) (*Service, error) {
	if !cfg.Metrics.Enabled {
		return nil, nil
	}

	s := &Service{
		registry: prometheus.NewRegistry(),
		walletsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wallets_generated_total",
			Help:      "Number of wallets derived, by chain.",
		}, []string{"chain"}),
		batchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_failures_total",
			Help:      "Number of failed batch generations, by chain.",
		}, []string{"chain"}),
		batchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Time spent generating one batch, by chain.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"chain"}),
	}

	for _, c := range []prometheus.Collector{s.walletsGenerated, s.batchFailures, s.batchDuration} {
		if err := s.registry.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register collector")
		}
	}

	return s, nil
}

func (s *Service) Registry() *prometheus.Registry {
	if s == nil {
		return nil
	}
	return s.registry
}

func (s *Service) ObserveBatch(chain string, wallets int, took time.Duration) {
	if s == nil {
		return
	}
	s.walletsGenerated.WithLabelValues(chain).Add(float64(wallets))
	s.batchDuration.WithLabelValues(chain).Observe(took.Seconds())
}

func (s *Service) ObserveFailure(chain string) {
	if s == nil {
		return
	}
	s.batchFailures.WithLabelValues(chain).Inc()
}

// WriteTextfile writes all metrics in the text exposition format to filename.
func (s *Service) WriteTextfile(filename string) error {
	if s == nil || filename == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(filename, s.registry); err != nil {
		return errors.Wrap(err, "failed to write metrics textfile")
	}

	return nil
}
