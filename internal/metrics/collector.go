package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeInserted    = "inserted"
	OutcomeOverwritten = "overwritten"
	OutcomeIgnored     = "ignored"
	OutcomeDuplicate   = "duplicate"
	OutcomeHit         = "hit"
	OutcomeMiss        = "miss"
	OutcomeMismatch    = "mismatch"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "weave"

// Recorder receives registry activity.
type Recorder interface {
	ObserveRegistration(lifetime, outcome string)
	ObserveForward(outcome string)
	ObserveResolution(outcome string)
	ObserveFactory(lifetime string)
	SetServices(n int)
}

// Collector records registry activity in Prometheus metrics.
type Collector struct {
	registrations *prometheus.CounterVec
	forwards      *prometheus.CounterVec
	resolutions   *prometheus.CounterVec
	factories     *prometheus.CounterVec
	services      prometheus.Gauge
}

// NewCollector creates the registry metrics and registers them with reg. An empty
// namespace falls back to DefaultNamespace.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if reg == nil {
		return nil, errors.New("metrics: nil registerer")
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	c := &Collector{
		registrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "registrations_total",
				Help:      "Total number of service registrations by lifetime and outcome",
			},
			[]string{"lifetime", "outcome"},
		),
		forwards: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "forwards_total",
				Help:      "Total number of forwarding registrations by outcome",
			},
			[]string{"outcome"},
		),
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolutions_total",
				Help:      "Total number of resolutions by outcome",
			},
			[]string{"outcome"},
		),
		factories: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "factory_invocations_total",
				Help:      "Total number of factory invocations by lifetime",
			},
			[]string{"lifetime"},
		),
		services: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "services",
				Help:      "Number of keys currently registered",
			},
		),
	}

	for _, col := range []prometheus.Collector{c.registrations, c.forwards, c.resolutions, c.factories, c.services} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register collector: %w", err)
		}
	}

	return c, nil
}

func (c *Collector) ObserveRegistration(lifetime, outcome string) {
	c.registrations.WithLabelValues(lifetime, outcome).Inc()
}

func (c *Collector) ObserveForward(outcome string) {
	c.forwards.WithLabelValues(outcome).Inc()
}

func (c *Collector) ObserveResolution(outcome string) {
	c.resolutions.WithLabelValues(outcome).Inc()
}

func (c *Collector) ObserveFactory(lifetime string) {
	c.factories.WithLabelValues(lifetime).Inc()
}

func (c *Collector) SetServices(n int) {
	c.services.Set(float64(n))
}
