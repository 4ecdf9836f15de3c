package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/iyhunko/getenv/envmap"
	"github.com/prometheus/client_golang/prometheus"
)

// ResultOK is the result label for a successful validation.
const ResultOK = "ok"

// Recorder collects envcheck metrics on a dedicated registry so a single run
// can be written out as a node_exporter textfile.
type Recorder struct {
	registry    *prometheus.Registry
	validations *prometheus.CounterVec
	keys        *prometheus.GaugeVec
	lastRun     prometheus.Gauge
	now         func() time.Time
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "envcheck",
			Name:      "validations_total",
			Help:      "The total number of environment validations, partitioned by mode and result.",
		}, []string{"mode", "result"}),
		keys: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "envcheck",
			Name:      "validated_keys",
			Help:      "The number of keys returned by the last successful validation.",
		}, []string{"mode"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "envcheck",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last validation.",
		}),
		now: time.Now,
	}
	r.registry.MustRegister(r.validations, r.keys, r.lastRun)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Observe records the outcome of one validation. Failures are labelled with
// the validation error kind, or "error" for anything else.
func (r *Recorder) Observe(mode string, env envmap.EnvMap, err error) {
	r.lastRun.Set(float64(r.now().Unix()))
	if err != nil {
		r.validations.WithLabelValues(mode, Result(err)).Inc()
		return
	}
	r.validations.WithLabelValues(mode, ResultOK).Inc()
	r.keys.WithLabelValues(mode).Set(float64(len(env)))
}

// WriteTextfile writes every metric in the node_exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}

// Result maps a validation error to its result label.
func Result(err error) string {
	if err == nil {
		return ResultOK
	}
	var verr *envmap.ValidationError
	if errors.As(err, &verr) {
		return verr.Kind.String()
	}
	return "error"
}
