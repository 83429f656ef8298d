package reporter

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"agriverify/pkg/executor"
)

// NewMetricsRegistry returns a registry holding one sample set for result,
// suitable for the node_exporter textfile collector.
func NewMetricsRegistry(result *executor.ExecutionResult) *prometheus.Registry {
	reg := prometheus.NewRegistry()

	checkSuccess := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "agricure_verify_check_success",
			Help: "Whether the check passed in the last run (1 = pass, 0 = fail)",
		},
		[]string{"check"},
	)
	checkDuration := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "agricure_verify_check_duration_seconds",
			Help: "Duration of the check in the last run",
		},
		[]string{"check"},
	)
	successRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "agricure_verify_success_ratio",
		Help: "Fraction of checks that passed in the last run",
	})
	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "agricure_verify_last_run_timestamp_seconds",
		Help: "Unix time the last run finished",
	})
	reg.MustRegister(checkSuccess, checkDuration, successRatio, lastRun)

	for _, r := range result.Results {
		v := 0.0
		if r.Passed {
			v = 1
		}
		checkSuccess.WithLabelValues(r.Name).Set(v)
		checkDuration.WithLabelValues(r.Name).Set(r.Duration.Seconds())
	}
	successRatio.Set(result.Summary().SuccessRate() / 100)
	lastRun.Set(float64(result.EndTime.Unix()))

	return reg
}

// WriteMetrics writes result to path in the Prometheus text format.
func WriteMetrics(path string, result *executor.ExecutionResult) error {
	if err := prometheus.WriteToTextfile(path, NewMetricsRegistry(result)); err != nil {
		return fmt.Errorf("failed to write metrics file '%s': %w", path, err)
	}
	return nil
}
