package report

import (
	"fmt"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
)

// WriteMetrics writes the report to path in the text format read by the
// node exporter textfile collector.
func WriteMetrics(path string, rep Report) error {
	labels := prometheus.Labels{"binary": filepath.Base(rep.Path), "backend": rep.Backend}
	insts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "isaext_instructions_total",
		Help:        "Instructions requiring each CPU feature.",
		ConstLabels: labels,
	}, []string{"feature"})
	decoded := prometheus.NewCounter(prometheus.CounterOpts{
		Name:        "isaext_decoded_instructions_total",
		Help:        "Instructions classified.",
		ConstLabels: labels,
	})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{
		Name:        "isaext_skipped_instructions_total",
		Help:        "Instructions the oracle could not classify.",
		ConstLabels: labels,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(insts, decoded, skipped)
	for _, f := range rep.Features {
		insts.WithLabelValues(string(f.ID)).Add(float64(f.Count))
	}
	decoded.Add(float64(rep.Instructions))
	skipped.Add(float64(rep.Skipped))

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
