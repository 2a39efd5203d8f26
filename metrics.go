package multiindex

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var AddResults = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "multiindex",
	Subsystem: "container",
	Name:      "adds",
}, []string{"container", "result"})

var Removals = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "multiindex",
	Subsystem: "container",
	Name:      "removals",
}, []string{"container"})

var Clears = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "multiindex",
	Subsystem: "container",
	Name:      "clears",
}, []string{"container"})

var IndexCreations = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "multiindex",
	Subsystem: "container",
	Name:      "index_creations",
}, []string{"container", "kind", "result"})

var IndexDetaches = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "multiindex",
	Subsystem: "container",
	Name:      "index_detaches",
}, []string{"container", "kind"})

// RegisterMetrics registers the container collectors with reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	var errs []error
	for _, c := range []prometheus.Collector{AddResults, Removals, Clears, IndexCreations, IndexDetaches} {
		if err := reg.Register(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
