// Package metrics exposes Prometheus instrumentation for the venue site.
//
// New registers every collector with the given registerer so tests can use
// a private prometheus.Registry while the binary uses the default one:
//
//	m := metrics.New(prometheus.DefaultRegisterer)
//	r.Use(m.Middleware)
//	r.Handle("/metrics", promhttp.Handler())
//
// Contact form outcomes are recorded with RecordSubmission; only the outcome
// and the names of failing fields are tracked, never submitted values.
package metrics
