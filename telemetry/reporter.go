// Package telemetry ships github.com/rcrowley/go-metrics
// metrics.Registry to a time series pipeline.
package telemetry

// A Reporter periodically scans metrics.Registry and
// republishes every metric outside of the process.
//
// Start must not block the caller, and Stop waits for any
// in-flight flush to complete.
type Reporter interface {
	Name() string

	Start() error
	Stop()
}

var Default Reporter
