// Package kafkatsdb drains go-metrics registries into OpenTSDB put records
// published on kafka.
package kafkatsdb

var (
	// Version is the unified version of the whole kafkatsdb project.
	// Each component shares the same version info.
	Version = "unknown"

	// BuildId is the SCM commit id.
	BuildId = "?"

	// BuiltAt is the time when build.sh was run.
	BuiltAt = "1970"
)
