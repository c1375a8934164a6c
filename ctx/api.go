package ctx

import (
	"runtime"
	"strconv"

	"github.com/funkygao/kafkatsdb/telemetry/opentsdb"
)

func Hostname() string {
	ensureLogLoaded()
	return conf.hostname
}

func LogLevel() string {
	ensureLogLoaded()
	return conf.LogLevel
}

func Brokers() []string {
	ensureLogLoaded()
	return conf.Brokers
}

func Topic() string {
	ensureLogLoaded()
	return conf.Topic
}

func Sync() bool {
	ensureLogLoaded()
	return conf.Sync
}

func Compress() bool {
	ensureLogLoaded()
	return conf.Compress
}

// Tags returns a copy of the configured tags in file order.
func Tags() opentsdb.Tags {
	ensureLogLoaded()
	return append(opentsdb.Tags(nil), conf.tags...)
}

// ReporterConfig returns a fresh reporter config on each call, callers may
// override fields before handing it to opentsdb.New.
func ReporterConfig() *opentsdb.Config {
	ensureLogLoaded()
	return conf.reporterConfig()
}

func NumCPU() int {
	return runtime.NumCPU()
}

func NumCPUStr() string {
	return strconv.Itoa(NumCPU())
}
