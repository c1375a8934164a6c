// Package console writes the put records of a registry to the log
// instead of a message bus, for eyeballing what the kafka reporter ships.
package console

import (
	"sync"
	"time"

	"github.com/funkygao/kafkatsdb/telemetry"
	"github.com/funkygao/kafkatsdb/telemetry/opentsdb"
	"github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"
)

var _ telemetry.Reporter = &reporter{}

type reporter struct {
	cf     *opentsdb.Config
	reg    metrics.Registry
	fmt    *opentsdb.Formatter
	logger *log.Logger

	// Private also prints the in-memory only metrics.
	Private bool

	lifecycleMu      sync.Mutex
	started, stopped bool
	quiting, quit    chan struct{}
}

// New creates a console reporter sharing the formatting settings of cf.
// A nil logger means the standard logger.
func New(r metrics.Registry, cf *opentsdb.Config, logger *log.Logger) *reporter {
	if logger == nil {
		logger = log.StandardLogger()
	}

	return &reporter{
		cf:      cf,
		reg:     r,
		fmt:     opentsdb.NewFormatter(cf),
		logger:  logger,
		quiting: make(chan struct{}),
		quit:    make(chan struct{}),
	}
}

func (*reporter) Name() string {
	return "console"
}

// Start does nothing on a started or stopped reporter.
func (this *reporter) Start() error {
	this.lifecycleMu.Lock()
	defer this.lifecycleMu.Unlock()

	if this.started || this.stopped {
		return nil
	}

	this.started = true
	go this.run()
	return nil
}

func (this *reporter) Stop() {
	this.lifecycleMu.Lock()
	if !this.started || this.stopped {
		this.stopped = true
		this.lifecycleMu.Unlock()
		return
	}
	this.stopped = true
	this.lifecycleMu.Unlock()

	close(this.quiting)
	<-this.quit
}

func (this *reporter) run() {
	defer close(this.quit)

	ticker := time.NewTicker(this.cf.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-this.quiting:
			return

		case <-ticker.C:
			this.dump()
		}
	}
}

// dump logs every record of one snapshot. Unlike the kafka reporter a bad
// metric only skips itself.
func (this *reporter) dump() (n int) {
	filter := this.cf.Filter
	if this.Private {
		filter = func(string, interface{}) bool { return true }
	}

	snap := opentsdb.Capture(this.reg, filter)
	ts := this.cf.Timestamp()
	for _, samples := range [][]opentsdb.Sample{snap.Gauges, snap.Counters,
		snap.Histograms, snap.Meters, snap.Timers} {
		for _, s := range samples {
			lines, err := this.fmt.Format(s, ts)
			if err != nil {
				this.logger.Warnf("console: %v", err)
				continue
			}

			for _, line := range lines {
				this.logger.Info(line)
				n++
			}
		}
	}

	return
}
