package opentsdb

import (
	"fmt"
	"sync"
	"time"

	"github.com/funkygao/kafkatsdb/telemetry"
	"github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"
)

var _ telemetry.Reporter = &Reporter{}

// Publisher hands one put record to the bus. store.PubStore satisfies it.
type Publisher interface {
	Pub(topic string, msg []byte) error
}

// Reporter periodically drains a registry into put records published on
// a single topic.
type Reporter struct {
	cf  *Config
	reg metrics.Registry
	pub Publisher
	fmt *Formatter

	// serializes Report so concurrent flushes never interleave
	flushMu sync.Mutex

	lifecycleMu      sync.Mutex
	started, stopped bool
	quiting, quit    chan struct{}

	ticks   metrics.Counter
	records metrics.Counter
	errors  metrics.Counter
	latency metrics.Timer
}

// New validates cf and creates a reporter. cf must not be modified
// afterwards.
func New(r metrics.Registry, cf *Config, pub Publisher) (*Reporter, error) {
	if r == nil {
		return nil, ErrNilRegistry
	}
	if pub == nil {
		return nil, ErrNilPublisher
	}
	if err := cf.Validate(); err != nil {
		return nil, err
	}

	prefix := "_" + cf.Name + "."
	this := &Reporter{
		cf:      cf,
		reg:     r,
		pub:     pub,
		fmt:     NewFormatter(cf),
		quiting: make(chan struct{}),
		quit:    make(chan struct{}),
		ticks:   metrics.GetOrRegisterCounter(prefix+"ticks", r),
		records: metrics.GetOrRegisterCounter(prefix+"records", r),
		errors:  metrics.GetOrRegisterCounter(prefix+"errors", r),
		latency: metrics.GetOrRegisterTimer(prefix+"flush", r),
	}

	return this, nil
}

func (this *Reporter) Name() string {
	return this.cf.Name
}

// Start schedules a flush every Config.Interval, the first one an interval
// from now. It never blocks; calling it on a started or stopped reporter
// does nothing.
func (this *Reporter) Start() error {
	this.lifecycleMu.Lock()
	defer this.lifecycleMu.Unlock()

	if this.started || this.stopped {
		log.Warnf("%s already started, ignored", this.cf.Name)
		return nil
	}

	this.started = true
	go this.run()

	log.Infof("%s started: topic=%s interval=%s tags=%s",
		this.cf.Name, this.cf.Topic, this.cf.Interval, this.cf.Tags)
	return nil
}

// Stop cancels the schedule and waits for an in-flight flush to complete.
func (this *Reporter) Stop() {
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

	log.Infof("%s stopped", this.cf.Name)
}

func (this *Reporter) run() {
	defer close(this.quit)

	ticker := time.NewTicker(this.cf.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-this.quiting:
			if this.cf.FlushOnStop {
				this.tick()
			}
			return

		case <-ticker.C:
			select {
			case <-this.quiting:
				// stop won the race, no flush after cancellation
				continue
			default:
			}

			this.tick()
		}
	}
}

// tick is one scheduled flush. A failed tick is logged and the schedule
// goes on.
func (this *Reporter) tick() {
	this.ticks.Inc(1)
	if err := this.Flush(); err != nil {
		this.errors.Inc(1)
		log.Errorf("%s: %v", this.cf.Name, err)
	}
}

// Flush captures the registry and reports it right away.
func (this *Reporter) Flush() error {
	return this.Report(Capture(this.reg, this.cf.Filter))
}

// Report publishes every sample of snap, kind by kind in name order, all
// stamped with the same timestamp. The first formatting or publish error
// abandons the rest of the snapshot and is returned; records already
// published stay published.
//
// A nil snap reports nothing. Concurrent calls are serialized.
func (this *Reporter) Report(snap *Snapshot) (err error) {
	this.flushMu.Lock()
	defer this.flushMu.Unlock()

	if snap == nil {
		snap = &Snapshot{}
	}

	t0 := time.Now()
	ts := this.cf.Timestamp()
	var n int64
	defer func() {
		this.records.Inc(n)
		this.latency.UpdateSince(t0)
	}()

	for _, samples := range snap.kinds() {
		for _, s := range sorted(samples) {
			lines, err := this.fmt.Format(s, ts)
			if err != nil {
				return fmt.Errorf("format: %w", err)
			}

			for _, line := range lines {
				if err = this.pub.Pub(this.cf.Topic, []byte(line)); err != nil {
					return fmt.Errorf("pub %s %s: %w", s.Kind(), s.Name(), err)
				}
				n++
			}
		}
	}

	log.Debugf("%s reported %d metrics in %d records, %s",
		this.cf.Name, snap.Len(), n, time.Since(t0))
	return nil
}
