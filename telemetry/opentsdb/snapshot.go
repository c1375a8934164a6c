package opentsdb

import (
	"sort"

	"github.com/rcrowley/go-metrics"
)

// Snapshot is the state of a registry at one instant: one name ordered
// list of samples per kind.
type Snapshot struct {
	Gauges     []Sample
	Counters   []Sample
	Histograms []Sample
	Meters     []Sample
	Timers     []Sample
}

// Capture reads every metric of r accepted by filter. Histograms, meters
// and timers are read through their own Snapshot so all facets of one
// metric come from the same instant.
func Capture(r metrics.Registry, filter Filter) *Snapshot {
	if filter == nil {
		filter = AllFilter
	}

	s := &Snapshot{}
	r.Each(func(name string, i interface{}) {
		if !filter(name, i) {
			return
		}

		switch m := i.(type) {
		case metrics.Counter:
			s.Counters = append(s.Counters, NewCounterSample(name, m.Snapshot()))

		case metrics.Gauge:
			s.Gauges = append(s.Gauges, NewGaugeSample(name, m.Value()))

		case metrics.GaugeFloat64:
			s.Gauges = append(s.Gauges, NewGaugeSample(name, m.Value()))

		case metrics.Histogram:
			s.Histograms = append(s.Histograms, NewHistogramSample(name, m.Snapshot()))

		case metrics.Meter:
			s.Meters = append(s.Meters, NewMeterSample(name, m.Snapshot()))

		case metrics.Timer:
			s.Timers = append(s.Timers, NewTimerSample(name, m.Snapshot()))

		case Valuer:
			s.Gauges = append(s.Gauges, NewGaugeSample(name, m.Value()))

		case metrics.Healthcheck:
			// ignored
		}
	})

	s.sort()
	return s
}

// Len is the number of metrics in the snapshot.
func (this *Snapshot) Len() int {
	return len(this.Gauges) + len(this.Counters) + len(this.Histograms) +
		len(this.Meters) + len(this.Timers)
}

func (this *Snapshot) Empty() bool {
	return this.Len() == 0
}

// kinds returns the per kind lists in report order.
func (this *Snapshot) kinds() [][]Sample {
	return [][]Sample{this.Gauges, this.Counters, this.Histograms, this.Meters, this.Timers}
}

func (this *Snapshot) sort() {
	for _, samples := range this.kinds() {
		sortByName(samples)
	}
}

func sortByName(samples []Sample) {
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Name() < samples[j].Name()
	})
}

// sorted returns samples in name order, copying only when needed.
func sorted(samples []Sample) []Sample {
	if sort.SliceIsSorted(samples, func(i, j int) bool {
		return samples[i].Name() < samples[j].Name()
	}) {
		return samples
	}

	c := make([]Sample, len(samples))
	copy(c, samples)
	sortByName(c)
	return c
}
