package opentsdb

import (
	"fmt"
)

type Kind int

const (
	KindGauge Kind = iota
	KindCounter
	KindHistogram
	KindMeter
	KindTimer
)

func (k Kind) String() string {
	switch k {
	case KindGauge:
		return "gauge"
	case KindCounter:
		return "counter"
	case KindHistogram:
		return "histogram"
	case KindMeter:
		return "meter"
	case KindTimer:
		return "timer"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Counted is the reading of a counter.
type Counted interface {
	Count() int64
}

// Rates is the reading of a meter, in events per second.
type Rates interface {
	Rate1() float64
	Rate5() float64
	Rate15() float64
	RateMean() float64
}

// Distribution is the statistical snapshot of a histogram or timer.
// metrics.Histogram and metrics.Timer both satisfy it.
type Distribution interface {
	Min() int64
	Max() int64
	Mean() float64
	StdDev() float64
	Percentiles([]float64) []float64
}

// Valuer is a gauge whose reading is not one of the go-metrics numeric
// gauges. Its value is string converted into the record.
type Valuer interface {
	Value() interface{}
}

// Sample is one metric captured at one instant. It is a closed set:
// counter, gauge, histogram, meter and timer samples, each expanding
// into its own fixed list of records.
type Sample interface {
	Name() string
	Kind() Kind

	points(u *units) ([]point, error)
}

// point is one record of a sample before encoding: the metric suffix and
// the rendered value.
type point struct {
	suffix string
	value  string
}

var (
	// median, 75, 95, 98, 99, 99.9
	percentiles = []float64{0.5, 0.75, 0.95, 0.98, 0.99, 0.999}
)

type counterSample struct {
	name string
	c    Counted
}

func NewCounterSample(name string, c Counted) Sample {
	return counterSample{name: name, c: c}
}

func (this counterSample) Name() string { return this.name }
func (this counterSample) Kind() Kind   { return KindCounter }

func (this counterSample) points(*units) ([]point, error) {
	return []point{{".count", formatInt(this.c.Count())}}, nil
}

type gaugeSample struct {
	name  string
	value interface{}
}

func NewGaugeSample(name string, value interface{}) Sample {
	return gaugeSample{name: name, value: value}
}

func (this gaugeSample) Name() string { return this.name }
func (this gaugeSample) Kind() Kind   { return KindGauge }

func (this gaugeSample) points(*units) ([]point, error) {
	v, err := formatValue(this.value)
	if err != nil {
		return nil, err
	}
	return []point{{".gauge", v}}, nil
}

type meterSample struct {
	name string
	r    Rates
}

func NewMeterSample(name string, r Rates) Sample {
	return meterSample{name: name, r: r}
}

func (this meterSample) Name() string { return this.name }
func (this meterSample) Kind() Kind   { return KindMeter }

func (this meterSample) points(u *units) ([]point, error) {
	return floatPoints(
		".rate.mean", u.rate(this.r.RateMean()),
		".rate.1min", u.rate(this.r.Rate1()),
		".rate.5min", u.rate(this.r.Rate5()),
		".rate.15min", u.rate(this.r.Rate15()),
	)
}

type histogramSample struct {
	name string
	d    Distribution
}

func NewHistogramSample(name string, d Distribution) Sample {
	return histogramSample{name: name, d: d}
}

func (this histogramSample) Name() string { return this.name }
func (this histogramSample) Kind() Kind   { return KindHistogram }

// histograms measure counts and sizes: values are not unit converted
func (this histogramSample) points(u *units) ([]point, error) {
	ps := this.d.Percentiles(percentiles)
	pts, err := floatPoints(
		".pc.min", float64(this.d.Min()),
		".pc.max", float64(this.d.Max()),
		".pc.mean", this.d.Mean(),
		".pc.stddev", this.d.StdDev(),
		".pc.median", ps[0],
		".pc.75-pc", ps[1],
		".pc.95-pc", ps[2],
		".pc.98-pc", ps[3],
		".pc.99-pc", ps[4],
		".pc.999-pc", ps[5],
	)
	if err != nil || !u.legacy {
		return pts, err
	}

	// legacy consumers never got the 99th percentile
	return append(pts[:8], pts[9]), nil
}

type timerSample struct {
	name string
	d    Distribution
}

func NewTimerSample(name string, d Distribution) Sample {
	return timerSample{name: name, d: d}
}

func (this timerSample) Name() string { return this.name }
func (this timerSample) Kind() Kind   { return KindTimer }

func (this timerSample) points(u *units) ([]point, error) {
	ps := this.d.Percentiles(percentiles)
	if u.legacy {
		return floatPoints(
			".timer.min", u.duration(float64(this.d.Min())),
			".timer.mean", u.duration(this.d.Mean()),
			".timer.stddev", u.duration(this.d.StdDev()),
			".timer.median", u.duration(ps[0]),
			".timer.75-pc", u.duration(ps[1]),
			".timer.95-pc", u.duration(ps[2]),
			".timer.98-pc", u.duration(ps[3]),
			".timer.959-pc", u.duration(ps[5]),
		)
	}

	return floatPoints(
		".timer.min", u.duration(float64(this.d.Min())),
		".timer.mean", u.duration(this.d.Mean()),
		".timer.stddev", u.duration(this.d.StdDev()),
		".timer.median", u.duration(ps[0]),
		".timer.75-pc", u.duration(ps[1]),
		".timer.95-pc", u.duration(ps[2]),
		".timer.98-pc", u.duration(ps[3]),
		".timer.99-pc", u.duration(ps[4]),
		".timer.999-pc", u.duration(ps[5]),
	)
}

// floatPoints takes alternating suffix and value arguments.
func floatPoints(kv ...interface{}) ([]point, error) {
	pts := make([]point, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		suffix := kv[i].(string)
		v, err := formatFloat(kv[i+1].(float64))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", suffix, err)
		}
		pts = append(pts, point{suffix, v})
	}
	return pts, nil
}
