package opentsdb

import (
	"time"
)

type fakeCount int64

func (c fakeCount) Count() int64 { return int64(c) }

type fakeRates struct {
	m1, m5, m15, mean float64
}

func (r fakeRates) Rate1() float64    { return r.m1 }
func (r fakeRates) Rate5() float64    { return r.m5 }
func (r fakeRates) Rate15() float64   { return r.m15 }
func (r fakeRates) RateMean() float64 { return r.mean }

// fakeDist answers percentiles for median, 75, 95, 98, 99, 99.9 in order
type fakeDist struct {
	min, max     int64
	mean, stddev float64
	ps           []float64
}

func (d fakeDist) Min() int64                      { return d.min }
func (d fakeDist) Max() int64                      { return d.max }
func (d fakeDist) Mean() float64                   { return d.mean }
func (d fakeDist) StdDev() float64                 { return d.stddev }
func (d fakeDist) Percentiles([]float64) []float64 { return d.ps }

type anyGauge struct {
	v interface{}
}

func (g anyGauge) Value() interface{} { return g.v }

const testTs = int64(1700000000000)

func fixedNow() time.Time {
	return time.Unix(0, testTs*int64(time.Millisecond))
}

func testConfig() *Config {
	cf := DefaultConfig("storm_trooper")
	cf.Tags, _ = NewTags("cluster", "cb1", "bucket", "test")
	cf.Now = fixedNow
	return cf
}
