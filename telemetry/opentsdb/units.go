package opentsdb

import (
	"time"
)

type units struct {
	rateFactor      float64 // RateUnit in seconds
	durationDivisor float64 // DurationUnit in nanoseconds
	legacy          bool
}

func newUnits(rateUnit, durationUnit time.Duration, legacy bool) units {
	return units{
		rateFactor:      rateUnit.Seconds(),
		durationDivisor: float64(durationUnit),
		legacy:          legacy,
	}
}

func (this *units) rate(perSecond float64) float64 {
	return perSecond * this.rateFactor
}

func (this *units) duration(nanos float64) float64 {
	return nanos / this.durationDivisor
}
