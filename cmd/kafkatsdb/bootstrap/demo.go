package bootstrap

import (
	"math/rand"
	"time"

	"github.com/funkygao/kafkatsdb/telemetry/opentsdb"
	"github.com/rcrowley/go-metrics"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	log "github.com/sirupsen/logrus"
)

// demo feeds a registry with a fixed gauge, a busy meter, the go runtime
// memory stats and a few host gauges.
type demo struct {
	r       metrics.Registry
	latency metrics.Meter

	quiting, quit chan struct{}
}

func newDemo(r metrics.Registry) *demo {
	metrics.GetOrRegisterGauge("space", r).Update(5)
	metrics.RegisterRuntimeMemStats(r)
	registerHostGauges(r)

	return &demo{
		r:       r,
		latency: metrics.GetOrRegisterMeter("latency", r),
		quiting: make(chan struct{}),
		quit:    make(chan struct{}),
	}
}

func (this *demo) Start() {
	go this.run()
}

func (this *demo) Stop() {
	close(this.quiting)
	<-this.quit
}

func (this *demo) run() {
	defer close(this.quit)

	markTicker := time.NewTicker(100 * time.Millisecond)
	defer markTicker.Stop()
	memTicker := time.NewTicker(5 * time.Second)
	defer memTicker.Stop()

	metrics.CaptureRuntimeMemStatsOnce(this.r)
	for {
		select {
		case <-this.quiting:
			return

		case <-markTicker.C:
			this.latency.Mark(rand.Int63n(100))

		case <-memTicker.C:
			metrics.CaptureRuntimeMemStatsOnce(this.r)
		}
	}
}

// registerHostGauges samples the host lazily, on every registry snapshot.
func registerHostGauges(r metrics.Registry) {
	r.GetOrRegister("host.mem.used_pct", metrics.NewFunctionalGaugeFloat64(func() float64 {
		vm, err := mem.VirtualMemory()
		if err != nil {
			log.Debugf("host mem: %v", err)
			return 0
		}
		return vm.UsedPercent
	}))

	r.GetOrRegister("host.cpu.used_pct", metrics.NewFunctionalGaugeFloat64(func() float64 {
		pct, err := cpu.Percent(0, false)
		if err != nil || len(pct) == 0 {
			return 0
		}
		return pct[0]
	}))

	for _, w := range []string{"1m", "5m", "15m"} {
		w := w
		r.GetOrRegister(opentsdb.Tagged("host.load", "window", w), metrics.NewFunctionalGaugeFloat64(func() float64 {
			avg, err := load.Avg()
			if err != nil {
				return 0
			}

			switch w {
			case "1m":
				return avg.Load1
			case "5m":
				return avg.Load5
			default:
				return avg.Load15
			}
		}))
	}
}
