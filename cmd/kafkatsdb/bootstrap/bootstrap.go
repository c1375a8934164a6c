package bootstrap

import (
	"context"
	"fmt"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/funkygao/kafkatsdb"
	"github.com/funkygao/kafkatsdb/ctx"
	"github.com/funkygao/kafkatsdb/diagnostics/agent"
	"github.com/funkygao/kafkatsdb/store"
	"github.com/funkygao/kafkatsdb/store/dummy"
	"github.com/funkygao/kafkatsdb/store/kafka"
	"github.com/funkygao/kafkatsdb/telemetry"
	"github.com/funkygao/kafkatsdb/telemetry/console"
	"github.com/funkygao/kafkatsdb/telemetry/opentsdb"
	"github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// Main is the bootstrap main entry point, which runs until SIGINT or SIGTERM.
func Main(c context.Context, cmd *cli.Command) (err error) {
	defer func() {
		if e := recover(); e != nil {
			fmt.Println(e)
			debug.PrintStack()
			err = fmt.Errorf("%v", e)
		}
	}()

	loadOptions(cmd)
	if Options.ConfigFile != "" {
		ctx.LoadConfig(Options.ConfigFile)
	} else {
		ctx.LoadFromHome()
	}

	level := Options.LogLevel
	if level == "" {
		level = ctx.LogLevel()
	}
	SetupLogging(Options.LogFile, level)

	rc := ctx.ReporterConfig()
	kc := kafka.DefaultConfig()
	kc.Brokers = ctx.Brokers()
	kc.Sync = ctx.Sync()
	kc.Compress = ctx.Compress()
	kc.Debug = log.IsLevelEnabled(log.DebugLevel)
	if err = applyOptions(rc, kc); err != nil {
		return
	}

	if Options.PprofAddr != "" {
		agent.HttpAddr = Options.PprofAddr
		if _, err = agent.Start(metrics.DefaultRegistry); err != nil {
			return
		}
	}

	if Options.DryRun {
		store.DefaultPubStore = dummy.NewPubStore()
	} else {
		store.DefaultPubStore = kafka.NewPubStore(kc)
	}
	if err = store.DefaultPubStore.Start(); err != nil {
		return
	}
	log.Tracef("pub store[%s] started", store.DefaultPubStore.Name())

	d := newDemo(metrics.DefaultRegistry)
	d.Start()

	telemetry.Default, err = opentsdb.New(metrics.DefaultRegistry, rc, store.DefaultPubStore)
	if err != nil {
		store.DefaultPubStore.Stop()
		d.Stop()
		return
	}
	if err = telemetry.Default.Start(); err != nil {
		store.DefaultPubStore.Stop()
		d.Stop()
		return
	}
	log.Infof("telemetry[%s] started, %s -> %s every %s",
		telemetry.Default.Name(), rc.Tags, rc.Topic, rc.Interval)

	var dumper telemetry.Reporter
	if Options.Console {
		dumper = console.New(metrics.DefaultRegistry, rc, nil)
		dumper.Start()
	}

	sigCtx, stop := signal.NotifyContext(c, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()
	log.Infof("kafkatsdb[%s@%s] %s, shutting down...", kafkatsdb.BuildId, kafkatsdb.BuiltAt,
		strings.ToUpper(context.Cause(sigCtx).Error()))

	if dumper != nil {
		dumper.Stop()
	}

	telemetry.Default.Stop()
	log.Infof("telemetry[%s] stopped", telemetry.Default.Name())

	d.Stop()

	log.Tracef("pub store[%s] stopping", store.DefaultPubStore.Name())
	store.DefaultPubStore.Stop()

	log.Trace("all cleanup done")
	return nil
}
