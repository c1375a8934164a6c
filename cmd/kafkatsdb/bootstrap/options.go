package bootstrap

import (
	"fmt"
	"time"

	"github.com/funkygao/kafkatsdb/store/kafka"
	"github.com/funkygao/kafkatsdb/telemetry/opentsdb"
	"github.com/urfave/cli/v3"
)

var Options struct {
	ConfigFile string
	Brokers    []string
	Topic      string
	Interval   time.Duration
	Tags       []string
	Sync       bool
	LogFile    string
	LogLevel   string
	DryRun     bool
	Console    bool
	PprofAddr  string
}

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "yaml config file, defaults to ~/.kafkatsdb.cf",
			Sources: cli.EnvVars("KAFKATSDB_CONFIG"),
		},
		&cli.StringSliceFlag{
			Name:    "brokers",
			Usage:   "kafka broker addrs, overrides the config file",
			Sources: cli.EnvVars("KAFKATSDB_BROKERS"),
		},
		&cli.StringFlag{
			Name:  "topic",
			Usage: "kafka topic of the put records",
		},
		&cli.DurationFlag{
			Name:  "interval",
			Usage: "report interval",
		},
		&cli.StringSliceFlag{
			Name:  "tag",
			Usage: "extra k=v tag on every record, repeatable",
		},
		&cli.BoolFlag{
			Name:  "sync",
			Usage: "wait for the broker ack of every record",
		},
		&cli.StringFlag{
			Name:  "log",
			Value: "stdout",
			Usage: "log file",
		},
		&cli.StringFlag{
			Name:  "level",
			Usage: "log level, overrides the config file",
		},
		&cli.BoolFlag{
			Name:  "dryrun",
			Usage: "publish to an in-memory store instead of kafka",
		},
		&cli.BoolFlag{
			Name:  "console",
			Usage: "also log every record",
		},
		&cli.StringFlag{
			Name:  "pprof",
			Usage: "pprof and /debug/metrics listen addr, empty to disable",
		},
	}
}

func loadOptions(cmd *cli.Command) {
	Options.ConfigFile = cmd.String("config")
	Options.Brokers = cmd.StringSlice("brokers")
	Options.Topic = cmd.String("topic")
	Options.Interval = cmd.Duration("interval")
	Options.Tags = cmd.StringSlice("tag")
	Options.Sync = cmd.Bool("sync")
	Options.LogFile = cmd.String("log")
	Options.LogLevel = cmd.String("level")
	Options.DryRun = cmd.Bool("dryrun")
	Options.Console = cmd.Bool("console")
	Options.PprofAddr = cmd.String("pprof")
}

// applyOptions lets the command line win over the config file.
func applyOptions(rc *opentsdb.Config, kc *kafka.Config) error {
	if len(Options.Brokers) > 0 {
		kc.Brokers = Options.Brokers
	}
	if Options.Sync {
		kc.Sync = true
	}
	if Options.Topic != "" {
		rc.Topic = Options.Topic
	}
	if Options.Interval > 0 {
		rc.Interval = Options.Interval
	}

	for _, kv := range Options.Tags {
		tags, err := opentsdb.ParseTags(kv)
		if err != nil {
			return fmt.Errorf("--tag %s: %w", kv, err)
		}
		rc.Tags = rc.Tags.Merge(tags)
	}

	return rc.Validate()
}
