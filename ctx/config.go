// Package ctx provides configurations loading and exporting.
package ctx

import (
	"errors"
	"fmt"
	"time"

	"github.com/funkygao/kafkatsdb/telemetry/opentsdb"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidTags = errors.New("tags must be a mapping")

	conf *config
)

type config struct {
	hostname string // not config, but runtime

	Name             string        `yaml:"name"`
	Brokers          []string      `yaml:"brokers"`
	Topic            string        `yaml:"topic"`
	Interval         time.Duration `yaml:"interval"`
	RateUnit         time.Duration `yaml:"rate_unit"`
	DurationUnit     time.Duration `yaml:"duration_unit"`
	RawTags          yaml.Node     `yaml:"tags"`
	HostTag          bool          `yaml:"host_tag"`
	Prefix           string        `yaml:"prefix"`
	LegacyNames      bool          `yaml:"legacy_names"`
	TimestampSeconds bool          `yaml:"timestamp_seconds"`
	FlushOnStop      bool          `yaml:"flush_on_stop"`
	Sync             bool          `yaml:"sync"`
	Compress         bool          `yaml:"compress"`
	LogLevel         string        `yaml:"loglevel"`

	tags opentsdb.Tags
}

func parse(data []byte) (*config, error) {
	c := &config{
		Name:         opentsdb.DefaultName,
		Interval:     time.Minute,
		RateUnit:     time.Second,
		DurationUnit: time.Second,
		LogLevel:     "info",
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}

	tags, err := orderedTags(&c.RawTags)
	if err != nil {
		return nil, err
	}
	c.tags = tags
	return c, nil
}

// orderedTags keeps the mapping order of the yaml document.
func orderedTags(n *yaml.Node) (opentsdb.Tags, error) {
	switch n.Kind {
	case 0:
		return nil, nil

	case yaml.MappingNode:
		kv := make([]string, 0, len(n.Content))
		for _, c := range n.Content {
			if c.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: %w", c.Line, ErrInvalidTags)
			}
			kv = append(kv, c.Value)
		}
		return opentsdb.NewTags(kv...)

	default:
		return nil, fmt.Errorf("line %d: %w", n.Line, ErrInvalidTags)
	}
}

// reporterConfig builds the reporter config for the given topic.
func (c *config) reporterConfig() *opentsdb.Config {
	cf := opentsdb.DefaultConfig(c.Topic)
	cf.Name = c.Name
	cf.Interval = c.Interval
	cf.RateUnit = c.RateUnit
	cf.DurationUnit = c.DurationUnit
	cf.Prefix = c.Prefix
	cf.LegacyNames = c.LegacyNames
	cf.TimestampSeconds = c.TimestampSeconds
	cf.FlushOnStop = c.FlushOnStop
	cf.Tags = append(opentsdb.Tags(nil), c.tags...)
	if c.HostTag && c.hostname != "" {
		cf.Tags = cf.Tags.Merge(opentsdb.Tags{{Key: "host", Value: c.hostname}})
	}
	return cf
}

func ensureLogLoaded() {
	if conf == nil {
		panic("call LoadConfig before this")
	}
}
