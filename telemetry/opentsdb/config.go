package opentsdb

import (
	"time"
)

const DefaultName = "OpenTSDBKafkaReporter"

// Config is set once before New and must not be mutated afterwards.
type Config struct {
	Name  string // report name, shows in logs and self metrics
	Topic string // required

	Interval time.Duration

	// RateUnit scales meter rates: a per second rate is multiplied by
	// RateUnit in seconds.
	RateUnit time.Duration

	// DurationUnit scales timer readings: raw nanoseconds are divided by it.
	DurationUnit time.Duration

	Tags   Tags
	Filter Filter
	Prefix string // optional, prepended as "<prefix>.<name>"

	LegacyNames      bool
	TimestampSeconds bool // epoch seconds instead of milliseconds
	FlushOnStop      bool

	Now func() time.Time
}

func DefaultConfig(topic string) *Config {
	return &Config{
		Name:         DefaultName,
		Topic:        topic,
		Interval:     time.Minute,
		RateUnit:     time.Second,
		DurationUnit: time.Second,
		Filter:       AllFilter,
		Now:          time.Now,
	}
}

// Validate checks required fields and fills the optional ones.
func (this *Config) Validate() error {
	if this.Topic == "" {
		return ErrEmptyTopic
	}
	if this.Interval <= 0 {
		return ErrInvalidInterval
	}
	if this.RateUnit <= 0 || this.DurationUnit <= 0 {
		return ErrInvalidUnit
	}
	if err := this.Tags.Validate(); err != nil {
		return err
	}

	if this.Name == "" {
		this.Name = DefaultName
	}
	if this.Filter == nil {
		this.Filter = AllFilter
	}
	if this.Now == nil {
		this.Now = time.Now
	}

	return nil
}

// Timestamp is the record timestamp of now, in epoch milliseconds or
// seconds per TimestampSeconds.
func (this *Config) Timestamp() int64 {
	now := time.Now
	if this.Now != nil {
		now = this.Now
	}

	if this.TimestampSeconds {
		return now().Unix()
	}
	return now().UnixMilli()
}
