package kafka

import (
	"time"

	"github.com/funkygao/kafkatsdb/store"
	"github.com/rcrowley/go-metrics"
)

type Config struct {
	Brokers  []string
	ClientID string

	// Sync selects a sarama.SyncProducer: every Pub waits for the broker ack.
	Sync     bool
	Compress bool
	Debug    bool

	// EnqueueTimeout bounds how long an async Pub may block on a full
	// producer input channel.
	EnqueueTimeout time.Duration

	// BreakerErrors consecutive failures within BreakerTimeout open the
	// circuit, after which Pub fails fast until BreakerTimeout elapses.
	BreakerErrors  int
	BreakerTimeout time.Duration

	// Registry receives the private pub counters and sarama's own metrics.
	Registry metrics.Registry
}

func DefaultConfig() *Config {
	return &Config{
		ClientID:       "kafkatsdb",
		EnqueueTimeout: time.Second,
		BreakerErrors:  10,
		BreakerTimeout: time.Second * 30,
		Registry:       metrics.DefaultRegistry,
	}
}

func (this *Config) Validate() error {
	if len(this.Brokers) == 0 {
		return store.ErrEmptyBrokers
	}

	this.setDefaults()
	return nil
}

func (this *Config) setDefaults() {
	if this.EnqueueTimeout <= 0 {
		this.EnqueueTimeout = time.Second
	}
	if this.BreakerErrors <= 0 {
		this.BreakerErrors = 10
	}
	if this.BreakerTimeout <= 0 {
		this.BreakerTimeout = time.Second * 30
	}
	if this.Registry == nil {
		this.Registry = metrics.DefaultRegistry
	}
}
