package kafka

import (
	"time"

	"github.com/Shopify/sarama"
	"github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"
)

type (
	asyncFactory func(brokers []string, cf *sarama.Config) (sarama.AsyncProducer, error)
	syncFactory  func(brokers []string, cf *sarama.Config) (sarama.SyncProducer, error)
)

func (this *pubStore) saramaConfig() *sarama.Config {
	cf := sarama.NewConfig()
	cf.ClientID = this.cf.ClientID
	cf.MetricRegistry = metrics.NewPrefixedChildRegistry(this.cf.Registry, "_sarama.")

	cf.Net.DialTimeout = time.Second * 10
	cf.Net.ReadTimeout = time.Second * 10
	cf.Net.WriteTimeout = time.Second * 10

	cf.Metadata.RefreshFrequency = time.Minute * 10
	cf.Metadata.Retry.Max = 3
	cf.Metadata.Retry.Backoff = time.Millisecond * 200

	cf.Producer.RequiredAcks = sarama.WaitForLocal
	cf.Producer.Timeout = time.Second
	cf.Producer.Retry.Backoff = time.Millisecond * 200
	cf.Producer.Retry.Max = 3
	cf.Producer.Return.Errors = true
	if this.cf.Compress {
		cf.Producer.Compression = sarama.CompressionSnappy
	}

	if this.cf.Sync {
		// required by sarama.SyncProducer
		cf.Producer.Return.Successes = true
	} else {
		cf.Producer.Return.Successes = false
		cf.Producer.Flush.Frequency = time.Millisecond * 500
		cf.Producer.Flush.Messages = 100
		cf.Producer.Flush.MaxMessages = 0 // unlimited
	}

	return cf
}

func (this *pubStore) asyncProducer() (sarama.AsyncProducer, error) {
	t1 := time.Now()
	p, err := this.newAsync(this.cf.Brokers, this.saramaConfig())
	if err != nil {
		return nil, err
	}

	log.Debugf("kafka async producer connected: %+v %s", this.cf.Brokers, time.Since(t1))
	return p, nil
}

func (this *pubStore) syncProducer() (sarama.SyncProducer, error) {
	t1 := time.Now()
	p, err := this.newSync(this.cf.Brokers, this.saramaConfig())
	if err != nil {
		return nil, err
	}

	log.Debugf("kafka sync producer connected: %+v %s", this.cf.Brokers, time.Since(t1))
	return p, nil
}
