package kafka

import (
	l "log"
	"sync"
	"time"

	"github.com/Shopify/sarama"
	"github.com/eapache/go-resiliency/breaker"
	"github.com/funkygao/kafkatsdb/store"
	"github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"
)

var _ store.PubStore = &pubStore{}

type pubStore struct {
	cf *Config

	newAsync asyncFactory
	newSync  syncFactory

	async sarama.AsyncProducer
	sync  sarama.SyncProducer

	breaker *breaker.Breaker

	// guards the producer lifecycle, Pub holds the read lock
	lock    sync.RWMutex
	started bool
	stopped bool
	wg      sync.WaitGroup

	pubOk     metrics.Counter
	pubFailed metrics.Counter
	pubBusy   metrics.Counter
}

// NewPubStore creates a kafka backed pub store. The producer is not
// connected until Start.
func NewPubStore(cf *Config) *pubStore {
	if cf.Debug {
		sarama.Logger = l.New(log.StandardLogger().WriterLevel(log.DebugLevel),
			"[sarama] ", l.LstdFlags|l.Lshortfile)
	}

	cf.setDefaults()
	reg := cf.Registry
	return &pubStore{
		cf:        cf,
		newAsync:  sarama.NewAsyncProducer,
		newSync:   sarama.NewSyncProducer,
		breaker:   breaker.New(cf.BreakerErrors, 1, cf.BreakerTimeout),
		pubOk:     metrics.GetOrRegisterCounter("_kafka.pub.ok", reg),
		pubFailed: metrics.GetOrRegisterCounter("_kafka.pub.fail", reg),
		pubBusy:   metrics.GetOrRegisterCounter("_kafka.pub.busy", reg),
	}
}

func (this *pubStore) Name() string {
	return "kafka"
}

func (this *pubStore) Start() (err error) {
	if err = this.cf.Validate(); err != nil {
		return
	}

	this.lock.Lock()
	defer this.lock.Unlock()

	if this.started {
		return
	}

	if this.cf.Sync {
		this.sync, err = this.syncProducer()
	} else {
		this.async, err = this.asyncProducer()
	}
	if err != nil {
		return
	}

	if this.async != nil {
		this.wg.Add(1)
		go this.drainErrors()
	}

	this.started = true
	return
}

// drainErrors consumes async delivery failures. Messages are only returned
// here after all sarama retry attempts are exhausted.
func (this *pubStore) drainErrors() {
	defer this.wg.Done()

	for perr := range this.async.Errors() {
		log.Errorf("kafka async pub[%s]: %v", perr.Msg.Topic, perr.Err)
		this.pubFailed.Inc(1)

		err := perr.Err
		this.breaker.Run(func() error {
			return err
		})
	}

	log.Tracef("kafka async pub errors drained")
}

func (this *pubStore) Stop() {
	this.lock.Lock()
	if !this.started || this.stopped {
		this.lock.Unlock()
		return
	}
	this.stopped = true

	if this.async != nil {
		// will flush any buffered message
		this.async.AsyncClose()
	}
	if this.sync != nil {
		if err := this.sync.Close(); err != nil {
			log.Errorf("kafka sync producer close: %v", err)
		}
	}
	this.lock.Unlock()

	this.wg.Wait()
	log.Tracef("kafka pub store stopped")
}

func (this *pubStore) Pub(topic string, msg []byte) error {
	if topic == "" {
		return store.ErrEmptyTopic
	}

	this.lock.RLock()
	defer this.lock.RUnlock()

	if this.stopped {
		return store.ErrShuttingDown
	}
	if !this.started {
		return store.ErrNotStarted
	}

	pm := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(msg),
	}

	err := this.breaker.Run(func() error {
		if this.sync != nil {
			_, _, err := this.sync.SendMessage(pm)
			return err
		}

		return this.enqueue(pm)
	})
	switch err {
	case nil:
		this.pubOk.Inc(1)

	case breaker.ErrBreakerOpen:
		err = store.ErrBreakerOpen

	case store.ErrBusy:
		this.pubBusy.Inc(1)

	default:
		this.pubFailed.Inc(1)
	}

	return err
}

func (this *pubStore) enqueue(pm *sarama.ProducerMessage) error {
	t := time.NewTimer(this.cf.EnqueueTimeout)
	defer t.Stop()

	select {
	case this.async.Input() <- pm:
		return nil

	case <-t.C:
		return store.ErrBusy
	}
}
