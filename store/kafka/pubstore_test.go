package kafka

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/funkygao/kafkatsdb/store"
	"github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	cf := DefaultConfig()
	cf.Brokers = []string{"localhost:9092"}
	cf.Registry = metrics.NewRegistry()
	return cf
}

func newAsyncStore(t *testing.T, cf *Config, expect func(*mocks.AsyncProducer)) *pubStore {
	p := NewPubStore(cf)
	p.newAsync = func(brokers []string, scf *sarama.Config) (sarama.AsyncProducer, error) {
		mp := mocks.NewAsyncProducer(t, scf)
		expect(mp)
		return mp, nil
	}
	require.NoError(t, p.Start())
	return p
}

func TestPubName(t *testing.T) {
	assert.Equal(t, "kafka", NewPubStore(testConfig()).Name())
}

func TestStartWithoutBrokers(t *testing.T) {
	cf := testConfig()
	cf.Brokers = nil
	p := NewPubStore(cf)
	assert.Equal(t, store.ErrEmptyBrokers, p.Start())
}

func TestStartFactoryError(t *testing.T) {
	p := NewPubStore(testConfig())
	p.newAsync = func([]string, *sarama.Config) (sarama.AsyncProducer, error) {
		return nil, sarama.ErrOutOfBrokers
	}
	assert.Equal(t, sarama.ErrOutOfBrokers, p.Start())
	assert.Equal(t, store.ErrNotStarted, p.Pub("t", []byte("x")))
}

func TestAsyncPub(t *testing.T) {
	const line = "put space.gauge 1700000000000 5 cluster=cb1 bucket=test "

	p := newAsyncStore(t, testConfig(), func(mp *mocks.AsyncProducer) {
		mp.ExpectInputWithCheckerFunctionAndSucceed(func(val []byte) error {
			if string(val) != line {
				return fmt.Errorf("unexpected record: %q", val)
			}
			return nil
		})
		mp.ExpectInputAndSucceed()
	})

	assert.NoError(t, p.Pub("storm_trooper", []byte(line)))
	assert.NoError(t, p.Pub("storm_trooper", []byte("put a.count 1 1 ")))
	p.Stop()

	assert.Equal(t, int64(2), p.pubOk.Count())
	assert.Equal(t, int64(0), p.pubFailed.Count())
}

func TestAsyncPubEmptyTopic(t *testing.T) {
	p := newAsyncStore(t, testConfig(), func(*mocks.AsyncProducer) {})
	defer p.Stop()

	assert.Equal(t, store.ErrEmptyTopic, p.Pub("", []byte("x")))
}

func TestAsyncDeliveryFailuresOpenBreaker(t *testing.T) {
	cf := testConfig()
	cf.BreakerErrors = 2
	cf.BreakerTimeout = time.Minute

	p := newAsyncStore(t, cf, func(mp *mocks.AsyncProducer) {
		mp.ExpectInputAndFail(sarama.ErrNotLeaderForPartition)
		mp.ExpectInputAndFail(sarama.ErrNotLeaderForPartition)
	})
	defer p.Stop()

	// enqueue never waits for the ack
	assert.NoError(t, p.Pub("t", []byte("1")))
	assert.NoError(t, p.Pub("t", []byte("2")))

	assert.Eventually(t, func() bool {
		return p.pubFailed.Count() == 2
	}, time.Second*5, time.Millisecond*10)

	err := p.Pub("t", []byte("3"))
	assert.True(t, errors.Is(err, store.ErrBreakerOpen))
}

func TestPubAfterStop(t *testing.T) {
	p := newAsyncStore(t, testConfig(), func(*mocks.AsyncProducer) {})
	p.Stop()
	p.Stop() // idempotent

	assert.Equal(t, store.ErrShuttingDown, p.Pub("t", []byte("x")))
}

func TestStopBeforeStart(t *testing.T) {
	p := NewPubStore(testConfig())
	p.Stop()
	assert.Equal(t, store.ErrNotStarted, p.Pub("t", []byte("x")))
}

func TestSyncPub(t *testing.T) {
	cf := testConfig()
	cf.Sync = true

	var mp *mocks.SyncProducer
	p := NewPubStore(cf)
	p.newSync = func(brokers []string, scf *sarama.Config) (sarama.SyncProducer, error) {
		assert.True(t, scf.Producer.Return.Successes)
		mp = mocks.NewSyncProducer(t, scf)
		mp.ExpectSendMessageAndSucceed()
		mp.ExpectSendMessageAndFail(sarama.ErrMessageSizeTooLarge)
		return mp, nil
	}
	require.NoError(t, p.Start())

	assert.NoError(t, p.Pub("t", []byte("put a.count 1 1 ")))
	assert.Equal(t, sarama.ErrMessageSizeTooLarge, p.Pub("t", []byte("put a.count 1 2 ")))
	p.Stop()

	assert.Equal(t, int64(1), p.pubOk.Count())
	assert.Equal(t, int64(1), p.pubFailed.Count())
}

func TestSaramaConfig(t *testing.T) {
	cf := testConfig()
	cf.Compress = true
	p := NewPubStore(cf)

	scf := p.saramaConfig()
	assert.NoError(t, scf.Validate())
	assert.Equal(t, sarama.CompressionSnappy, scf.Producer.Compression)
	assert.False(t, scf.Producer.Return.Successes)
	assert.True(t, scf.Producer.Return.Errors)
	assert.Equal(t, "kafkatsdb", scf.ClientID)
}
