package dummy

import (
	"errors"
	"testing"

	"github.com/funkygao/kafkatsdb/store"
	"github.com/stretchr/testify/assert"
)

func TestPubName(t *testing.T) {
	p := NewPubStore()
	assert.Equal(t, "dummy", p.Name())
}

func TestPubRecordsMessages(t *testing.T) {
	p := NewPubStore()
	assert.NoError(t, p.Pub("t1", []byte("a")))
	assert.NoError(t, p.Pub("t2", []byte("b")))

	msgs := p.Messages()
	assert.Equal(t, []Message{{Topic: "t1", Body: "a"}, {Topic: "t2", Body: "b"}}, msgs)

	p.Reset()
	assert.Empty(t, p.Messages())
}

func TestPubFailAt(t *testing.T) {
	p := NewPubStore()
	boom := errors.New("boom")
	p.FailAt(2, boom)

	assert.NoError(t, p.Pub("t", []byte("1")))
	assert.Equal(t, boom, p.Pub("t", []byte("2")))
	assert.NoError(t, p.Pub("t", []byte("3")))
	assert.Len(t, p.Messages(), 2)
}

func TestPubAfterStop(t *testing.T) {
	p := NewPubStore()
	p.Stop()
	assert.True(t, errors.Is(p.Pub("t", []byte("x")), store.ErrShuttingDown))
}
