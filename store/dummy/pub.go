// Package dummy provides an in-memory store.PubStore that keeps every
// published message, for dry runs and tests.
package dummy

import (
	"sync"

	"github.com/funkygao/kafkatsdb/store"
)

// Message is one published record as the dummy store saw it.
type Message struct {
	Topic string
	Body  string
}

type pubStore struct {
	mu      sync.Mutex
	msgs    []Message
	failAt  int // fail the Nth Pub (1 based), 0 never
	failErr error
	pubs    int
	stopped bool
}

func NewPubStore() *pubStore {
	return &pubStore{}
}

func (this *pubStore) Name() string {
	return "dummy"
}

func (this *pubStore) Start() error {
	this.mu.Lock()
	this.stopped = false
	this.mu.Unlock()
	return nil
}

func (this *pubStore) Stop() {
	this.mu.Lock()
	this.stopped = true
	this.mu.Unlock()
}

// FailAt makes the nth Pub call from now on return err instead of
// accepting the message.
func (this *pubStore) FailAt(n int, err error) {
	this.mu.Lock()
	this.failAt = this.pubs + n
	this.failErr = err
	this.mu.Unlock()
}

func (this *pubStore) Pub(topic string, msg []byte) error {
	this.mu.Lock()
	defer this.mu.Unlock()

	if this.stopped {
		return store.ErrShuttingDown
	}

	this.pubs++
	if this.failAt > 0 && this.pubs == this.failAt {
		return this.failErr
	}

	this.msgs = append(this.msgs, Message{Topic: topic, Body: string(msg)})
	return nil
}

// Messages returns a copy of everything published so far.
func (this *pubStore) Messages() []Message {
	this.mu.Lock()
	defer this.mu.Unlock()

	r := make([]Message, len(this.msgs))
	copy(r, this.msgs)
	return r
}

// Reset drops all recorded messages.
func (this *pubStore) Reset() {
	this.mu.Lock()
	this.msgs = nil
	this.mu.Unlock()
}
