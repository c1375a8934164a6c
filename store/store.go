// Package store abstracts the message bus that put records are published to.
package store

// PubStore hands a single message to the underlying bus under a topic.
type PubStore interface {
	Start() error
	Stop()
	Name() string

	// Pub submits msg to topic. Depending on the implementation it may
	// return before the bus acknowledges the message.
	Pub(topic string, msg []byte) error
}

var DefaultPubStore PubStore
