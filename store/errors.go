package store

import (
	"errors"
)

var (
	ErrShuttingDown = errors.New("pub store shutting down")
	ErrNotStarted   = errors.New("pub store not started")
	ErrBusy         = errors.New("underlying store too busy")
	ErrBreakerOpen  = errors.New("too many publish failures, circuit open")
	ErrEmptyBrokers = errors.New("empty broker list")
	ErrEmptyTopic   = errors.New("empty topic")
)
