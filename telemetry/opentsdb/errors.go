package opentsdb

import (
	"errors"
)

var (
	ErrEmptyTopic      = errors.New("empty topic")
	ErrNilPublisher    = errors.New("nil publisher")
	ErrNilRegistry     = errors.New("nil metrics registry")
	ErrInvalidInterval = errors.New("report interval must be positive")
	ErrInvalidUnit     = errors.New("rate and duration units must be positive")
	ErrInvalidTag      = errors.New("invalid tag")
	ErrInvalidName     = errors.New("metric name not representable in a put record")
	ErrInvalidValue    = errors.New("value not representable in a put record")
)
