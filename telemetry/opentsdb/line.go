package opentsdb

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const (
	putCmd = "put"
	sep    = ' '
)

// encode renders one put record, "put <metric> <ts> <value> k1=v1 k2=v2".
// Every field, the last tag included, is followed by a single space.
func encode(metric string, ts int64, value string, tags Tags) string {
	var b strings.Builder
	n := len(putCmd) + len(metric) + len(value) + 24
	for _, t := range tags {
		n += len(t.Key) + len(t.Value) + 2
	}
	b.Grow(n)

	b.WriteString(putCmd)
	b.WriteByte(sep)
	b.WriteString(metric)
	b.WriteByte(sep)
	b.WriteString(strconv.FormatInt(ts, 10))
	b.WriteByte(sep)
	b.WriteString(value)
	b.WriteByte(sep)
	for _, t := range tags {
		b.WriteString(t.Key)
		b.WriteString(tagKVSep)
		b.WriteString(t.Value)
		b.WriteByte(sep)
	}

	return b.String()
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatFloat(v float64) (string, error) {
	return formatFloatBits(v, 64)
}

// formatFloatBits renders the shortest decimal that round trips at the
// given precision, so float32 readings keep their own digits.
func formatFloatBits(v float64, bitSize int) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("%w: %v", ErrInvalidValue, v)
	}
	return strconv.FormatFloat(v, 'f', -1, bitSize), nil
}

// formatValue renders a gauge reading. Numbers are rendered exactly, any
// other value is string converted and must be a single non-empty token.
func formatValue(v interface{}) (string, error) {
	switch n := v.(type) {
	case nil:
		return "", fmt.Errorf("%w: nil", ErrInvalidValue)
	case int:
		return formatInt(int64(n)), nil
	case int8:
		return formatInt(int64(n)), nil
	case int16:
		return formatInt(int64(n)), nil
	case int32:
		return formatInt(int64(n)), nil
	case int64:
		return formatInt(n), nil
	case uint:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint64:
		return strconv.FormatUint(n, 10), nil
	case float32:
		return formatFloatBits(float64(n), 32)
	case float64:
		return formatFloat(n)
	}

	s := fmt.Sprint(v)
	if s == "" || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	return s, nil
}
