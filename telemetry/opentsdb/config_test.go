package opentsdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigTimestamp(t *testing.T) {
	cf := testConfig()
	assert.Equal(t, testTs, cf.Timestamp())

	cf.TimestampSeconds = true
	assert.Equal(t, testTs/1000, cf.Timestamp())

	cf = &Config{}
	before := time.Now().UnixMilli()
	ts := cf.Timestamp()
	assert.True(t, ts >= before && ts <= time.Now().UnixMilli())
}
