package ctx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/funkygao/kafkatsdb/telemetry/opentsdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	c, err := parse([]byte("topic: t1\n"))
	require.NoError(t, err)
	assert.Equal(t, "t1", c.Topic)
	assert.Equal(t, time.Minute, c.Interval)
	assert.Equal(t, time.Second, c.RateUnit)
	assert.Equal(t, time.Second, c.DurationUnit)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, opentsdb.DefaultName, c.Name)
	assert.Empty(t, c.tags)
}

func TestParseTagsKeepFileOrder(t *testing.T) {
	c, err := parse([]byte(`
topic: storm_trooper
interval: 10s
duration_unit: 1ms
tags:
  zone: z1
  cluster: cb1
  bucket: test
`))
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, c.Interval)
	assert.Equal(t, time.Millisecond, c.DurationUnit)
	assert.Equal(t, "zone=z1,cluster=cb1,bucket=test", c.tags.String())
}

func TestParseInvalidTags(t *testing.T) {
	_, err := parse([]byte("tags: [a, b]\n"))
	assert.True(t, errors.Is(err, ErrInvalidTags))

	_, err = parse([]byte("tags:\n  a: [1]\n"))
	assert.True(t, errors.Is(err, ErrInvalidTags))

	_, err = parse([]byte("tags:\n  a: \"x y\"\n"))
	assert.True(t, errors.Is(err, opentsdb.ErrInvalidTag))
}

func TestReporterConfig(t *testing.T) {
	c, err := parse([]byte(`
name: demo
topic: storm_trooper
prefix: app
legacy_names: true
timestamp_seconds: true
host_tag: true
tags:
  cluster: cb1
`))
	require.NoError(t, err)
	c.hostname = "h1"

	cf := c.reporterConfig()
	assert.Equal(t, "demo", cf.Name)
	assert.Equal(t, "storm_trooper", cf.Topic)
	assert.Equal(t, "app", cf.Prefix)
	assert.True(t, cf.LegacyNames)
	assert.True(t, cf.TimestampSeconds)
	assert.Equal(t, "cluster=cb1,host=h1", cf.Tags.String())
	assert.NoError(t, cf.Validate())

	// the loaded tags are not shared with the returned config
	cf.Tags[0].Value = "changed"
	assert.Equal(t, "cluster=cb1", c.tags.String())
}

func TestLoadFromHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	LoadFromHome()
	_, err := os.Stat(filepath.Join(home, ".kafkatsdb.cf"))
	require.NoError(t, err)

	assert.Equal(t, []string{"localhost:9092"}, Brokers())
	assert.Equal(t, "storm_trooper", Topic())
	assert.Equal(t, "info", LogLevel())
	assert.Equal(t, "cluster=cb1,bucket=test", Tags().String())
	assert.Equal(t, time.Millisecond, ReporterConfig().DurationUnit)
	assert.False(t, Sync())
}

func TestLoadConfigMissingFile(t *testing.T) {
	assert.Panics(t, func() {
		LoadConfig(filepath.Join(t.TempDir(), "absent.cf"))
	})
}
