package ctx

import (
	"os"
	"path/filepath"
	"strings"
)

const defaultConfig = `
name: OpenTSDBKafkaReporter
brokers:
  - localhost:9092
topic: storm_trooper
interval: 1m
rate_unit: 1s
duration_unit: 1ms
tags:
  cluster: cb1
  bucket: test
host_tag: false
legacy_names: false
timestamp_seconds: false
sync: false
loglevel: info
`

func LoadConfig(fn string) {
	data, err := os.ReadFile(fn)
	if err != nil {
		panic(err)
	}

	c, err := parse(data)
	if err != nil {
		panic(err)
	}

	c.hostname, _ = os.Hostname()
	conf = c
}

// LoadFromHome loads ~/.kafkatsdb.cf, creating it with defaults on the fly.
func LoadFromHome() {
	home, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	configFile := filepath.Join(home, ".kafkatsdb.cf")
	_, err = os.Stat(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			if e := os.WriteFile(configFile,
				[]byte(strings.TrimSpace(defaultConfig)+"\n"), 0644); e != nil {
				panic(e)
			}
		} else {
			panic(err)
		}
	}

	LoadConfig(configFile)
}
