package agent

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/funkygao/kafkatsdb"
	"github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes(t *testing.T) {
	r := metrics.NewRegistry()
	metrics.NewRegisteredCounter("_OpenTSDBKafkaReporter.ticks", r).Inc(3)
	metrics.NewRegisteredGauge("space", r).Update(5)

	ts := httptest.NewServer(router(r))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	var out map[string]map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	assert.Equal(t, float64(3), out["_OpenTSDBKafkaReporter.ticks"]["count"])
	assert.Equal(t, float64(5), out["space"]["value"])

	resp, err = http.Get(ts.URL + "/ver")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, kafkatsdb.Version+"-"+kafkatsdb.BuildId, string(body))

	resp, err = http.Get(ts.URL + "/debug/pprof/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/nonexistent")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStart(t *testing.T) {
	HttpAddr = "127.0.0.1:0"
	endpoint, err := Start(metrics.NewRegistry())
	require.NoError(t, err)

	resp, err := http.Get("http://" + endpoint + "/ver")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
