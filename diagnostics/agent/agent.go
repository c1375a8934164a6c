// Package agent provides an HTTP endpoint for a program providing
// diagnostics and statistics for a given task.
package agent

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	_ "net/http/pprof"

	"github.com/funkygao/kafkatsdb"
	"github.com/julienschmidt/httprouter"
	"github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"
)

var (
	HttpAddr = "localhost:10120"

	// Errors is the channel to receive errors of pprof agent.
	Errors = make(chan error, 1)
)

// Start starts the diagnostics agent on a host process. Once agent started,
// user can retrieve pprof and the registry metrics via the returned endpoint.
func Start(r metrics.Registry) (endpoint string, err error) {
	ln, err := net.Listen("tcp", HttpAddr)
	if err != nil {
		return "", err
	}

	go func() {
		if err := http.Serve(ln, router(r)); err != nil {
			Errors <- fmt.Errorf("pprof agent: %v", err)
		}
	}()

	endpoint = ln.Addr().String()
	log.Infof("pprof ready on %s", endpoint)
	return
}

func router(r metrics.Registry) *httprouter.Router {
	router := httprouter.New()
	router.GET("/ver", versionHandler)
	router.GET("/metrics", metricsHandler(r))
	router.Handler("GET", "/debug/pprof/*name", http.DefaultServeMux)
	return router
}

// GET /ver
func versionHandler(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	w.Write([]byte(kafkatsdb.Version + "-" + kafkatsdb.BuildId))
}

// GET /metrics, including the private metrics
func metricsHandler(reg metrics.Registry) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		b, err := json.Marshal(reg)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(b)
	}
}
