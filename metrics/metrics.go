// Package metrics exposes the prometheus registry and the app's HTTP
// counters on the debug mux.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "edumanage", Name: "requests_total", Help: "Processed HTTP requests",
	}, []string{"method", "path", "status"})

	HandlerErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "edumanage", Name: "handler_errors_total", Help: "Handler errors",
	})
)

func init() {
	prometheus.MustRegister(Requests, HandlerErrors)
}

func Handler() http.Handler { return promhttp.Handler() }
