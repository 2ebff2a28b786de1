package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var evaluations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "passrank_evaluations_total",
	Help: "Password evaluations by resulting category.",
}, []string{"category"})

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "passrank_request_duration_seconds",
	Help:    "HTTP request duration by path.",
	Buckets: prometheus.DefBuckets,
}, []string{"path"})

func Measure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		requestDuration.WithLabelValues(r.URL.Path).Observe(time.Since(start).Seconds())
	})
}
