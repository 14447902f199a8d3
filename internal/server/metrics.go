package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"kubeui/internal/kube"
)

var (
	upstreamRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kubeui",
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Total upstream snapshot fetches by resource kind and result.",
	}, []string{"kind", "result"})

	upstreamDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "kubeui",
		Subsystem: "upstream",
		Name:      "duration_seconds",
		Help:      "Upstream snapshot fetch duration in seconds.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(upstreamRequestsTotal, upstreamDuration)
}

func observeUpstream(kind kube.Kind, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	upstreamRequestsTotal.WithLabelValues(string(kind), result).Inc()
	upstreamDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
}
