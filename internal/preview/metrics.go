package preview

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics tracks what the preview server hands out. Registered on a private
// registry so embedding applications keep control of the default one.
type metrics struct {
	registry *prometheus.Registry

	framesServed *prometheus.CounterVec
	bytesSent    prometheus.Counter
	streamers    prometheus.Gauge
	encodeTime   prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		framesServed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "preview_frames_served_total",
				Help: "JPEG frames served, by endpoint",
			},
			[]string{"endpoint"},
		),
		bytesSent: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "preview_bytes_sent_total",
				Help: "Encoded JPEG bytes sent to clients",
			},
		),
		streamers: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "preview_active_streams",
				Help: "Currently open MJPEG streams",
			},
		),
		encodeTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "preview_encode_duration_seconds",
				Help:    "Time spent encoding one frame to JPEG",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
			},
		),
	}

	m.registry.MustRegister(m.framesServed, m.bytesSent, m.streamers, m.encodeTime)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
