package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"resort-admin/models"
)

// Metrics owns a private registry so several instances (tests) can coexist.
type Metrics struct {
	ServiceName string
	Registry    *prometheus.Registry

	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	photoUploads *prometheus.CounterVec
}

func NewMetrics(serviceName string) *Metrics {
	m := &Metrics{
		ServiceName: serviceName,
		Registry:    prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path", "status"},
		),
		photoUploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "photo_uploads_total",
				Help: "Photo uploads by owner kind and outcome",
			},
			[]string{"owner", "result"},
		),
	}
	m.Registry.MustRegister(
		m.requests,
		m.duration,
		m.photoUploads,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.requests.WithLabelValues(m.ServiceName, c.Request.Method, path, status).Inc()
		m.duration.WithLabelValues(m.ServiceName, c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

// RecordPhotoUpload matches services.UploadObserver.
func (m *Metrics) RecordPhotoUpload(owner models.OwnerKind, result string) {
	m.photoUploads.WithLabelValues(string(owner), result).Inc()
}

func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}
