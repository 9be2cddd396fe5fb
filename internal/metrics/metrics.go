// internal/metrics/metrics.go
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its own registry so several routers can coexist in one process.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	RequestDurationHistogram *prometheus.HistogramVec
	APIRequestCounter        *prometheus.CounterVec
	APIErrorCounter          *prometheus.CounterVec

	NearbySearchCounter    prometheus.Counter
	NearbyResultsHistogram prometheus.Histogram
	OffersPricedCounter    *prometheus.CounterVec
	ImageUploadCounter     *prometheus.CounterVec
	SeedRunCounter         *prometheus.CounterVec
}

func New(namespace string) *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	m.APIRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "path"},
	)

	m.APIErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_errors_total",
			Help:      "Total number of API errors",
		},
		[]string{"method", "path", "status"},
	)

	m.NearbySearchCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "nearby_searches_total",
		Help:      "Total number of nearby store searches",
	})

	m.NearbyResultsHistogram = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "nearby_search_results",
		Help:      "Number of stores returned by a nearby search",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})

	m.OffersPricedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offers_priced_total",
			Help:      "Total number of inventory offers run through the pricing engine",
		},
		[]string{"discounted"},
	)

	m.ImageUploadCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "image_uploads_total",
			Help:      "Total number of image uploads",
		},
		[]string{"folder", "result"},
	)

	m.SeedRunCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seed_runs_total",
			Help:      "Total number of catalog seed runs",
		},
		[]string{"kind", "result"},
	)

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDurationHistogram,
		m.APIRequestCounter,
		m.APIErrorCounter,
		m.NearbySearchCounter,
		m.NearbyResultsHistogram,
		m.OffersPricedCounter,
		m.ImageUploadCounter,
		m.SeedRunCounter,
	)

	return m
}

// Middleware tracks request count, duration and errors per route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		m.APIRequestCounter.With(prometheus.Labels{
			"method": method,
			"path":   path,
		}).Inc()

		m.RequestDurationHistogram.With(prometheus.Labels{
			"method": method,
			"path":   path,
			"status": status,
		}).Observe(time.Since(start).Seconds())

		if c.Writer.Status() >= http.StatusBadRequest {
			m.APIErrorCounter.With(prometheus.Labels{
				"method": method,
				"path":   path,
				"status": status,
			}).Inc()
		}
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func (m *Metrics) RecordNearbySearch(results int) {
	if m == nil {
		return
	}
	m.NearbySearchCounter.Inc()
	m.NearbyResultsHistogram.Observe(float64(results))
}

func (m *Metrics) RecordOfferPriced(discounted bool) {
	if m == nil {
		return
	}
	m.OffersPricedCounter.With(prometheus.Labels{
		"discounted": strconv.FormatBool(discounted),
	}).Inc()
}

func (m *Metrics) RecordImageUpload(folder string, err error) {
	if m == nil {
		return
	}
	m.ImageUploadCounter.With(prometheus.Labels{
		"folder": folder,
		"result": result(err),
	}).Inc()
}

func (m *Metrics) RecordSeedRun(kind string, err error) {
	if m == nil {
		return
	}
	m.SeedRunCounter.With(prometheus.Labels{
		"kind":   kind,
		"result": result(err),
	}).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
