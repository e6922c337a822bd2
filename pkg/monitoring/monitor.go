package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	AttemptsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quiz_attempts_started_total",
			Help: "Quiz attempts started",
		},
	)

	AttemptsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quiz_attempts_completed_total",
			Help: "Quiz attempt completions, including re-completions",
		},
	)

	AnswersRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_answers_recorded_total",
			Help: "User answers recorded, by correctness",
		},
		[]string{"correct"},
	)

	AttemptTimeSpent = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quiz_attempt_time_spent_seconds",
			Help:    "Elapsed time of completed attempts",
			Buckets: prometheus.ExponentialBuckets(30, 2, 10),
		},
	)
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(AttemptsStarted)
		prometheus.MustRegister(AttemptsCompleted)
		prometheus.MustRegister(AnswersRecorded)
		prometheus.MustRegister(AttemptTimeSpent)
	})
}

// endpoint 使用路由模板，未匹配的路径统一归为 unmatched
func endpoint(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return "unmatched"
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := endpoint(c)
		RequestCounter.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func PrometheusHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
