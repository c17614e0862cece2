package metrics

import (
	"strconv"
	"time"

	"educare/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "educare"

// Metrics holds the Prometheus collectors for the API.
type Metrics struct {
	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	QuizSubmissions *prometheus.CounterVec
	ActivityScores  *prometheus.CounterVec
	PointsAwarded   prometheus.Counter
	QuestionsSeeded prometheus.Counter
	AccountsCreated prometheus.Counter
	AccountsDeleted prometheus.Counter

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in tests
// so repeated construction does not collide.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestCounter: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		QuizSubmissions: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quiz_submissions_total",
				Help:      "Quiz results recorded, by category",
			},
			[]string{"category"},
		),
		ActivityScores: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "activity_scores_total",
				Help:      "Activity scores recorded, by activity type",
			},
			[]string{"type"},
		),
		PointsAwarded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_awarded_total",
			Help:      "Sum of all quiz and activity points recorded",
		}),
		QuestionsSeeded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_questions_seeded_total",
			Help:      "Quiz questions written by seeding runs",
		}),
		AccountsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accounts_created_total",
			Help:      "Accounts created through signup",
		}),
		AccountsDeleted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accounts_deleted_total",
			Help:      "Accounts deleted",
		}),
		gatherer: reg,
	}
}

// NewNop returns metrics backed by a private registry.
func NewNop() *Metrics { return New(prometheus.NewRegistry()) }

// OtherCategory labels quiz submissions whose category is not a known one.
const OtherCategory = "other"

// ObserveQuiz counts a quiz submission. Unknown categories share one series.
func (m *Metrics) ObserveQuiz(category string, score int) {
	if !models.IsCategory(category) {
		category = OtherCategory
	}
	m.QuizSubmissions.WithLabelValues(category).Inc()
	m.PointsAwarded.Add(float64(score))
}

func (m *Metrics) ObserveActivity(activityType string, score int) {
	m.ActivityScores.WithLabelValues(activityType).Inc()
	m.PointsAwarded.Add(float64(score))
}

// Middleware counts requests and records their latency by route pattern.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		m.RequestCounter.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler serves the Prometheus exposition format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
}
