package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "idleheroes_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "idleheroes_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Engine Metrics
var (
	TurnsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "idleheroes_turns_processed_total",
			Help: "Hero turns processed, labelled by the branch taken",
		},
		[]string{"branch"},
	)

	TurnFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "idleheroes_turn_failures_total",
			Help: "Hero turns that hit an internal failure",
		},
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "idleheroes_tick_duration_seconds",
			Help:    "Wall time of one full batch tick over all heroes",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	GlobalEvents = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "idleheroes_global_events_total",
			Help: "Global world events fired",
		},
	)
)

// Game Metrics
var (
	HeroDeaths = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "idleheroes_hero_deaths_total",
			Help: "Heroes killed in combat",
		},
	)

	MonstersKilled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "idleheroes_monsters_killed_total",
			Help: "Combat rounds won by heroes",
		},
	)

	QuestsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "idleheroes_quests_completed_total",
			Help: "Quests completed by heroes",
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "idleheroes_level_ups_total",
			Help: "Hero level-ups",
		},
	)
)

// Notification Metrics
var (
	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "idleheroes_notifications_sent_total",
			Help: "Notifications stored for delivery, labelled by severity",
		},
		[]string{"severity"},
	)

	NotificationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "idleheroes_notification_failures_total",
			Help: "Notifications dropped because the sink rejected them",
		},
	)
)
