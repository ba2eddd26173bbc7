package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	LabelCommand = "command"
	LabelOutcome = "outcome"
	LabelResult  = "result"
	LabelDepth   = "depth"
)

// Interpreter metrics
var (
	TurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zarya_turns_total",
			Help: "Player input lines processed, by matched command",
		},
		[]string{LabelCommand},
	)

	SessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zarya_sessions_total",
			Help: "Finished game sessions, by outcome",
		},
		[]string{LabelOutcome},
	)

	SessionsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "zarya_sessions_active",
			Help: "Game sessions currently running, by nesting depth",
		},
		[]string{LabelDepth},
	)

	PictureLikes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "zarya_picture_likes",
			Help:    "Likes received by pictures sent through the messenger",
			Buckets: []float64{50, 100, 500, 1000, 2500, 5000, 10000},
		},
	)
)

// Collaborator metrics
var (
	FetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zarya_browser_fetches_total",
			Help: "Laptop browser fetches, by result",
		},
		[]string{LabelResult},
	)

	JournalErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "zarya_journal_errors_total",
			Help: "Input lines that could not be written to the journal",
		},
	)
)
