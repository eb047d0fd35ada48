// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics collects Prometheus counters for bot commands and exposes
// them on the liveness server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for [Recorder.RecordCommand].
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Recorder is the metrics contract used by the bot layer.
type Recorder interface {
	RecordCommand(name, outcome string, duration time.Duration)
	RecordEntriesAdded(count int)
	RecordEntriesDeleted(count int)
	RecordRateLimited()
}

// Collector records metrics into a Prometheus registry.
type Collector struct {
	commands       *prometheus.CounterVec
	commandLatency *prometheus.HistogramVec
	entriesAdded   prometheus.Counter
	entriesDeleted prometheus.Counter
	rateLimited    prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "redherring_commands_total",
			Help: "Slash commands and component interactions handled, by name and outcome.",
		}, []string{"command", "outcome"}),
		commandLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "redherring_command_duration_seconds",
			Help:    "Time spent handling an interaction.",
			Buckets: prometheus.DefBuckets,
		}, []string{"command"}),
		entriesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "redherring_entries_added_total",
			Help: "Content entries inserted.",
		}),
		entriesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "redherring_entries_deleted_total",
			Help: "Content entries removed.",
		}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "redherring_rate_limited_total",
			Help: "Interactions refused by the per-member rate limiter.",
		}),
	}

	reg.MustRegister(
		c.commands,
		c.commandLatency,
		c.entriesAdded,
		c.entriesDeleted,
		c.rateLimited,
	)

	return c
}

// RecordCommand counts one handled interaction and observes its latency.
func (c *Collector) RecordCommand(name, outcome string, duration time.Duration) {
	c.commands.WithLabelValues(name, outcome).Inc()
	c.commandLatency.WithLabelValues(name).Observe(duration.Seconds())
}

// RecordEntriesAdded adds count to the inserted entries counter.
func (c *Collector) RecordEntriesAdded(count int) {
	c.entriesAdded.Add(float64(count))
}

// RecordEntriesDeleted adds count to the deleted entries counter.
func (c *Collector) RecordEntriesDeleted(count int) {
	c.entriesDeleted.Add(float64(count))
}

// RecordRateLimited counts a refused interaction.
func (c *Collector) RecordRateLimited() {
	c.rateLimited.Inc()
}

// Handler returns the Prometheus scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards every measurement.
type Nop struct{}

func (Nop) RecordCommand(string, string, time.Duration) {}
func (Nop) RecordEntriesAdded(int)                      {}
func (Nop) RecordEntriesDeleted(int)                    {}
func (Nop) RecordRateLimited()                          {}
