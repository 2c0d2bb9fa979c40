// Package metrics defines the scheduler's Prometheus counters. A CLI process
// has no scrape endpoint, so the registry is dumped to a node_exporter
// textfile on exit.
package metrics

import (
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/filex"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "scheduler"

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

type Metrics struct {
	reg *prometheus.Registry

	// CommandsTotal counts REPL commands.
	// Labels:
	//   - command: the command name, "unknown" for unrecognised input
	//   - outcome: OutcomeOK, OutcomeRejected (user or domain error) or OutcomeError (storage)
	CommandsTotal *prometheus.CounterVec

	// ReservationsTotal counts reservation attempts by outcome.
	// Label:
	//   - outcome: "booked", "no_stock", "no_caregiver", "unauthorized", "invalid" or "error"
	ReservationsTotal *prometheus.CounterVec

	// CommandDuration measures command latency, storage round trips included.
	CommandDuration *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		CommandsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_total",
				Help:      "Total number of REPL commands, by command and outcome.",
			},
			[]string{"command", "outcome"},
		),
		ReservationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservations_total",
				Help:      "Total number of reservation attempts, by outcome.",
			},
			[]string{"outcome"},
		),
		CommandDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "command_duration_seconds",
				Help:      "Duration of REPL commands.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"command"},
		),
	}
}

func (m *Metrics) ObserveCommand(command, outcome string, elapsed time.Duration) {
	m.CommandsTotal.WithLabelValues(command, outcome).Inc()
	m.CommandDuration.WithLabelValues(command).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveReservation(outcome string) {
	m.ReservationsTotal.WithLabelValues(outcome).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// WriteTextfile writes all metrics in the text exposition format to path,
// creating missing directories. The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if _, err := filex.EnsureParentDir(path); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, m.reg)
}
