// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels
const (
	// OUTCOME_VALUE indicates an evaluation produced a value.
	OUTCOME_VALUE = "value"
	// OUTCOME_NONE indicates an evaluation had no solution.
	OUTCOME_NONE = "none"
	// OUTCOME_ERROR indicates an evaluation was abandoned.
	OUTCOME_ERROR = "error"
)

// Metrics records what the evaluator is doing.  Each instance has its own
// registry, which is written out (e.g. to a textfile) once the run is over.  A
// nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Evaluations by operator class and outcome
	Evaluations *prometheus.CounterVec

	// Search steps taken per evaluation
	Steps prometheus.Histogram

	// Distinct values found per evaluation
	Solutions prometheus.Histogram

	// Overall evaluation latency
	EvaluateLatency prometheus.Histogram
}

// New creates a new Metrics instance with all evaluator metrics registered
// against a fresh registry.
func New() *Metrics {
	var (
		registry = prometheus.NewRegistry()
		factory  = promauto.With(registry)
	)
	//
	return &Metrics{
		registry: registry,
		Evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "relexpr_evaluations_total",
			Help: "Total evaluations by operator class and outcome",
		}, []string{"class", "outcome"}),

		Steps: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "relexpr_search_steps",
			Help:    "Number of suspended goals forced per evaluation",
			Buckets: prometheus.ExponentialBuckets(10, 10, 8),
		}),

		Solutions: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "relexpr_solutions",
			Help:    "Number of distinct values per evaluation",
			Buckets: []float64{0, 1, 2, 5},
		}),

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "relexpr_evaluate_duration_seconds",
			Help:    "Duration of a complete evaluation",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 100},
		}),
	}
}

// Registry returns the registry holding these metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	//
	return m.registry
}

// ObserveEvaluation records one completed evaluation.
func (m *Metrics) ObserveEvaluation(class string, outcome string, steps uint, solutions int, d time.Duration) {
	if m != nil {
		m.Evaluations.WithLabelValues(class, outcome).Inc()
		m.Steps.Observe(float64(steps))
		m.Solutions.Observe(float64(solutions))
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

// WriteTextfile writes the current value of every metric to a file, in the
// text exposition format.
func (m *Metrics) WriteTextfile(filename string) error {
	if m == nil {
		return nil
	}
	//
	return prometheus.WriteToTextfile(filename, m.registry)
}
