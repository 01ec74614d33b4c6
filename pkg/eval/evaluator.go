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
package eval

import (
	"context"
	"errors"
	"fmt"

	"github.com/consensys/go-relexpr/pkg/expr"
	"github.com/consensys/go-relexpr/pkg/kanren"
	"github.com/consensys/go-relexpr/pkg/metrics"
	"github.com/consensys/go-relexpr/pkg/util"
	log "github.com/sirupsen/logrus"
)

// ErrNoSolution is reported when an expression has no value, such as when a
// larger numeral is subtracted from a smaller one.
var ErrNoSolution = errors.New("no solution")

// ErrAmbiguous is reported when an expression has more than one distinct value.
var ErrAmbiguous = errors.New("ambiguous solution")

// Config determines how expressions are evaluated.
type Config struct {
	// Limits for the underlying search
	Search kanren.Config
	// Maximum number of distinct values to collect, where zero indicates no
	// limit.
	MaxResults uint
}

// Evaluator is the front door for evaluating expressions.  It drives the search
// for values, removes duplicate values (since distinct derivations can arrive
// at the same value) and reports what happened.
type Evaluator struct {
	config  Config
	solver  *kanren.Solver
	metrics *metrics.Metrics
}

// Option configures an evaluator.
type Option func(*Evaluator)

// WithMetrics records every evaluation in a given set of metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Evaluator) {
		p.metrics = m
	}
}

// New constructs an evaluator with a given configuration.
func New(config Config, opts ...Option) *Evaluator {
	p := &Evaluator{config: config, solver: kanren.NewSolver(config.Search)}
	//
	for _, opt := range opts {
		opt(p)
	}
	//
	return p
}

// Evaluate returns the value of an expression.  An expression without a value
// gives ErrNoSolution, whilst one with several distinct values gives
// ErrAmbiguous.
func (p *Evaluator) Evaluate(ctx context.Context, input kanren.Term) (kanren.Term, error) {
	values, err := p.EvaluateAll(ctx, input)
	//
	switch {
	case err != nil:
		return nil, err
	case len(values) == 0:
		return nil, fmt.Errorf("evaluating %s: %w", expr.Format(input), ErrNoSolution)
	case len(values) > 1:
		return nil, fmt.Errorf("evaluating %s: %w (%s and %s)", expr.Format(input), ErrAmbiguous,
			expr.Format(values[0]), expr.Format(values[1]))
	}
	//
	return values[0], nil
}

// EvaluateAll returns the distinct values of an expression, in the order the
// search finds them.  Any values found before the search is abandoned (e.g.
// because the step limit is exceeded) are returned alongside the error.
func (p *Evaluator) EvaluateAll(ctx context.Context, input kanren.Term) ([]kanren.Term, error) {
	var (
		stats     = util.NewPerfStats()
		output    = kanren.NewVar("output")
		solutions = p.solver.Solve(ctx, Eval(input, output), output)
		values    []kanren.Term
		seen      = make(map[string]bool)
	)
	//
	log.Debugf("evaluating %s", expr.Format(input))
	//
	for (p.config.MaxResults == 0 || uint(len(values)) < p.config.MaxResults) && solutions.HasNext() {
		value := solutions.Next().Values()[0]
		// Reified terms with the same rendering are the same term
		if key := value.String(); !seen[key] {
			seen[key] = true
			values = append(values, value)
		}
	}
	//
	err := solutions.Err()
	stats.Log(fmt.Sprintf("Evaluating %s", expr.Format(input)), solutions.Steps())
	p.observe(input, values, err, solutions.Steps(), stats)
	//
	if err != nil {
		return values, fmt.Errorf("evaluating %s: %w", expr.Format(input), err)
	}
	//
	return values, nil
}

func (p *Evaluator) observe(input kanren.Term, values []kanren.Term, err error, steps uint, stats *util.PerfStats) {
	var (
		class   = classOf(input)
		outcome = metrics.OUTCOME_VALUE
	)
	//
	switch {
	case err != nil:
		outcome = metrics.OUTCOME_ERROR
		log.Debugf("evaluation abandoned after %d steps: %v", steps, err)
	case len(values) == 0:
		outcome = metrics.OUTCOME_NONE
		log.Debugf("no value after %d steps", steps)
	default:
		log.Debugf("%d distinct value(s) after %d steps", len(values), steps)
	}
	//
	p.metrics.ObserveEvaluation(class, outcome, steps, len(values), stats.Elapsed())
}

// Determine the class of the outermost operation of an expression, or its kind
// when it is a constant.
func classOf(input kanren.Term) string {
	if op, ok := expr.OperatorOf(input); ok {
		return op.Class().String()
	} else if _, ok := expr.ToNumeral(input); ok {
		return "numeral"
	} else if _, ok := expr.ToBool(input); ok {
		return "boolean"
	}
	//
	return expr.UNKNOWN.String()
}

// Result is a single value (or error) produced by Stream.
type Result struct {
	Value kanren.Term
	Err   error
}

// Stream evaluates an expression in the background, sending each distinct value
// on the returned channel as soon as it is found.  An error ends the stream
// early, and is sent as the final result.  The channel is closed once the
// search is over or the context is cancelled, at which point the background
// search has stopped.
func (p *Evaluator) Stream(ctx context.Context, input kanren.Term) <-chan Result {
	var (
		results = make(chan Result)
		output  = kanren.NewVar("output")
	)
	//
	go func() {
		defer close(results)
		//
		var (
			solutions = p.solver.Solve(ctx, Eval(input, output), output)
			seen      = make(map[string]bool)
		)
		//
		for solutions.HasNext() {
			var (
				value = solutions.Next().Values()[0]
				key   = value.String()
			)
			//
			if seen[key] {
				continue
			}
			//
			seen[key] = true
			//
			select {
			case results <- Result{Value: value}:
			case <-ctx.Done():
				return
			}
		}
		//
		if err := solutions.Err(); err != nil {
			select {
			case results <- Result{Err: fmt.Errorf("evaluating %s: %w", expr.Format(input), err)}:
			case <-ctx.Done():
			}
		}
	}()
	//
	return results
}
