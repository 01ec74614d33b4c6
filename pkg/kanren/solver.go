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
package kanren

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/consensys/go-relexpr/pkg/util/collection/iter"
)

// ErrStepLimit is reported when a query exceeds the maximum number of search
// steps permitted by its configuration.
var ErrStepLimit = errors.New("search step limit exceeded")

// DefaultPollInterval determines how often (in steps) the context of a query is
// checked for cancellation, unless otherwise configured.
const DefaultPollInterval = 1024

// Config determines the resources available to a query.
type Config struct {
	// Maximum number of suspensions which can be forced before the query is
	// abandoned.  Zero indicates no limit.
	MaxSteps uint
	// Number of steps between successive checks of the query's context.  Zero
	// indicates the default.
	PollInterval uint
}

// Solver drives the search for solutions of goals.
type Solver struct {
	config Config
}

// NewSolver constructs a solver with a given configuration.
func NewSolver(config Config) *Solver {
	if config.PollInterval == 0 {
		config.PollInterval = DefaultPollInterval
	}
	//
	return &Solver{config}
}

// Solve starts a search for the solutions of a given goal, where each solution
// records the values of the given variables.  The search is lazy: nothing is
// explored until the first solution is requested.
func (p *Solver) Solve(ctx context.Context, goal Goal, vars ...Var) *Solutions {
	var stream = Suspension(func() Stream {
		return goal(EmptySubstitution())
	})
	//
	return &Solutions{ctx: ctx, config: p.config, vars: vars, stream: stream}
}

// Run collects at most n solutions of a given goal (or all solutions when n is
// zero).  Any solutions found before an error arises are returned alongside
// it.
func (p *Solver) Run(ctx context.Context, n uint, goal Goal, vars ...Var) ([]Solution, error) {
	var (
		solutions = p.Solve(ctx, goal, vars...)
		results   []Solution
	)
	//
	for (n == 0 || uint(len(results)) < n) && solutions.HasNext() {
		results = append(results, solutions.Next())
	}
	//
	return results, solutions.Err()
}

// ===================================================================
// Solutions
// ===================================================================

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ iter.Enumerator[Solution] = (*Solutions)(nil)

// Solutions enumerates the solutions of a query in the order they are found.
// Enumeration stops early if the step limit is exceeded or the query's
// context is cancelled, in which case Err reports why.
type Solutions struct {
	ctx    context.Context
	config Config
	vars   []Var
	// Remainder of the search
	stream Stream
	// Next substitution (if already found)
	next *Substitution
	// Number of suspensions forced so far
	steps uint
	err   error
}

// HasNext checks whether there is another solution.  This drives the search
// forward until either a solution is found or the search is over.
func (p *Solutions) HasNext() bool {
	for p.next == nil && p.err == nil {
		switch s := p.stream.(type) {
		case emptyStream:
			return false
		case *matureStream:
			p.next, p.stream = &s.head, s.tail
		case Suspension:
			if err := p.step(); err != nil {
				p.err, p.stream = err, Empty
				return false
			}
			//
			p.stream = s()
		}
	}
	//
	return p.next != nil
}

// Next returns the next solution.  This should only be called after HasNext
// has indicated a solution is available.
func (p *Solutions) Next() Solution {
	if !p.HasNext() {
		panic("no more solutions")
	}
	//
	subst := *p.next
	p.next = nil
	//
	return newSolution(subst, p.vars)
}

// Err returns the reason why the search was abandoned (if it was).
func (p *Solutions) Err() error {
	return p.err
}

// Steps returns the number of suspensions forced so far.
func (p *Solutions) Steps() uint {
	return p.steps
}

func (p *Solutions) step() error {
	p.steps++
	//
	if p.config.MaxSteps != 0 && p.steps > p.config.MaxSteps {
		return fmt.Errorf("%w (%d steps)", ErrStepLimit, p.config.MaxSteps)
	} else if p.steps%p.config.PollInterval == 0 {
		return p.ctx.Err()
	}
	//
	return nil
}

// ===================================================================
// Solution
// ===================================================================

// Solution records the values of the query variables in one successful
// derivation.  Values are fully resolved, hence the only variables they can
// contain are those left unconstrained by the derivation.
type Solution struct {
	vars   []Var
	values []Term
}

func newSolution(s Substitution, vars []Var) Solution {
	values := make([]Term, len(vars))
	//
	for i, v := range vars {
		values[i] = s.WalkDeep(v)
	}
	//
	return Solution{vars, values}
}

// Get returns the value of a given query variable in this solution.
func (p Solution) Get(v Var) (Term, bool) {
	for i, w := range p.vars {
		if w.id == v.id {
			return p.values[i], true
		}
	}
	//
	return nil, false
}

// Values returns the values of the query variables, in the order they were
// given to the query.
func (p Solution) Values() []Term {
	return p.values
}

func (p Solution) String() string {
	var builder strings.Builder
	//
	for i, v := range p.vars {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(fmt.Sprintf("%s = %s", v, p.values[i]))
	}
	//
	return builder.String()
}
