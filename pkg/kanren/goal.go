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

// Goal is a predicate over terms which, given a substitution, produces a stream
// of zero or more substitutions under which it holds.
type Goal func(Substitution) Stream

// Succeed is the goal which always holds (exactly once).
func Succeed(s Substitution) Stream {
	return Unit(s)
}

// Fail is the goal which never holds.
func Fail(_ Substitution) Stream {
	return Empty
}

// Eq constructs a goal which holds when two terms unify.
func Eq(lhs Term, rhs Term) Goal {
	return func(s Substitution) Stream {
		if s, ok := Unify(lhs, rhs, s); ok {
			return Unit(s)
		}
		//
		return Empty
	}
}

// Conj constructs the conjunction of zero or more goals.  The goals are
// applied in order, such that a later goal sees the bindings of earlier ones.
// The empty conjunction always holds.
func Conj(goals ...Goal) Goal {
	switch len(goals) {
	case 0:
		return Succeed
	case 1:
		return goals[0]
	}
	//
	return func(s Substitution) Stream {
		stream := goals[0](s)
		//
		for _, g := range goals[1:] {
			if stream.IsEmpty() {
				break
			}
			//
			stream = bind(stream, g)
		}
		//
		return stream
	}
}

// Disj constructs the disjunction of zero or more goals.  Every substitution
// produced by the first goal precedes any produced by the second, and so on.
// The empty disjunction never holds.
func Disj(goals ...Goal) Goal {
	switch len(goals) {
	case 0:
		return Fail
	case 1:
		return goals[0]
	}
	//
	return func(s Substitution) Stream {
		var stream = Empty
		// Build from the right, so the first goal ends up outermost.
		for i := len(goals); i > 0; i-- {
			stream = mplus(goals[i-1](s), stream)
		}
		//
		return stream
	}
}

// Fresh introduces a new variable scoped to the goal constructed by the given
// function.  The variable is allocated only when the goal is applied.
func Fresh(fn func(Var) Goal) Goal {
	return func(s Substitution) Stream {
		return fn(NewVar(""))(s)
	}
}

// Fresh2 introduces two new variables.
func Fresh2(fn func(Var, Var) Goal) Goal {
	return func(s Substitution) Stream {
		return fn(NewVar(""), NewVar(""))(s)
	}
}

// FreshN introduces n new variables.
func FreshN(n uint, fn func([]Var) Goal) Goal {
	return func(s Substitution) Stream {
		vars := make([]Var, n)
		//
		for i := range vars {
			vars[i] = NewVar("")
		}
		//
		return fn(vars)(s)
	}
}

// Delay suspends the construction of a goal until the search needs it.  Any
// goal whose body refers (directly or indirectly) to itself must be wrapped in
// a delay, otherwise constructing the goal would never terminate.
func Delay(fn func() Goal) Goal {
	return func(s Substitution) Stream {
		return Suspension(func() Stream {
			return fn()(s)
		})
	}
}

// Project walks a term under the current substitution, and constructs a goal
// from whatever it resolves to.  This allows a relation to take a shortcut
// when its arguments are already known.
func Project(term Term, fn func(Term) Goal) Goal {
	return func(s Substitution) Stream {
		return fn(s.Walk(term))(s)
	}
}
