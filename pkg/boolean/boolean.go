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
package boolean

import (
	"github.com/consensys/go-relexpr/pkg/expr"
	"github.com/consensys/go-relexpr/pkg/kanren"
)

// IsBool holds when a term is one of the two boolean constants.
func IsBool(term kanren.Term) kanren.Goal {
	return kanren.Disj(kanren.Eq(term, expr.True), kanren.Eq(term, expr.False))
}

// EvalBoolean relates a boolean constant, or a single logical operation over
// boolean constants, to the constant it evaluates to.  Binary operators are
// split on their left operand first, such that a determining left operand
// decides the result without looking at the right operand.  Every pair of
// constants matches exactly one case, and anything else matches none.
func EvalBoolean(input kanren.Term, output kanren.Term) kanren.Goal {
	return kanren.Disj(
		kanren.Conj(IsBool(input), kanren.Eq(output, input)),
		Negation(input, output),
		Conjunction(input, output),
		Disjunction(input, output),
		Implication(input, output))
}

// Negation evaluates a single negation.
func Negation(input kanren.Term, output kanren.Term) kanren.Goal {
	return kanren.Disj(
		kanren.Conj(kanren.Eq(input, expr.Not(expr.True)), kanren.Eq(output, expr.False)),
		kanren.Conj(kanren.Eq(input, expr.Not(expr.False)), kanren.Eq(output, expr.True)))
}

// Conjunction evaluates a single conjunction.
func Conjunction(input kanren.Term, output kanren.Term) kanren.Goal {
	return kanren.Fresh(func(x kanren.Var) kanren.Goal {
		return kanren.Disj(
			kanren.Conj(kanren.Eq(input, expr.And(expr.True, expr.True)), kanren.Eq(output, expr.True)),
			kanren.Conj(kanren.Eq(input, expr.And(expr.False, x)), IsBool(x), kanren.Eq(output, expr.False)),
			kanren.Conj(kanren.Eq(input, expr.And(expr.True, expr.False)), kanren.Eq(output, expr.False)))
	})
}

// Disjunction evaluates a single disjunction.
func Disjunction(input kanren.Term, output kanren.Term) kanren.Goal {
	return kanren.Fresh(func(x kanren.Var) kanren.Goal {
		return kanren.Disj(
			kanren.Conj(kanren.Eq(input, expr.Or(expr.False, expr.False)), kanren.Eq(output, expr.False)),
			kanren.Conj(kanren.Eq(input, expr.Or(expr.True, x)), IsBool(x), kanren.Eq(output, expr.True)),
			kanren.Conj(kanren.Eq(input, expr.Or(expr.False, expr.True)), kanren.Eq(output, expr.True)))
	})
}

// Implication evaluates a single implication.
func Implication(input kanren.Term, output kanren.Term) kanren.Goal {
	return kanren.Fresh(func(x kanren.Var) kanren.Goal {
		return kanren.Disj(
			kanren.Conj(kanren.Eq(input, expr.Implies(expr.True, expr.False)), kanren.Eq(output, expr.False)),
			kanren.Conj(kanren.Eq(input, expr.Implies(expr.False, x)), IsBool(x), kanren.Eq(output, expr.True)),
			kanren.Conj(kanren.Eq(input, expr.Implies(expr.True, expr.True)), kanren.Eq(output, expr.True)))
	})
}
