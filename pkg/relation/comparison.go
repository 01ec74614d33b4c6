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
package relation

import (
	"github.com/consensys/go-relexpr/pkg/arith"
	"github.com/consensys/go-relexpr/pkg/expr"
	"github.com/consensys/go-relexpr/pkg/kanren"
)

// Predicate is a goal over two numerals which holds at most once.
type Predicate func(lhs kanren.Term, rhs kanren.Term) kanren.Goal

// Comparison pairs the predicate for a comparison operator with its
// complement.  Exactly one of the two holds for any pair of numerals.
type Comparison struct {
	Holds Predicate
	Fails Predicate
}

var comparisons = map[expr.Operator]Comparison{
	expr.EQ:  {arith.Eq, arith.Neq},
	expr.NEQ: {arith.Neq, arith.Eq},
	expr.LT:  {arith.Lt, arith.Goet},
	expr.LTE: {arith.Loet, arith.Gt},
	expr.GT:  {arith.Gt, arith.Loet},
	expr.GTE: {arith.Goet, arith.Lt},
}

// ComparisonOf returns the predicates for a given comparison operator, or false
// if it is not a comparison operator.
func ComparisonOf(op expr.Operator) (Comparison, bool) {
	c, ok := comparisons[op]
	return c, ok
}

// EvalComparison relates a single comparison between two numerals to the
// boolean constant it evaluates to.  The operands must already be numerals,
// otherwise (as for any record which is not a comparison) there is no
// solution.
func EvalComparison(input kanren.Term, output kanren.Term) kanren.Goal {
	return kanren.Fresh2(func(lhs, rhs kanren.Var) kanren.Goal {
		var cases []kanren.Goal
		//
		for _, op := range expr.Operators[expr.COMPARISON] {
			cases = append(cases, kanren.Conj(
				kanren.Eq(input, expr.Binary(op.Term(), lhs, rhs)),
				Compare(op, lhs, rhs, output)))
		}
		//
		return kanren.Disj(cases...)
	})
}

// Compare relates two numerals to the boolean constant given by comparing them
// with a given operator.
func Compare(op expr.Operator, lhs kanren.Term, rhs kanren.Term, output kanren.Term) kanren.Goal {
	c, ok := comparisons[op]
	if !ok {
		return kanren.Fail
	}
	//
	return kanren.Conj(
		arith.IsNumeral(lhs),
		arith.IsNumeral(rhs),
		kanren.Disj(
			kanren.Conj(c.Holds(lhs, rhs), kanren.Eq(output, expr.True)),
			kanren.Conj(c.Fails(lhs, rhs), kanren.Eq(output, expr.False))))
}
