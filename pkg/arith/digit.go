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
package arith

import (
	"github.com/consensys/go-relexpr/pkg/expr"
	"github.com/consensys/go-relexpr/pkg/kanren"
	"github.com/consensys/go-relexpr/pkg/util/collection/iter"
)

// DigitSum relates two digits to the digit and carry of their sum, such that
// sum + 10*carry = lhs + rhs (where carry is either 0 or 1).  When both
// operands are known this is a single lookup in the generated table.
// Otherwise, every row of the table is offered as an alternative, such that
// the relation can also be run "backwards".  Terms which are not digits have
// no matching row.
func DigitSum(lhs kanren.Term, rhs kanren.Term, sum kanren.Term, carry kanren.Term) kanren.Goal {
	return kanren.Project(lhs, func(l kanren.Term) kanren.Goal {
		return kanren.Project(rhs, func(r kanren.Term) kanren.Goal {
			x, xok := expr.ToDigit(l)
			y, yok := expr.ToDigit(r)
			//
			if xok && yok {
				row := digitSums[x][y]
				return kanren.Conj(kanren.Eq(sum, row.sum.Term()), kanren.Eq(carry, row.carry.Term()))
			}
			//
			return digitSumRows(l, r, sum, carry)
		})
	})
}

func digitSumRows(lhs kanren.Term, rhs kanren.Term, sum kanren.Term, carry kanren.Term) kanren.Goal {
	var rows []kanren.Goal
	//
	for pairs := iter.EnumerateElements(2, expr.Digits); pairs.HasNext(); {
		var (
			pair = pairs.Next()
			row  = digitSums[pair[0]][pair[1]]
		)
		//
		rows = append(rows, kanren.Conj(
			kanren.Eq(lhs, pair[0].Term()),
			kanren.Eq(rhs, pair[1].Term()),
			kanren.Eq(sum, row.sum.Term()),
			kanren.Eq(carry, row.carry.Term())))
	}
	//
	return kanren.Disj(rows...)
}

// DigitNeq holds when two digits are distinct.  When either digit is unknown,
// every ordered pair of distinct digits is offered as an alternative.
func DigitNeq(lhs kanren.Term, rhs kanren.Term) kanren.Goal {
	return kanren.Project(lhs, func(l kanren.Term) kanren.Goal {
		return kanren.Project(rhs, func(r kanren.Term) kanren.Goal {
			x, xok := expr.ToDigit(l)
			y, yok := expr.ToDigit(r)
			//
			if xok && yok {
				if x != y {
					return kanren.Succeed
				}
				//
				return kanren.Fail
			}
			//
			var pairs = make([]kanren.Goal, len(digitNeqs))
			//
			for i, pair := range digitNeqs {
				pairs[i] = kanren.Conj(kanren.Eq(l, pair[0].Term()), kanren.Eq(r, pair[1].Term()))
			}
			//
			return kanren.Disj(pairs...)
		})
	})
}

// IsDigit holds when a term is a digit.  An unknown term is offered each digit
// in turn.
func IsDigit(term kanren.Term) kanren.Goal {
	return kanren.Project(term, func(t kanren.Term) kanren.Goal {
		if _, ok := expr.ToDigit(t); ok {
			return kanren.Succeed
		} else if _, ok := t.(kanren.Var); !ok {
			return kanren.Fail
		}
		//
		var digits = make([]kanren.Goal, len(expr.Digits))
		//
		for i, d := range expr.Digits {
			digits[i] = kanren.Eq(t, d.Term())
		}
		//
		return kanren.Disj(digits...)
	})
}

// DigitSumOf returns the sum digit and carry of two digits, as recorded in the
// digit addition table.
func DigitSumOf(lhs expr.Digit, rhs expr.Digit) (expr.Digit, expr.Digit) {
	row := digitSums[lhs][rhs]
	return row.sum, row.carry
}
