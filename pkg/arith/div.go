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
	"github.com/consensys/go-relexpr/pkg/kanren"
)

// Div relates two numerals to the quotient of their floor division (the
// remainder is discarded).  Division by zero has no solution.  Otherwise,
// candidate quotients are tried from zero upwards: a candidate whose product
// with the divisor equals the dividend is exact; the first candidate whose
// product exceeds the dividend is one too many; and anything else is too
// small.
func Div(lhs kanren.Term, rhs kanren.Term, quotient kanren.Term) kanren.Goal {
	return kanren.Conj(Neq(rhs, zero), divAux(lhs, rhs, quotient, zero))
}

func divAux(lhs kanren.Term, rhs kanren.Term, quotient kanren.Term, candidate kanren.Term) kanren.Goal {
	return kanren.Fresh(func(x kanren.Var) kanren.Goal {
		return kanren.Conj(
			Prod(rhs, candidate, x),
			kanren.Disj(
				// Exact
				kanren.Conj(kanren.Eq(x, lhs), kanren.Eq(quotient, candidate)),
				// Overshot
				kanren.Conj(Lt(lhs, x), Minus(candidate, one, quotient)),
				// Undershot
				kanren.Conj(
					Lt(x, lhs),
					kanren.Fresh(func(next kanren.Var) kanren.Goal {
						return kanren.Conj(
							Sum(candidate, one, next),
							kanren.Delay(func() kanren.Goal { return divAux(lhs, rhs, quotient, next) }))
					}))))
	})
}
