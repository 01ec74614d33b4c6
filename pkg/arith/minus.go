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

// Minus relates two numerals to their difference.  This is only defined when
// the right operand does not exceed the left, and otherwise has no solution.
// The difference is found by counting upwards from zero until a candidate is
// found which, when added to the right operand, gives the left operand.  Hence,
// subtraction takes time proportional to the difference.
func Minus(lhs kanren.Term, rhs kanren.Term, diff kanren.Term) kanren.Goal {
	return kanren.Conj(Loet(rhs, lhs), minusAux(lhs, rhs, diff, zero))
}

func minusAux(lhs kanren.Term, rhs kanren.Term, diff kanren.Term, candidate kanren.Term) kanren.Goal {
	return kanren.Fresh(func(x kanren.Var) kanren.Goal {
		return kanren.Conj(
			Sum(rhs, candidate, x),
			kanren.Disj(
				// Found it
				kanren.Conj(kanren.Eq(x, lhs), kanren.Eq(diff, candidate)),
				// Try the next candidate
				kanren.Conj(
					Neq(x, lhs),
					kanren.Fresh(func(next kanren.Var) kanren.Goal {
						return kanren.Conj(
							Sum(candidate, one, next),
							kanren.Delay(func() kanren.Goal { return minusAux(lhs, rhs, diff, next) }))
					}))))
	})
}
