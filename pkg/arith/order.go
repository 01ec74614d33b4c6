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

// Eq holds when two numerals are identical.  Since numerals have no leading
// zeros, this coincides with numeric equality.
func Eq(lhs kanren.Term, rhs kanren.Term) kanren.Goal {
	return kanren.Eq(lhs, rhs)
}

// Neq holds when two numerals differ, either because one is longer than the
// other or because they disagree at some position.
func Neq(lhs kanren.Term, rhs kanren.Term) kanren.Goal {
	return kanren.FreshN(4, func(v []kanren.Var) kanren.Goal {
		var (
			l, lrest = v[0], v[1]
			r, rrest = v[2], v[3]
		)
		//
		return kanren.Disj(
			// Left ends first
			kanren.Conj(kanren.Eq(lhs, kanren.Nil), kanren.Eq(rhs, kanren.Cons(r, rrest))),
			// Right ends first
			kanren.Conj(kanren.Eq(lhs, kanren.Cons(l, lrest)), kanren.Eq(rhs, kanren.Nil)),
			kanren.Conj(
				kanren.Eq(lhs, kanren.Cons(l, lrest)),
				kanren.Eq(rhs, kanren.Cons(r, rrest)),
				kanren.Disj(
					DigitNeq(l, r),
					kanren.Conj(
						kanren.Eq(l, r),
						kanren.Delay(func() kanren.Goal { return Neq(lrest, rrest) })))))
	})
}

// Lt holds when the left numeral is strictly smaller than the right.  Numerals
// are compared by counting upwards from zero, hence this takes time
// proportional to the smaller of the two.
func Lt(lhs kanren.Term, rhs kanren.Term) kanren.Goal {
	return kanren.Conj(IsNumeral(lhs), IsNumeral(rhs), Neq(lhs, rhs), ltAux(lhs, rhs, zero))
}

// Loet holds when the left numeral is smaller than or equal to the right.
func Loet(lhs kanren.Term, rhs kanren.Term) kanren.Goal {
	return kanren.Conj(IsNumeral(lhs), IsNumeral(rhs), ltAux(lhs, rhs, zero))
}

// Gt holds when the left numeral is strictly larger than the right.
func Gt(lhs kanren.Term, rhs kanren.Term) kanren.Goal {
	return Lt(rhs, lhs)
}

// Goet holds when the left numeral is larger than or equal to the right.
func Goet(lhs kanren.Term, rhs kanren.Term) kanren.Goal {
	return Loet(rhs, lhs)
}

// Count upwards until the counter reaches either the left numeral (in which
// case it is no larger than the right) or the right numeral (in which case it
// is larger and the search fails).
func ltAux(lhs kanren.Term, rhs kanren.Term, count kanren.Term) kanren.Goal {
	return kanren.Disj(
		kanren.Eq(count, lhs),
		kanren.Conj(
			Neq(count, lhs),
			Neq(count, rhs),
			kanren.Fresh(func(next kanren.Var) kanren.Goal {
				return kanren.Conj(
					Sum(count, one, next),
					kanren.Delay(func() kanren.Goal { return ltAux(lhs, rhs, next) }))
			})))
}
