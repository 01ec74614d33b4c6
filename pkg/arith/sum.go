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

// Sum relates two numerals to their sum.  Either operand may also be the empty
// list, which is treated as a zero with no digits (this arises when a carry is
// added to the exhausted rest of an operand).  The sum of two well-formed
// numerals is always a well-formed numeral.
func Sum(lhs kanren.Term, rhs kanren.Term, sum kanren.Term) kanren.Goal {
	return kanren.Conj(
		kanren.Disj(
			kanren.Conj(IsNumeral(lhs), IsNumeral(rhs)),
			kanren.Conj(IsNumeral(lhs), kanren.Eq(rhs, kanren.Nil)),
			kanren.Conj(kanren.Eq(lhs, kanren.Nil), IsNumeral(rhs))),
		kanren.Fresh2(func(l, r kanren.Var) kanren.Goal {
			// Least significant digits first
			return kanren.Conj(
				Reverse(lhs, l),
				Reverse(rhs, r),
				sumAux(l, r, sum, kanren.Nil))
		}))
}

// Fold two reversed numerals from their least significant end.  Result digits
// are pushed onto the accumulator as they are computed, which therefore holds
// the sum (most significant digit first) once both operands are exhausted.
// Any carry is added straight into the remaining digits of the left operand,
// so no carry is ever passed between steps.
func sumAux(lhs kanren.Term, rhs kanren.Term, sum kanren.Term, acc kanren.Term) kanren.Goal {
	return kanren.Disj(
		// Both exhausted
		kanren.Conj(kanren.Eq(lhs, kanren.Nil), kanren.Eq(rhs, kanren.Nil), kanren.Eq(sum, acc)),
		// Right exhausted, so copy left through
		kanren.Fresh2(func(digit, rest kanren.Var) kanren.Goal {
			return kanren.Conj(
				kanren.Eq(lhs, kanren.Cons(digit, rest)),
				kanren.Eq(rhs, kanren.Nil),
				kanren.Delay(func() kanren.Goal {
					return sumAux(rest, rhs, sum, kanren.Cons(digit, acc))
				}))
		}),
		// Left exhausted, so copy right through
		kanren.Fresh2(func(digit, rest kanren.Var) kanren.Goal {
			return kanren.Conj(
				kanren.Eq(rhs, kanren.Cons(digit, rest)),
				kanren.Eq(lhs, kanren.Nil),
				kanren.Delay(func() kanren.Goal {
					return sumAux(lhs, rest, sum, kanren.Cons(digit, acc))
				}))
		}),
		// Neither exhausted
		kanren.FreshN(8, func(v []kanren.Var) kanren.Goal {
			var (
				ldigit, lrest = v[0], v[1]
				rdigit, rrest = v[2], v[3]
				digit, carry  = v[4], v[5]
				// Rest of the left operand after the carry is added
				carried = v[6]
				// Same again, most significant digit first
				rcarried = v[7]
			)
			//
			return kanren.Conj(
				kanren.Eq(lhs, kanren.Cons(ldigit, lrest)),
				kanren.Eq(rhs, kanren.Cons(rdigit, rrest)),
				DigitSum(ldigit, rdigit, digit, carry),
				kanren.Disj(
					kanren.Conj(kanren.Eq(carry, zeroDigit), kanren.Eq(carried, lrest)),
					kanren.Conj(
						kanren.Eq(carry, oneDigit),
						Reverse(lrest, rcarried),
						kanren.Fresh(func(inc kanren.Var) kanren.Goal {
							return kanren.Conj(
								kanren.Delay(func() kanren.Goal { return Sum(rcarried, one, inc) }),
								Reverse(inc, carried))
						}))),
				kanren.Delay(func() kanren.Goal {
					return sumAux(carried, rrest, sum, kanren.Cons(digit, acc))
				}))
		}))
}
