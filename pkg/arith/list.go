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
)

var (
	// Digit atoms for the carry of a digit sum
	zeroDigit = expr.Digit(0).Term()
	oneDigit  = expr.Digit(1).Term()
	// Numerals used as the starting point and increment of counting searches
	zero = expr.Num(0)
	one  = expr.Num(1)
)

// Reverse relates a list to the same list in reverse order.  The list being
// reversed must be proper, otherwise the search does not terminate.
func Reverse(list kanren.Term, reversed kanren.Term) kanren.Goal {
	return reverseAux(list, reversed, kanren.Nil)
}

// Elements are moved one at a time from the front of the list onto an
// accumulator, which holds the reversed list once the original is exhausted.
func reverseAux(list kanren.Term, reversed kanren.Term, acc kanren.Term) kanren.Goal {
	return kanren.Disj(
		kanren.Conj(kanren.Eq(list, kanren.Nil), kanren.Eq(reversed, acc)),
		kanren.Fresh2(func(head, tail kanren.Var) kanren.Goal {
			return kanren.Conj(
				kanren.Eq(list, kanren.Cons(head, tail)),
				kanren.Delay(func() kanren.Goal {
					return reverseAux(tail, reversed, kanren.Cons(head, acc))
				}))
		}))
}

// IsNumeral holds when a term is a well-formed numeral.  That is, either the
// single digit zero, or a non-empty list of digits which does not start with
// zero.
func IsNumeral(term kanren.Term) kanren.Goal {
	return kanren.Disj(
		kanren.Eq(term, zero),
		kanren.Fresh2(func(head, tail kanren.Var) kanren.Goal {
			return kanren.Conj(
				kanren.Eq(term, kanren.Cons(head, tail)),
				DigitNeq(head, zeroDigit),
				isDigits(tail))
		}))
}

// isDigits holds when a term is a (possibly empty) list of digits.
func isDigits(term kanren.Term) kanren.Goal {
	return kanren.Disj(
		kanren.Eq(term, kanren.Nil),
		kanren.Fresh2(func(head, tail kanren.Var) kanren.Goal {
			return kanren.Conj(
				kanren.Eq(term, kanren.Cons(head, tail)),
				IsDigit(head),
				kanren.Delay(func() kanren.Goal { return isDigits(tail) }))
		}))
}
