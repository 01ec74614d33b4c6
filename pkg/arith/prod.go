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

// Prod relates two numerals to their product.  The product is computed by
// repeated addition of the left operand, decrementing the right operand each
// time until it reaches zero.  Since every decrement is itself a subtraction
// by counting, this takes time roughly quadratic in the right operand and
// should not be used with large multipliers.
func Prod(lhs kanren.Term, rhs kanren.Term, prod kanren.Term) kanren.Goal {
	return kanren.Conj(IsNumeral(lhs), prodAux(lhs, rhs, prod, zero))
}

func prodAux(lhs kanren.Term, rhs kanren.Term, prod kanren.Term, acc kanren.Term) kanren.Goal {
	return kanren.Disj(
		kanren.Conj(kanren.Eq(rhs, zero), kanren.Eq(prod, acc)),
		kanren.Fresh2(func(sum, dec kanren.Var) kanren.Goal {
			return kanren.Conj(
				Sum(acc, lhs, sum),
				Minus(rhs, one, dec),
				kanren.Delay(func() kanren.Goal { return prodAux(lhs, dec, prod, sum) }))
		}))
}
