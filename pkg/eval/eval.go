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
package eval

import (
	"github.com/consensys/go-relexpr/pkg/arith"
	"github.com/consensys/go-relexpr/pkg/boolean"
	"github.com/consensys/go-relexpr/pkg/expr"
	"github.com/consensys/go-relexpr/pkg/kanren"
	"github.com/consensys/go-relexpr/pkg/relation"
)

// Dispatch is a goal relating a single operation, whose operands are already
// evaluated, to its value.
type Dispatch func(input kanren.Term, output kanren.Term) kanren.Goal

// Determines which evaluator handles operations of each class.
var dispatch = map[expr.Class]Dispatch{
	expr.ARITHMETIC: EvalArithmetic,
	expr.LOGIC:      boolean.EvalBoolean,
	expr.COMPARISON: relation.EvalComparison,
}

// Eval relates an arbitrary expression to its value.  Numerals and boolean
// constants evaluate to themselves.  For an operation record, the operator is
// matched first and then its operands are evaluated (recursively) before the
// record is rebuilt with their values and handed to the evaluator for its
// class.  Records with an unknown operator, or the wrong fields, have no value.
func Eval(input kanren.Term, output kanren.Term) kanren.Goal {
	var cases = []kanren.Goal{
		kanren.Conj(arith.IsNumeral(input), kanren.Eq(output, input)),
		kanren.Conj(boolean.IsBool(input), kanren.Eq(output, input)),
	}
	//
	for _, class := range []expr.Class{expr.ARITHMETIC, expr.LOGIC, expr.COMPARISON} {
		for _, op := range expr.Operators[class] {
			if op.Arity() == 1 {
				cases = append(cases, evalUnary(op, input, output, dispatch[class]))
			} else {
				cases = append(cases, evalBinary(op, input, output, dispatch[class]))
			}
		}
	}
	//
	return kanren.Disj(cases...)
}

func evalUnary(op expr.Operator, input kanren.Term, output kanren.Term, fn Dispatch) kanren.Goal {
	return kanren.Fresh2(func(of, val kanren.Var) kanren.Goal {
		return kanren.Conj(
			kanren.Eq(input, expr.Unary(op.Term(), of)),
			kanren.Delay(func() kanren.Goal { return Eval(of, val) }),
			fn(expr.Unary(op.Term(), val), output))
	})
}

func evalBinary(op expr.Operator, input kanren.Term, output kanren.Term, fn Dispatch) kanren.Goal {
	return kanren.FreshN(4, func(v []kanren.Var) kanren.Goal {
		var (
			lhs, lval = v[0], v[1]
			rhs, rval = v[2], v[3]
		)
		//
		return kanren.Conj(
			kanren.Eq(input, expr.Binary(op.Term(), lhs, rhs)),
			kanren.Delay(func() kanren.Goal { return Eval(lhs, lval) }),
			kanren.Delay(func() kanren.Goal { return Eval(rhs, rval) }),
			fn(expr.Binary(op.Term(), lval, rval), output))
	})
}

// Arithmetic relations, in the order they are tried.
var arithmetic = []struct {
	op  expr.Operator
	rel func(lhs kanren.Term, rhs kanren.Term, out kanren.Term) kanren.Goal
}{
	{expr.PLUS, arith.Sum},
	{expr.MINUS, arith.Minus},
	{expr.TIMES, arith.Prod},
	{expr.DIVIDE, arith.Div},
}

// EvalArithmetic relates a numeral, or a single arithmetic operation over two
// numerals, to its value.
func EvalArithmetic(input kanren.Term, output kanren.Term) kanren.Goal {
	var cases = []kanren.Goal{
		kanren.Conj(arith.IsNumeral(input), kanren.Eq(output, input)),
	}
	//
	for _, a := range arithmetic {
		a := a // per-iteration copy (pre-Go 1.22 loop semantics)
		cases = append(cases, kanren.Fresh2(func(lhs, rhs kanren.Var) kanren.Goal {
			return kanren.Conj(
				kanren.Eq(input, expr.Binary(a.op.Term(), lhs, rhs)),
				a.rel(lhs, rhs, output))
		}))
	}
	//
	return kanren.Disj(cases...)
}
