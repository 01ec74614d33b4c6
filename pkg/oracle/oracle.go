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
package oracle

import (
	"math/big"

	"github.com/consensys/go-relexpr/pkg/expr"
	"github.com/consensys/go-relexpr/pkg/kanren"
)

// Eval computes the value of an expression directly, using arbitrary precision
// integers rather than any search.  This gives the reference semantics against
// which the relational evaluator is checked.  The result is false for exactly
// those expressions which have no value, such as subtracting a larger numeral
// from a smaller one, or dividing by zero.
func Eval(term kanren.Term) (kanren.Term, bool) {
	val, ok := eval(term)
	if !ok {
		return nil, false
	}
	//
	return toTerm(val), true
}

// Apply computes the value of a single operator applied to (the values of) its
// operands.  The operands must be numerals or boolean constants, as
// appropriate for the operator.
func Apply(op expr.Operator, operands ...kanren.Term) (kanren.Term, bool) {
	var vals = make([]any, len(operands))
	//
	for i, operand := range operands {
		if n, ok := expr.ToNumeral(operand); ok {
			vals[i] = n.Big()
		} else if b, ok := expr.ToBool(operand); ok {
			vals[i] = b
		} else {
			return nil, false
		}
	}
	//
	val, ok := apply(op, vals)
	if !ok {
		return nil, false
	}
	//
	return toTerm(val), true
}

// Values are either *big.Int or bool.
func eval(term kanren.Term) (any, bool) {
	if n, ok := expr.ToNumeral(term); ok {
		return n.Big(), true
	} else if b, ok := expr.ToBool(term); ok {
		return b, true
	}
	//
	op, ok := expr.OperatorOf(term)
	if !ok {
		return nil, false
	}
	//
	var (
		record = term.(*kanren.Map)
		keys   = []string{expr.KEY_LHS, expr.KEY_RHS}
	)
	//
	if op.Arity() == 1 {
		keys = []string{expr.KEY_OF}
	}
	//
	if len(record.Keys()) != len(keys)+1 {
		return nil, false
	}
	//
	vals := make([]any, len(keys))
	//
	for i, key := range keys {
		operand, ok := record.Get(key)
		if !ok {
			return nil, false
		} else if vals[i], ok = eval(operand); !ok {
			return nil, false
		}
	}
	//
	return apply(op, vals)
}

func apply(op expr.Operator, vals []any) (any, bool) {
	switch op.Class() {
	case expr.ARITHMETIC, expr.COMPARISON:
		if len(vals) != 2 {
			return nil, false
		}
		//
		lhs, lok := vals[0].(*big.Int)
		rhs, rok := vals[1].(*big.Int)
		//
		if !lok || !rok {
			return nil, false
		} else if op.Class() == expr.COMPARISON {
			return compare(op, lhs.Cmp(rhs)), true
		}
		//
		return arithmetic(op, lhs, rhs)
	case expr.LOGIC:
		var bools = make([]bool, len(vals))
		//
		for i, val := range vals {
			b, ok := val.(bool)
			if !ok {
				return nil, false
			}
			//
			bools[i] = b
		}
		//
		return logic(op, bools)
	default:
		return nil, false
	}
}

func arithmetic(op expr.Operator, lhs *big.Int, rhs *big.Int) (any, bool) {
	var val big.Int
	//
	switch op {
	case expr.PLUS:
		val.Add(lhs, rhs)
	case expr.MINUS:
		if lhs.Cmp(rhs) < 0 {
			return nil, false
		}
		//
		val.Sub(lhs, rhs)
	case expr.TIMES:
		val.Mul(lhs, rhs)
	case expr.DIVIDE:
		if rhs.Sign() == 0 {
			return nil, false
		}
		// Operands are non-negative, so truncation is floor.
		val.Quo(lhs, rhs)
	default:
		return nil, false
	}
	//
	return &val, true
}

func compare(op expr.Operator, c int) bool {
	switch op {
	case expr.EQ:
		return c == 0
	case expr.NEQ:
		return c != 0
	case expr.LT:
		return c < 0
	case expr.LTE:
		return c <= 0
	case expr.GT:
		return c > 0
	default:
		return c >= 0
	}
}

func logic(op expr.Operator, vals []bool) (any, bool) {
	switch {
	case op == expr.NOT && len(vals) == 1:
		return !vals[0], true
	case len(vals) != 2:
		return nil, false
	case op == expr.AND:
		return vals[0] && vals[1], true
	case op == expr.OR:
		return vals[0] || vals[1], true
	case op == expr.IMPLIES:
		return !vals[0] || vals[1], true
	default:
		return nil, false
	}
}

func toTerm(val any) kanren.Term {
	if b, ok := val.(bool); ok {
		return expr.Bool(b)
	}
	// Values are never negative, hence always valid numerals.
	n, _ := expr.NumeralFromBig(val.(*big.Int))
	//
	return n.Term()
}
