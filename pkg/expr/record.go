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
package expr

import (
	"github.com/consensys/go-relexpr/pkg/kanren"
)

// True is the boolean constant true.
var True kanren.Term = kanren.NewAtom(true)

// False is the boolean constant false.
var False kanren.Term = kanren.NewAtom(false)

// Bool returns the boolean constant for a given Go boolean.
func Bool(b bool) kanren.Term {
	if b {
		return True
	}
	//
	return False
}

// ToBool checks whether a term is a boolean constant and, if so, returns its
// value.
func ToBool(term kanren.Term) (bool, bool) {
	if atom, ok := term.(kanren.Atom); ok {
		b, ok := atom.Value().(bool)
		return b, ok
	}
	//
	return false, false
}

// Field names used in operation records.
const (
	// KEY_OP names the operator field.
	KEY_OP = "op"
	// KEY_LHS names the left operand of a binary operation.
	KEY_LHS = "lhs"
	// KEY_RHS names the right operand of a binary operation.
	KEY_RHS = "rhs"
	// KEY_OF names the operand of a unary operation.
	KEY_OF = "of"
)

// Binary constructs a binary operation record.  The operator is any term,
// which allows records to be used as patterns (i.e. with a variable operator)
// or to be malformed.
func Binary(op kanren.Term, lhs kanren.Term, rhs kanren.Term) kanren.Term {
	return kanren.NewMap(map[string]kanren.Term{KEY_OP: op, KEY_LHS: lhs, KEY_RHS: rhs})
}

// Unary constructs a unary operation record.
func Unary(op kanren.Term, of kanren.Term) kanren.Term {
	return kanren.NewMap(map[string]kanren.Term{KEY_OP: op, KEY_OF: of})
}

// Add constructs the record lhs + rhs.
func Add(lhs kanren.Term, rhs kanren.Term) kanren.Term {
	return Binary(PLUS.Term(), lhs, rhs)
}

// Subtract constructs the record lhs - rhs.
func Subtract(lhs kanren.Term, rhs kanren.Term) kanren.Term {
	return Binary(MINUS.Term(), lhs, rhs)
}

// Multiply constructs the record lhs * rhs.
func Multiply(lhs kanren.Term, rhs kanren.Term) kanren.Term {
	return Binary(TIMES.Term(), lhs, rhs)
}

// Divide constructs the record lhs / rhs.
func Divide(lhs kanren.Term, rhs kanren.Term) kanren.Term {
	return Binary(DIVIDE.Term(), lhs, rhs)
}

// Not constructs the record ¬of.
func Not(of kanren.Term) kanren.Term {
	return Unary(NOT.Term(), of)
}

// And constructs the record lhs ∧ rhs.
func And(lhs kanren.Term, rhs kanren.Term) kanren.Term {
	return Binary(AND.Term(), lhs, rhs)
}

// Or constructs the record lhs ∨ rhs.
func Or(lhs kanren.Term, rhs kanren.Term) kanren.Term {
	return Binary(OR.Term(), lhs, rhs)
}

// Implies constructs the record lhs ⇒ rhs.
func Implies(lhs kanren.Term, rhs kanren.Term) kanren.Term {
	return Binary(IMPLIES.Term(), lhs, rhs)
}

// Equal constructs the record lhs = rhs.
func Equal(lhs kanren.Term, rhs kanren.Term) kanren.Term {
	return Binary(EQ.Term(), lhs, rhs)
}

// NotEqual constructs the record lhs ≠ rhs.
func NotEqual(lhs kanren.Term, rhs kanren.Term) kanren.Term {
	return Binary(NEQ.Term(), lhs, rhs)
}

// LessThan constructs the record lhs < rhs.
func LessThan(lhs kanren.Term, rhs kanren.Term) kanren.Term {
	return Binary(LT.Term(), lhs, rhs)
}

// LessEqual constructs the record lhs ≤ rhs.
func LessEqual(lhs kanren.Term, rhs kanren.Term) kanren.Term {
	return Binary(LTE.Term(), lhs, rhs)
}

// GreaterThan constructs the record lhs > rhs.
func GreaterThan(lhs kanren.Term, rhs kanren.Term) kanren.Term {
	return Binary(GT.Term(), lhs, rhs)
}

// GreaterEqual constructs the record lhs ≥ rhs.
func GreaterEqual(lhs kanren.Term, rhs kanren.Term) kanren.Term {
	return Binary(GTE.Term(), lhs, rhs)
}

// Apply constructs the record for a given operator applied to some operands,
// returning false if the number of operands does not match its arity.
func Apply(op Operator, operands ...kanren.Term) (kanren.Term, bool) {
	switch {
	case op.Arity() == 1 && len(operands) == 1:
		return Unary(op.Term(), operands[0]), true
	case op.Arity() == 2 && len(operands) == 2:
		return Binary(op.Term(), operands[0], operands[1]), true
	default:
		return nil, false
	}
}

// OperatorOf returns the operator of a (resolved) operation record, or false
// if the term is not a record or its operator is unknown.
func OperatorOf(term kanren.Term) (Operator, bool) {
	record, ok := term.(*kanren.Map)
	if !ok {
		return "", false
	}
	//
	field, ok := record.Get(KEY_OP)
	if !ok {
		return "", false
	} else if atom, ok := field.(kanren.Atom); ok {
		op, ok := atom.Value().(Operator)
		return op, ok && op.Class() != UNKNOWN
	}
	//
	return "", false
}
