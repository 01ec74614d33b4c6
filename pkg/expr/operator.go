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
	"errors"
	"fmt"

	"github.com/consensys/go-relexpr/pkg/kanren"
)

// Operator identifies the operation of an operation record.
type Operator string

// Arithmetic operators
const (
	PLUS   Operator = "+"
	MINUS  Operator = "-"
	TIMES  Operator = "*"
	DIVIDE Operator = "/"
)

// Logical operators
const (
	NOT     Operator = "¬"
	AND     Operator = "∧"
	OR      Operator = "∨"
	IMPLIES Operator = "⇒"
)

// Comparison operators
const (
	EQ  Operator = "="
	NEQ Operator = "≠"
	LT  Operator = "<"
	LTE Operator = "≤"
	GT  Operator = ">"
	GTE Operator = "≥"
)

// Class groups operators according to the sublanguage they belong to.
type Class uint8

const (
	// UNKNOWN is the class of any symbol which is not an operator.
	UNKNOWN Class = iota
	// ARITHMETIC operators combine numerals into a numeral.
	ARITHMETIC
	// LOGIC operators combine booleans into a boolean.
	LOGIC
	// COMPARISON operators relate two numerals, giving a boolean.
	COMPARISON
)

func (c Class) String() string {
	switch c {
	case ARITHMETIC:
		return "arithmetic"
	case LOGIC:
		return "logic"
	case COMPARISON:
		return "comparison"
	default:
		return "unknown"
	}
}

// Operators lists all operators grouped by class.
var Operators = map[Class][]Operator{
	ARITHMETIC: {PLUS, MINUS, TIMES, DIVIDE},
	LOGIC:      {NOT, AND, OR, IMPLIES},
	COMPARISON: {EQ, NEQ, LT, LTE, GT, GTE},
}

// Class returns the class of this operator.
func (op Operator) Class() Class {
	for class, ops := range Operators {
		for _, o := range ops {
			if o == op {
				return class
			}
		}
	}
	//
	return UNKNOWN
}

// Arity returns the number of operands this operator expects.
func (op Operator) Arity() uint {
	switch {
	case op == NOT:
		return 1
	case op.Class() == UNKNOWN:
		return 0
	default:
		return 2
	}
}

// Term returns the atom representing this operator in a record.
func (op Operator) Term() kanren.Term {
	return kanren.NewAtom(op)
}

// ErrUnknownOperator is reported when a name does not identify an operator.
var ErrUnknownOperator = errors.New("unknown operator")

// ASCII aliases for the operator symbols.
var aliases = map[string]Operator{
	"add": PLUS, "sub": MINUS, "mul": TIMES, "div": DIVIDE,
	"not": NOT, "!": NOT, "and": AND, "&&": AND, "or": OR, "||": OR, "implies": IMPLIES, "=>": IMPLIES,
	"eq": EQ, "==": EQ, "ne": NEQ, "!=": NEQ, "lt": LT, "le": LTE, "<=": LTE, "gt": GT, "ge": GTE, ">=": GTE,
}

// LookupOperator resolves an operator from either its symbol or an ASCII alias.
func LookupOperator(name string) (Operator, error) {
	if op := Operator(name); op.Class() != UNKNOWN {
		return op, nil
	} else if op, ok := aliases[name]; ok {
		return op, nil
	}
	//
	return "", fmt.Errorf("%w %q", ErrUnknownOperator, name)
}
