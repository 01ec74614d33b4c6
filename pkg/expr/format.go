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
	"fmt"

	"github.com/consensys/go-relexpr/pkg/kanren"
)

// Format renders an expression in conventional infix notation, with every
// compound operand parenthesised.  Terms which are not expressions are
// rendered as terms.
func Format(term kanren.Term) string {
	return format(term, false)
}

func format(term kanren.Term, nested bool) string {
	if n, ok := ToNumeral(term); ok {
		return n.String()
	} else if b, ok := ToBool(term); ok {
		return fmt.Sprint(b)
	}
	//
	record, ok := term.(*kanren.Map)
	if !ok {
		return term.String()
	}
	//
	var (
		op, _    = record.Get(KEY_OP)
		text     string
		lhs, lok = record.Get(KEY_LHS)
		rhs, rok = record.Get(KEY_RHS)
		of, ook  = record.Get(KEY_OF)
	)
	//
	switch {
	case op == nil:
		return record.String()
	case lok && rok && len(record.Keys()) == 3:
		text = fmt.Sprintf("%s %s %s", format(lhs, true), op, format(rhs, true))
	case ook && len(record.Keys()) == 2:
		// Unary operators bind tightest, so never need parentheses.
		return fmt.Sprintf("%s%s", op, format(of, true))
	default:
		return record.String()
	}
	//
	if nested {
		return fmt.Sprintf("(%s)", text)
	}
	//
	return text
}
