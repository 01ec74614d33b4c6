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
	"gopkg.in/yaml.v3"
)

// DecodeError describes a YAML node which does not describe an expression.
type DecodeError struct {
	Line   int
	Column int
	Msg    string
	// Underlying cause (if any)
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeError(node *yaml.Node, err error, format string, args ...any) *DecodeError {
	return &DecodeError{node.Line, node.Column, fmt.Sprintf(format, args...), err}
}

// DecodeYAML converts a YAML node into an expression.  Expressions are written
// as already structured data, rather than in any textual syntax: a boolean
// scalar is a boolean constant; any other scalar must be a natural number
// (written in decimal); and a mapping is an operation record with an "op" key
// alongside either "lhs" and "rhs" keys, or an "of" key.  For example:
//
//	op: "+"
//	lhs: 6
//	rhs: {op: "*", lhs: 3, rhs: 2}
func DecodeYAML(node *yaml.Node) (kanren.Term, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) != 1 {
			return nil, decodeError(node, nil, "expected exactly one expression")
		}
		//
		return DecodeYAML(node.Content[0])
	case yaml.AliasNode:
		return DecodeYAML(node.Alias)
	case yaml.ScalarNode:
		return decodeScalar(node)
	case yaml.MappingNode:
		return decodeRecord(node)
	default:
		return nil, decodeError(node, nil, "expected a scalar or mapping")
	}
}

func decodeScalar(node *yaml.Node) (kanren.Term, error) {
	if node.Tag == "!!bool" {
		var b bool
		//
		if err := node.Decode(&b); err != nil {
			return nil, decodeError(node, err, "invalid boolean %q", node.Value)
		}
		//
		return Bool(b), nil
	}
	//
	n, err := ParseNumeral(node.Value)
	if err != nil {
		return nil, decodeError(node, err, "invalid numeral %q", node.Value)
	}
	//
	return n.Term(), nil
}

func decodeRecord(node *yaml.Node) (kanren.Term, error) {
	var (
		fields = make(map[string]*yaml.Node)
		op     Operator
		err    error
	)
	// Mappings are stored as key-value pairs
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		//
		switch key.Value {
		case KEY_OP, KEY_LHS, KEY_RHS, KEY_OF:
			if _, ok := fields[key.Value]; ok {
				return nil, decodeError(key, nil, "duplicate field %q", key.Value)
			}
			//
			fields[key.Value] = node.Content[i+1]
		default:
			return nil, decodeError(key, nil, "unknown field %q", key.Value)
		}
	}
	// Determine operator
	if opNode, ok := fields[KEY_OP]; !ok {
		return nil, decodeError(node, nil, "missing field %q", KEY_OP)
	} else if op, err = LookupOperator(opNode.Value); err != nil {
		return nil, decodeError(opNode, err, "%s", err.Error())
	}
	// Decode operands
	var names = []string{KEY_LHS, KEY_RHS}
	//
	if op.Arity() == 1 {
		names = []string{KEY_OF}
	}
	//
	if len(fields) != len(names)+1 {
		return nil, decodeError(node, nil, "operator %s expects fields %q", op, names)
	}
	//
	operands := make([]kanren.Term, len(names))
	//
	for i, name := range names {
		operand, ok := fields[name]
		if !ok {
			return nil, decodeError(node, nil, "missing field %q", name)
		} else if operands[i], err = DecodeYAML(operand); err != nil {
			return nil, err
		}
	}
	// Done
	term, _ := Apply(op, operands...)
	//
	return term, nil
}

// EncodeYAML converts an expression into a YAML node, such that DecodeYAML
// recovers the same expression.  Operation records are written in flow style,
// with operators always quoted (since many symbols are YAML indicators).
func EncodeYAML(term kanren.Term) (*yaml.Node, error) {
	if n, ok := ToNumeral(term); ok {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: n.String()}, nil
	} else if b, ok := ToBool(term); ok {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprint(b)}, nil
	}
	//
	op, ok := OperatorOf(term)
	if !ok {
		return nil, fmt.Errorf("cannot encode %s", term)
	}
	//
	var (
		record = term.(*kanren.Map)
		names  = []string{KEY_LHS, KEY_RHS}
		node   = &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
	)
	//
	if op.Arity() == 1 {
		names = []string{KEY_OF}
	}
	//
	node.Content = append(node.Content, encodeKey(KEY_OP),
		&yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: string(op)})
	//
	for _, name := range names {
		operand, ok := record.Get(name)
		if !ok {
			return nil, fmt.Errorf("cannot encode %s (missing field %q)", term, name)
		}
		//
		child, err := EncodeYAML(operand)
		if err != nil {
			return nil, err
		}
		//
		node.Content = append(node.Content, encodeKey(name), child)
	}
	// Done
	return node, nil
}

func encodeKey(name string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
}
