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
package kanren

import (
	"fmt"
	"slices"
	"strings"
	"sync/atomic"
)

// Term represents any value in the symbolic universe manipulated by goals.  A
// term is either a logic variable, an atom, a list cell (or the empty list) or
// a record mapping string keys to terms.  Terms are immutable once constructed.
type Term interface {
	// String returns a human-readable representation of this term.
	String() string
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ Term = Var{}
var _ Term = Atom{}
var _ Term = (*Pair)(nil)
var _ Term = (*Map)(nil)

// ===================================================================
// Variables
// ===================================================================

// Counter used for allocating variable identifiers.  Identifiers are unique
// across all queries, which means variables from different queries can never
// be confused with each other.
var nextVarId atomic.Uint64

// Var represents a logic variable.  Variables are identified by a numeric
// identifier, whilst the name is used only for debugging.
type Var struct {
	id   uint64
	name string
}

// NewVar allocates a fresh logic variable with the given (debugging) name.
func NewVar(name string) Var {
	return Var{nextVarId.Add(1), name}
}

// Id returns the unique identifier of this variable.
func (v Var) Id() uint64 {
	return v.id
}

// Name returns the debugging name of this variable (which may be empty).
func (v Var) Name() string {
	return v.name
}

func (v Var) String() string {
	if v.name != "" {
		return fmt.Sprintf("%s#%d", v.name, v.id)
	}
	//
	return fmt.Sprintf("_#%d", v.id)
}

// ===================================================================
// Atoms
// ===================================================================

// Atom represents an indivisible constant.  Two atoms unify iff their values
// are equal according to Go's == operator.  Hence, the value of an atom must
// be comparable.
type Atom struct {
	value any
}

// NewAtom constructs an atom from a given (comparable) value.
func NewAtom(value any) Atom {
	return Atom{value}
}

// Value returns the underlying value of this atom.
func (a Atom) Value() any {
	return a.value
}

func (a Atom) String() string {
	return fmt.Sprint(a.value)
}

// ===================================================================
// Lists
// ===================================================================

type emptyList struct{}

func (emptyList) String() string {
	return "[]"
}

// Nil is the empty list.
var Nil Term = emptyList{}

// Pair represents a list cell consisting of a head term and a tail term.  A
// proper list is a chain of pairs terminated by Nil.
type Pair struct {
	Head Term
	Tail Term
}

// Cons constructs a new list cell.
func Cons(head Term, tail Term) *Pair {
	return &Pair{head, tail}
}

// List constructs a proper list from zero or more terms.
func List(terms ...Term) Term {
	var list = Nil
	//
	for i := len(terms); i > 0; i-- {
		list = Cons(terms[i-1], list)
	}
	//
	return list
}

// ListElements returns the elements of a proper list, or false if the given
// term is not a proper list.  The given term is not walked, hence this is
// normally applied only to reified terms.
func ListElements(term Term) ([]Term, bool) {
	var elements []Term
	//
	for {
		switch t := term.(type) {
		case emptyList:
			return elements, true
		case *Pair:
			elements = append(elements, t.Head)
			term = t.Tail
		default:
			return nil, false
		}
	}
}

func (p *Pair) String() string {
	var (
		builder strings.Builder
		term    Term = p
	)
	//
	builder.WriteString("[")
	//
	for first := true; ; first = false {
		cell, ok := term.(*Pair)
		if !ok {
			break
		}
		//
		if !first {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(cell.Head.String())
		term = cell.Tail
	}
	// Improper list
	if term != Nil {
		builder.WriteString(" | ")
		builder.WriteString(term.String())
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}

// ===================================================================
// Records
// ===================================================================

// Map represents a record of named fields.  Two maps unify iff they have
// exactly the same set of keys and their corresponding values unify.
type Map struct {
	// Keys in sorted order
	keys []string
	// Values in the same order as keys
	values []Term
}

// NewMap constructs a record from a given set of fields.
func NewMap(fields map[string]Term) *Map {
	var (
		keys   = make([]string, 0, len(fields))
		values = make([]Term, len(fields))
	)
	//
	for k := range fields {
		keys = append(keys, k)
	}
	//
	slices.Sort(keys)
	//
	for i, k := range keys {
		values[i] = fields[k]
	}
	//
	return &Map{keys, values}
}

// Keys returns the (sorted) keys of this record.
func (m *Map) Keys() []string {
	return m.keys
}

// Get returns the value associated with a given key, or false if no such key
// exists.
func (m *Map) Get(key string) (Term, bool) {
	if i, ok := slices.BinarySearch(m.keys, key); ok {
		return m.values[i], true
	}
	//
	return nil, false
}

func (m *Map) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, k := range m.keys {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(k)
		builder.WriteString(": ")
		builder.WriteString(m.values[i].String())
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

func (m *Map) sameKeys(other *Map) bool {
	return slices.Equal(m.keys, other.keys)
}
