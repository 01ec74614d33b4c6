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

// Number of bits of a variable identifier consumed at each level of the trie.
const trieBits = 5

// Mask for extracting the bits used at a given level.
const trieMask = (1 << trieBits) - 1

// Substitution is a persistent mapping from variables to terms.  Extending a
// substitution never modifies it, but returns a new substitution which shares
// structure with the original.  This is what allows alternative branches of
// the search to proceed from the same state.
//
// The mapping is implemented as a 32-way trie over the bits of a variable's
// identifier (least significant first), such that a lookup or extension costs
// O(log₃₂ id) steps.
type Substitution struct {
	root *trieNode
	size uint
}

type trieNode struct {
	children [1 << trieBits]*trieNode
	// Term bound at this node, or nil if none.
	value Term
}

// EmptySubstitution returns the substitution which binds no variables.
func EmptySubstitution() Substitution {
	return Substitution{}
}

// Len returns the number of variables bound in this substitution.
func (s Substitution) Len() uint {
	return s.size
}

// Lookup returns the term directly bound to a given variable (if any).  Note
// that the bound term may itself be a variable.
func (s Substitution) Lookup(v Var) (Term, bool) {
	node := s.root
	//
	for id := v.id; id != 0 && node != nil; id >>= trieBits {
		node = node.children[id&trieMask]
	}
	//
	if node == nil || node.value == nil {
		return nil, false
	}
	//
	return node.value, true
}

// Extend returns a new substitution which additionally binds the given
// variable to the given term.  The variable is assumed to be unbound.
func (s Substitution) Extend(v Var, t Term) Substitution {
	return Substitution{insert(s.root, v.id, t), s.size + 1}
}

func insert(node *trieNode, id uint64, t Term) *trieNode {
	var copied trieNode
	//
	if node != nil {
		copied = *node
	}
	//
	if id == 0 {
		copied.value = t
	} else {
		index := id & trieMask
		copied.children[index] = insert(copied.children[index], id>>trieBits, t)
	}
	//
	return &copied
}

// Walk resolves a term by following variable bindings until either an unbound
// variable or a non-variable term is reached.  Subterms are not resolved.
func (s Substitution) Walk(t Term) Term {
	for {
		v, ok := t.(Var)
		if !ok {
			return t
		}
		//
		bound, ok := s.Lookup(v)
		if !ok {
			return t
		}
		//
		t = bound
	}
}

// WalkDeep resolves a term fully, such that the only variables remaining in
// the result are unbound in this substitution.
func (s Substitution) WalkDeep(t Term) Term {
	switch t := s.Walk(t).(type) {
	case *Pair:
		return s.walkList(t)
	case *Map:
		values := make([]Term, len(t.values))
		//
		for i, v := range t.values {
			values[i] = s.WalkDeep(v)
		}
		//
		return &Map{t.keys, values}
	default:
		return t
	}
}

// Lists are walked iteratively, since numerals can be long.
func (s Substitution) walkList(list *Pair) Term {
	var (
		heads []Term
		term  Term = list
	)
	//
	for {
		cell, ok := term.(*Pair)
		if !ok {
			break
		}
		//
		heads = append(heads, s.WalkDeep(cell.Head))
		term = s.Walk(cell.Tail)
	}
	// Resolve whatever terminates the list
	result := s.WalkDeep(term)
	//
	for i := len(heads); i > 0; i-- {
		result = Cons(heads[i-1], result)
	}
	//
	return result
}
