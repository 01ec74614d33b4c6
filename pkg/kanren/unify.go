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

// Unify attempts to make two terms equal under a given substitution, returning
// the (possibly extended) substitution on success.  As with most miniKanren
// implementations, no occurs check is performed.
func Unify(lhs Term, rhs Term, s Substitution) (Substitution, bool) {
	for {
		lhs, rhs = s.Walk(lhs), s.Walk(rhs)
		// Variables first
		if l, ok := lhs.(Var); ok {
			if r, ok := rhs.(Var); ok && l.id == r.id {
				return s, true
			}
			//
			return s.Extend(l, rhs), true
		} else if r, ok := rhs.(Var); ok {
			return s.Extend(r, lhs), true
		}
		//
		switch l := lhs.(type) {
		case Atom:
			r, ok := rhs.(Atom)
			return s, ok && l.value == r.value
		case emptyList:
			return s, rhs == Nil
		case *Map:
			return unifyMaps(l, rhs, s)
		case *Pair:
			r, ok := rhs.(*Pair)
			if !ok {
				return s, false
			} else if s, ok = Unify(l.Head, r.Head, s); !ok {
				return s, false
			}
			// Tails are unified iteratively, rather than recursively.
			lhs, rhs = l.Tail, r.Tail
		default:
			return s, false
		}
	}
}

func unifyMaps(lhs *Map, term Term, s Substitution) (Substitution, bool) {
	var (
		rhs, ok = term.(*Map)
	)
	//
	if !ok || !lhs.sameKeys(rhs) {
		return s, false
	}
	//
	for i := range lhs.values {
		if s, ok = Unify(lhs.values[i], rhs.values[i], s); !ok {
			return s, false
		}
	}
	// Done
	return s, true
}
