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
package iter

// Enumerator represents a lazily computed sequence of items.  Items are only
// computed when requested, hence an enumerator may represent a sequence which
// is expensive (or even impossible) to compute in its entirety.
type Enumerator[T any] interface {
	// Check whether or not there are any items remaining to visit.
	HasNext() bool

	// Get the next item, and advance the enumerator.
	Next() T
}

// EnumerateElements returns an enumerator which covers all arrays of size n
// made up from elements of the given array.  The first position varies
// fastest.  For example, n=2 over {0,1} gives {0,0}, {1,0}, {0,1}, {1,1}.
func EnumerateElements[E any](n uint, elems []E) Enumerator[[]E] {
	var counters []uint
	// Nothing to enumerate over an empty set of elements
	if len(elems) > 0 {
		counters = make([]uint, n)
	}
	//
	return &enumerator[E]{counters, elems}
}

type enumerator[E any] struct {
	counters []uint
	elements []E
}

func (p *enumerator[E]) HasNext() bool {
	return p.counters != nil
}

func (p *enumerator[E]) Next() []E {
	rs := make([]E, len(p.counters))
	// Copy over elements
	for i := 0; i < len(rs); i++ {
		rs[i] = p.elements[p.counters[i]]
	}
	//
	carry := true
	// Increment counters
	for i := 0; i < len(p.counters) && carry; i++ {
		if ithp1 := p.counters[i] + 1; ithp1 != uint(len(p.elements)) {
			p.counters[i] = ithp1
			carry = false
		} else {
			// overflow
			p.counters[i] = 0
		}
	}
	// Check whether finished
	if carry {
		p.counters = nil
	}
	//
	return rs
}

// Collect drains an enumerator into an array.
func Collect[T any, S Enumerator[T]](iter S) []T {
	var items = make([]T, 0)
	//
	for iter.HasNext() {
		items = append(items, iter.Next())
	}
	//
	return items
}

// Filter returns an enumerator over those items of a given enumerator which
// satisfy a predicate.
func Filter[T any](iter Enumerator[T], predicate func(T) bool) Enumerator[T] {
	return &filterEnumerator[T]{iter: iter, predicate: predicate}
}

type filterEnumerator[T any] struct {
	iter      Enumerator[T]
	predicate func(T) bool
	// Next matching item (if found)
	next  T
	ready bool
}

func (p *filterEnumerator[T]) HasNext() bool {
	for !p.ready && p.iter.HasNext() {
		if item := p.iter.Next(); p.predicate(item) {
			p.next, p.ready = item, true
		}
	}
	//
	return p.ready
}

func (p *filterEnumerator[T]) Next() T {
	if !p.HasNext() {
		panic("enumerator exhausted")
	}
	//
	p.ready = false
	//
	return p.next
}
