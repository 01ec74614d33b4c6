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

// Stream is a lazily produced sequence of substitutions.  A stream is either
// empty, mature (i.e. has a substitution available immediately, followed by
// some further stream) or suspended.  A suspended stream has not yet been
// expanded and must be forced to determine what it contains.  Forcing is
// performed by the solver one step at a time, which means that no goal is
// expanded before the search actually needs it.
type Stream interface {
	// IsEmpty checks whether this stream is known to contain no substitutions.
	IsEmpty() bool
}

type emptyStream struct{}

// Suspension is a stream whose contents are determined only when it is forced
// (i.e. called).
type Suspension func() Stream

type matureStream struct {
	head Substitution
	tail Stream
}

// Empty is the stream containing no substitutions.
var Empty Stream = emptyStream{}

// Unit constructs a stream containing exactly one substitution.
func Unit(s Substitution) Stream {
	return &matureStream{s, Empty}
}

// IsEmpty implementation for the Stream interface.
func (emptyStream) IsEmpty() bool { return true }

// IsEmpty implementation for the Stream interface.
func (Suspension) IsEmpty() bool { return false }

// IsEmpty implementation for the Stream interface.
func (*matureStream) IsEmpty() bool { return false }

// Append two streams, such that every substitution of the first precedes every
// substitution of the second.  This gives a depth-first search which respects
// the order in which disjuncts are written.
func mplus(first Stream, second Stream) Stream {
	if second.IsEmpty() {
		return first
	}
	//
	switch s := first.(type) {
	case emptyStream:
		return second
	case Suspension:
		return Suspension(func() Stream { return mplus(s(), second) })
	case *matureStream:
		return &matureStream{s.head, mplus(s.tail, second)}
	default:
		panic("unknown stream")
	}
}

// Apply a goal to every substitution of a stream, appending the resulting
// streams in order.
func bind(stream Stream, goal Goal) Stream {
	switch s := stream.(type) {
	case emptyStream:
		return s
	case Suspension:
		return Suspension(func() Stream { return bind(s(), goal) })
	case *matureStream:
		if s.tail.IsEmpty() {
			return goal(s.head)
		}
		//
		return mplus(goal(s.head), bind(s.tail, goal))
	default:
		panic("unknown stream")
	}
}
