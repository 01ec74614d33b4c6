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
	"math/big"
	"strconv"
	"strings"

	"github.com/consensys/go-relexpr/pkg/kanren"
)

// Base of all numerals.
const Base = 10

// Digit is one of the ten decimal digits.
type Digit uint8

// Digits lists every digit in ascending order.
var Digits = []Digit{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

// Interned atoms for each digit.
var digitAtoms [Base]kanren.Atom

func init() {
	for _, d := range Digits {
		digitAtoms[d] = kanren.NewAtom(d)
	}
}

// Term returns the atom representing this digit.
func (d Digit) Term() kanren.Term {
	return digitAtoms[d]
}

func (d Digit) String() string {
	return strconv.Itoa(int(d))
}

// ToDigit checks whether a given term is a digit atom and, if so, returns it.
func ToDigit(term kanren.Term) (Digit, bool) {
	if atom, ok := term.(kanren.Atom); ok {
		d, ok := atom.Value().(Digit)
		return d, ok && d < Base
	}
	//
	return 0, false
}

// ErrInvalidNumeral is reported when a string (or value) does not describe a
// natural number.
var ErrInvalidNumeral = errors.New("invalid numeral")

// Numeral is a natural number written as a sequence of decimal digits, most
// significant first.  A well-formed numeral is either the single digit zero,
// or has no leading zero.
type Numeral []Digit

// NumeralOf constructs the numeral for a given machine integer.
func NumeralOf(n uint64) Numeral {
	var digits Numeral
	//
	for {
		digits = append(digits, Digit(n%Base))
		//
		if n /= Base; n == 0 {
			break
		}
	}
	// Digits were generated least significant first
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	//
	return digits
}

// ParseNumeral converts a string of decimal digits into a numeral.  Leading
// zeros are rejected, since they would violate the numeral invariant.
func ParseNumeral(text string) (Numeral, error) {
	var digits = make(Numeral, len(text))
	//
	for i, c := range []byte(text) {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: %q (unexpected character %q)", ErrInvalidNumeral, text, c)
		}
		//
		digits[i] = Digit(c - '0')
	}
	//
	if !digits.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumeral, text)
	}
	//
	return digits, nil
}

// NumeralFromBig converts an arbitrary precision integer into a numeral.
func NumeralFromBig(n *big.Int) (Numeral, error) {
	if n.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s is negative", ErrInvalidNumeral, n)
	}
	//
	return ParseNumeral(n.Text(Base))
}

// ToNumeral checks whether a (reified) term is a well-formed numeral and, if
// so, returns it.
func ToNumeral(term kanren.Term) (Numeral, bool) {
	elements, ok := kanren.ListElements(term)
	if !ok {
		return nil, false
	}
	//
	digits := make(Numeral, len(elements))
	//
	for i, e := range elements {
		if digits[i], ok = ToDigit(e); !ok {
			return nil, false
		}
	}
	//
	return digits, digits.Valid()
}

// Valid checks this numeral is non-empty and has no leading zero (unless it is
// zero itself).
func (n Numeral) Valid() bool {
	switch {
	case len(n) == 0:
		return false
	case len(n) == 1:
		return n[0] < Base
	case n[0] == 0:
		return false
	}
	//
	for _, d := range n {
		if d >= Base {
			return false
		}
	}
	//
	return true
}

// IsZero checks whether this numeral represents zero.
func (n Numeral) IsZero() bool {
	return len(n) == 1 && n[0] == 0
}

// Term returns the list of digit atoms representing this numeral.
func (n Numeral) Term() kanren.Term {
	var list = kanren.Nil
	//
	for i := len(n); i > 0; i-- {
		list = kanren.Cons(n[i-1].Term(), list)
	}
	//
	return list
}

// Big returns the value of this numeral as an arbitrary precision integer.
func (n Numeral) Big() *big.Int {
	var val big.Int
	//
	val.SetString(n.String(), Base)
	//
	return &val
}

func (n Numeral) String() string {
	var builder strings.Builder
	//
	for _, d := range n {
		builder.WriteByte('0' + byte(d))
	}
	//
	return builder.String()
}

// Num constructs the term representing a given machine integer.
func Num(n uint64) kanren.Term {
	return NumeralOf(n).Term()
}
