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
package arith

import (
	"context"
	"testing"

	"github.com/consensys/go-relexpr/pkg/expr"
	"github.com/consensys/go-relexpr/pkg/kanren"
	"github.com/google/go-cmp/cmp"
)

// Generous bound on the number of steps any single query in these tests can
// take, such that a diverging relation fails rather than hanging.
const maxSteps = 50_000_000

// ===================================================================
// Sum
// ===================================================================

func Test_Sum_01(t *testing.T) {
	checkBinary(t, Sum, 6, 3, 9)
}

func Test_Sum_02(t *testing.T) {
	checkBinary(t, Sum, 0, 728, 728)
}

func Test_Sum_03(t *testing.T) {
	checkBinary(t, Sum, 42, 101, 143)
}

func Test_Sum_04(t *testing.T) {
	checkBinary(t, Sum, 998, 2, 1000)
}

func Test_Sum_05(t *testing.T) {
	checkBinary(t, Sum, 193, 426, 619)
}

func Test_Sum_06(t *testing.T) {
	checkBinary(t, Sum, 2, 998, 1000)
}

func Test_Sum_07(t *testing.T) {
	checkBinary(t, Sum, 0, 0, 0)
}

func Test_Sum_08(t *testing.T) {
	checkBinary(t, Sum, 99999, 1, 100000)
}

func Test_Sum_09(t *testing.T) {
	// Well beyond the range of a machine word
	var (
		lhs, _ = expr.ParseNumeral("99999999999999999999999999")
		rhs, _ = expr.ParseNumeral("1")
		sum, _ = expr.ParseNumeral("100000000000000000000000000")
	)
	//
	checkNumerals(t, solveBinary(t, Sum, lhs.Term(), rhs.Term()), sum)
}

func Test_Sum_10(t *testing.T) {
	// Malformed operands
	checkNoSolution(t, Sum, kanren.List(zeroDigit, oneDigit), expr.Num(1))
	checkNoSolution(t, Sum, expr.Num(1), expr.True)
	checkNoSolution(t, Sum, kanren.Nil, kanren.Nil)
}

func Test_Sum_11(t *testing.T) {
	// Empty list counts as zero
	checkNumerals(t, solveBinary(t, Sum, kanren.Nil, expr.Num(1)), expr.NumeralOf(1))
}

func Test_Sum_Commutative(t *testing.T) {
	for l := uint64(0); l <= 25; l++ {
		for r := uint64(0); r <= 25; r++ {
			checkBinary(t, Sum, l, r, l+r)
			checkBinary(t, Sum, r, l, l+r)
		}
	}
}

func Test_Sum_Associative(t *testing.T) {
	for a := uint64(0); a <= 6; a++ {
		for b := uint64(0); b <= 6; b++ {
			for c := uint64(0); c <= 6; c++ {
				var (
					x, y, z, w = kanren.NewVar("x"), kanren.NewVar("y"), kanren.NewVar("z"), kanren.NewVar("w")
					goal       = kanren.Conj(
						Sum(expr.Num(a), expr.Num(b), x), Sum(x, expr.Num(c), y),
						Sum(expr.Num(b), expr.Num(c), z), Sum(expr.Num(a), z, w))
				)
				//
				solutions := solve(t, goal, y, w)
				if len(solutions) != 1 {
					t.Fatalf("expected one solution, got %d", len(solutions))
				} else if vals := solutions[0].Values(); vals[0].String() != vals[1].String() {
					t.Errorf("(%d+%d)+%d gave %s, but %d+(%d+%d) gave %s", a, b, c, vals[0], a, b, c, vals[1])
				}
			}
		}
	}
}

// ===================================================================
// Minus
// ===================================================================

func Test_Minus_01(t *testing.T) {
	checkBinary(t, Minus, 7, 3, 4)
}

func Test_Minus_02(t *testing.T) {
	checkBinary(t, Minus, 42, 0, 42)
}

func Test_Minus_03(t *testing.T) {
	checkNoSolution(t, Minus, expr.Num(2), expr.Num(4))
}

func Test_Minus_04(t *testing.T) {
	checkBinary(t, Minus, 100, 10, 90)
}

func Test_Minus_05(t *testing.T) {
	checkBinary(t, Minus, 31, 24, 7)
}

func Test_Minus_06(t *testing.T) {
	checkBinary(t, Minus, 9, 9, 0)
}

func Test_Minus_Inverse(t *testing.T) {
	for a := uint64(0); a <= 12; a++ {
		for b := uint64(0); b <= 12; b++ {
			if b > a {
				checkNoSolution(t, Minus, expr.Num(a), expr.Num(b))
				continue
			}
			//
			var (
				d, s = kanren.NewVar("d"), kanren.NewVar("s")
				goal = kanren.Conj(Minus(expr.Num(a), expr.Num(b), d), Sum(d, expr.Num(b), s))
			)
			//
			checkNumerals(t, numerals(t, solve(t, goal, s)), expr.NumeralOf(a))
		}
	}
}

// ===================================================================
// Prod
// ===================================================================

func Test_Prod_01(t *testing.T) {
	checkBinary(t, Prod, 9, 9, 81)
}

func Test_Prod_02(t *testing.T) {
	checkBinary(t, Prod, 1000, 0, 0)
}

func Test_Prod_03(t *testing.T) {
	checkBinary(t, Prod, 123, 11, 1353)
}

func Test_Prod_04(t *testing.T) {
	checkBinary(t, Prod, 0, 7, 0)
}

func Test_Prod_Both(t *testing.T) {
	for a := uint64(0); a <= 8; a++ {
		for b := uint64(0); b <= 8; b++ {
			checkBinary(t, Prod, a, b, a*b)
			checkBinary(t, Prod, b, a, a*b)
		}
	}
}

// ===================================================================
// Div
// ===================================================================

func Test_Div_01(t *testing.T) {
	checkBinary(t, Div, 24, 6, 4)
}

func Test_Div_02(t *testing.T) {
	checkBinary(t, Div, 13, 2, 6)
}

func Test_Div_03(t *testing.T) {
	checkBinary(t, Div, 32, 12, 2)
}

func Test_Div_04(t *testing.T) {
	checkBinary(t, Div, 3, 5, 0)
}

func Test_Div_05(t *testing.T) {
	checkBinary(t, Div, 0, 5, 0)
}

func Test_Div_06(t *testing.T) {
	// Division by zero fails outright, rather than searching forever.
	var (
		q      = kanren.NewVar("q")
		solver = kanren.NewSolver(kanren.Config{MaxSteps: 1000})
	)
	//
	solutions, err := solver.Run(context.Background(), 0, Div(expr.Num(5), expr.Num(0), q), q)
	if err != nil {
		t.Fatal(err)
	} else if len(solutions) != 0 {
		t.Errorf("expected no solutions, got %s", solutions)
	}
}

func Test_Div_Floor(t *testing.T) {
	for a := uint64(0); a <= 12; a++ {
		for b := uint64(1); b <= 4; b++ {
			checkBinary(t, Div, a, b, a/b)
		}
	}
}

// ===================================================================
// Orderings
// ===================================================================

func Test_Eq_01(t *testing.T) {
	checkHolds(t, Eq, 12, 12, true)
	checkHolds(t, Eq, 12, 10, false)
}

func Test_Neq_01(t *testing.T) {
	checkHolds(t, Neq, 12, 10, true)
	checkHolds(t, Neq, 12, 120, true)
	checkHolds(t, Neq, 120, 12, true)
	checkHolds(t, Neq, 12, 12, false)
}

func Test_Lt_01(t *testing.T) {
	checkHolds(t, Lt, 9, 56, true)
	checkHolds(t, Lt, 107, 74, false)
	checkHolds(t, Lt, 19, 19, false)
}

func Test_Loet_01(t *testing.T) {
	checkHolds(t, Loet, 9, 56, true)
	checkHolds(t, Loet, 107, 74, false)
	checkHolds(t, Loet, 19, 19, true)
}

func Test_Gt_01(t *testing.T) {
	checkHolds(t, Gt, 56, 9, true)
	checkHolds(t, Gt, 74, 107, false)
	checkHolds(t, Gt, 19, 19, false)
}

func Test_Goet_01(t *testing.T) {
	checkHolds(t, Goet, 56, 9, true)
	checkHolds(t, Goet, 74, 107, false)
	checkHolds(t, Goet, 19, 19, true)
}

func Test_Order_All(t *testing.T) {
	for a := uint64(0); a <= 15; a++ {
		for b := uint64(0); b <= 15; b++ {
			checkHolds(t, Eq, a, b, a == b)
			checkHolds(t, Neq, a, b, a != b)
			checkHolds(t, Lt, a, b, a < b)
			checkHolds(t, Loet, a, b, a <= b)
			checkHolds(t, Gt, a, b, a > b)
			checkHolds(t, Goet, a, b, a >= b)
		}
	}
}

func Test_Lt_Malformed(t *testing.T) {
	var goal = Lt(kanren.List(zeroDigit, zeroDigit), expr.Num(3))
	//
	if solutions := solve(t, goal); len(solutions) != 0 {
		t.Errorf("expected no solutions, got %d", len(solutions))
	}
}

// ===================================================================
// Digits and lists
// ===================================================================

func Test_DigitSum_01(t *testing.T) {
	for x := 0; x < expr.Base; x++ {
		for y := 0; y < expr.Base; y++ {
			var (
				sum, carry = kanren.NewVar("sum"), kanren.NewVar("carry")
				goal       = DigitSum(expr.Digit(x).Term(), expr.Digit(y).Term(), sum, carry)
				solutions  = solve(t, goal, sum, carry)
				expected   = []expr.Digit{expr.Digit((x + y) % 10), expr.Digit((x + y) / 10)}
			)
			//
			if len(solutions) != 1 {
				t.Fatalf("expected one solution for %d+%d, got %d", x, y, len(solutions))
			} else if !cmp.Equal(digits(solutions[0]), expected) {
				t.Errorf("%d+%d gave %s", x, y, solutions[0])
			}
		}
	}
}

func Test_DigitSum_02(t *testing.T) {
	// Backwards: which digits sum to 13?
	var (
		x, y      = kanren.NewVar("x"), kanren.NewVar("y")
		goal      = DigitSum(x, y, expr.Digit(3).Term(), oneDigit)
		solutions = solve(t, goal, x, y)
	)
	//
	if len(solutions) != 6 {
		t.Fatalf("expected 6 solutions, got %d", len(solutions))
	}
	//
	for _, s := range solutions {
		l, _ := expr.ToDigit(s.Values()[0])
		r, _ := expr.ToDigit(s.Values()[1])
		//
		if l+r != 13 {
			t.Errorf("unexpected solution %s", s)
		}
	}
}

func Test_DigitSum_03(t *testing.T) {
	var sum, carry = kanren.NewVar("sum"), kanren.NewVar("carry")
	//
	if solutions := solve(t, DigitSum(expr.True, oneDigit, sum, carry), sum); len(solutions) != 0 {
		t.Errorf("expected no solutions, got %d", len(solutions))
	}
}

func Test_DigitNeq_01(t *testing.T) {
	var x, y = kanren.NewVar("x"), kanren.NewVar("y")
	//
	if solutions := solve(t, DigitNeq(x, y), x, y); len(solutions) != 90 {
		t.Errorf("expected 90 solutions, got %d", len(solutions))
	}
	//
	if solutions := solve(t, DigitNeq(x, oneDigit), x); len(solutions) != 9 {
		t.Errorf("expected 9 solutions, got %d", len(solutions))
	}
}

func Test_IsDigit_01(t *testing.T) {
	var x = kanren.NewVar("x")
	//
	if solutions := solve(t, IsDigit(x), x); len(solutions) != 10 {
		t.Errorf("expected 10 solutions, got %d", len(solutions))
	}
	//
	checkGoal(t, IsDigit(oneDigit), true)
	checkGoal(t, IsDigit(expr.False), false)
	checkGoal(t, IsDigit(expr.Num(1)), false)
}

func Test_IsNumeral_01(t *testing.T) {
	checkGoal(t, IsNumeral(expr.Num(0)), true)
	checkGoal(t, IsNumeral(expr.Num(50)), true)
	checkGoal(t, IsNumeral(expr.Num(1234567890)), true)
	checkGoal(t, IsNumeral(kanren.List(zeroDigit, oneDigit)), false)
	checkGoal(t, IsNumeral(kanren.List(zeroDigit, zeroDigit)), false)
	checkGoal(t, IsNumeral(kanren.Nil), false)
	checkGoal(t, IsNumeral(expr.True), false)
	checkGoal(t, IsNumeral(kanren.List(oneDigit, expr.True)), false)
}

func Test_Reverse_01(t *testing.T) {
	var (
		r         = kanren.NewVar("r")
		solutions = solve(t, Reverse(expr.Num(1234), r), r)
	)
	//
	checkNumerals(t, numerals(t, solutions), expr.Numeral{4, 3, 2, 1})
}

func Test_Reverse_02(t *testing.T) {
	var r = kanren.NewVar("r")
	//
	if solutions := solve(t, Reverse(kanren.Nil, r), r); len(solutions) != 1 || solutions[0].Values()[0] != kanren.Nil {
		t.Errorf("expected the empty list, got %s", solutions)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

type binaryRelation func(kanren.Term, kanren.Term, kanren.Term) kanren.Goal

type predicate func(kanren.Term, kanren.Term) kanren.Goal

func checkBinary(t *testing.T, rel binaryRelation, lhs, rhs, expected uint64) {
	t.Helper()
	//
	checkNumerals(t, solveBinary(t, rel, expr.Num(lhs), expr.Num(rhs)), expr.NumeralOf(expected))
}

func checkNoSolution(t *testing.T, rel binaryRelation, lhs, rhs kanren.Term) {
	t.Helper()
	//
	if results := solveBinary(t, rel, lhs, rhs); len(results) != 0 {
		t.Errorf("expected no solutions for %s and %s, got %v", lhs, rhs, results)
	}
}

func checkHolds(t *testing.T, pred predicate, lhs, rhs uint64, expected bool) {
	t.Helper()
	//
	checkGoal(t, pred(expr.Num(lhs), expr.Num(rhs)), expected)
}

// Check a goal holds exactly once, or not at all.
func checkGoal(t *testing.T, goal kanren.Goal, expected bool) {
	t.Helper()
	//
	solutions := solve(t, goal)
	//
	switch {
	case expected && len(solutions) != 1:
		t.Errorf("expected exactly one solution, got %d", len(solutions))
	case !expected && len(solutions) != 0:
		t.Errorf("expected no solutions, got %d", len(solutions))
	}
}

// Check the only solution of a relation is the expected numeral.
func checkNumerals(t *testing.T, actual []expr.Numeral, expected expr.Numeral) {
	t.Helper()
	//
	if diff := cmp.Diff([]expr.Numeral{expected}, actual); diff != "" {
		t.Errorf("unexpected solutions (-want +got):\n%s", diff)
	}
}

func solveBinary(t *testing.T, rel binaryRelation, lhs, rhs kanren.Term) []expr.Numeral {
	t.Helper()
	//
	var out = kanren.NewVar("out")
	//
	return numerals(t, solve(t, rel(lhs, rhs, out), out))
}

func solve(t *testing.T, goal kanren.Goal, vars ...kanren.Var) []kanren.Solution {
	t.Helper()
	//
	solver := kanren.NewSolver(kanren.Config{MaxSteps: maxSteps})
	//
	solutions, err := solver.Run(context.Background(), 0, goal, vars...)
	if err != nil {
		t.Fatal(err)
	}
	//
	return solutions
}

func digits(solution kanren.Solution) []expr.Digit {
	var ds []expr.Digit
	//
	for _, v := range solution.Values() {
		if d, ok := expr.ToDigit(v); ok {
			ds = append(ds, d)
		}
	}
	//
	return ds
}

// Decode the first variable of each solution as a numeral.
func numerals(t *testing.T, solutions []kanren.Solution) []expr.Numeral {
	t.Helper()
	//
	var results []expr.Numeral
	//
	for _, s := range solutions {
		n, ok := expr.ToNumeral(s.Values()[0])
		if !ok {
			t.Fatalf("solution %s is not a numeral", s)
		}
		//
		results = append(results, n)
	}
	//
	return results
}
