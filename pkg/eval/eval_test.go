// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// htp://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package eval

import (
	"context"
	"errors"
	"testing"

	"github.com/consensys/go-relexpr/pkg/expr"
	"github.com/consensys/go-relexpr/pkg/kanren"
	"github.com/consensys/go-relexpr/pkg/metrics"
	"github.com/consensys/go-relexpr/pkg/oracle"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	T = expr.True
	F = expr.False
	n = expr.Num
)

// ===================================================================
// Eval
// ===================================================================

func Test_Eval_01(t *testing.T) {
	checkEval(t, n(42), n(42))
	checkEval(t, T, T)
	checkEval(t, F, F)
}

func Test_Eval_02(t *testing.T) {
	// (10*(10-2)) + (14/11)
	input := expr.Add(expr.Multiply(n(10), expr.Subtract(n(10), n(2))), expr.Divide(n(14), n(11)))
	checkEval(t, input, n(81))
}

func Test_Eval_03(t *testing.T) {
	// 100 - (7*(3+4))
	input := expr.Subtract(n(100), expr.Multiply(n(7), expr.Add(n(3), n(4))))
	checkEval(t, input, n(51))
}

func Test_Eval_04(t *testing.T) {
	// T ⇒ ((¬F) ∨ (F ∧ T))
	input := expr.Implies(T, expr.Or(expr.Not(F), expr.And(F, T)))
	checkEval(t, input, T)
}

func Test_Eval_05(t *testing.T) {
	// (¬¬F) ∨ ((T ∧ T) ⇒ F)
	input := expr.Or(expr.Not(expr.Not(F)), expr.Implies(expr.And(T, T), F))
	checkEval(t, input, F)
}

func Test_Eval_06(t *testing.T) {
	// T ∧ ((20+2) < (27-4))
	input := expr.And(T, expr.LessThan(expr.Add(n(20), n(2)), expr.Subtract(n(27), n(4))))
	checkEval(t, input, T)
}

func Test_Eval_07(t *testing.T) {
	// (F ∨ (26 ≠ 269)) ⇒ ((30-15) ≥ 16)
	input := expr.Implies(
		expr.Or(F, expr.NotEqual(n(26), n(269))),
		expr.GreaterEqual(expr.Subtract(n(30), n(15)), n(16)))
	checkEval(t, input, F)
}

func Test_Eval_08(t *testing.T) {
	checkEval(t, expr.Add(n(193), n(426)), n(619))
	checkEval(t, expr.Subtract(n(7), n(3)), n(4))
	checkEval(t, expr.Multiply(n(123), n(11)), n(1353))
	checkEval(t, expr.Divide(n(32), n(12)), n(2))
}

func Test_Eval_09(t *testing.T) {
	// Undefined operations
	checkNoValue(t, expr.Subtract(n(2), n(4)))
	checkNoValue(t, expr.Divide(n(5), n(0)))
	checkNoValue(t, expr.Add(n(1), expr.Subtract(n(2), n(4))))
}

func Test_Eval_10(t *testing.T) {
	// Ill-typed operations
	checkNoValue(t, expr.Add(T, n(1)))
	checkNoValue(t, expr.Not(n(1)))
	checkNoValue(t, expr.Equal(T, T))
	checkNoValue(t, expr.And(T, expr.Add(n(1), n(1))))
	checkNoValue(t, expr.LessThan(expr.Equal(n(1), n(1)), n(2)))
}

func Test_Eval_11(t *testing.T) {
	// Malformed records
	checkNoValue(t, expr.Binary(kanren.NewAtom("%"), n(1), n(2)))
	checkNoValue(t, expr.Unary(expr.PLUS.Term(), n(1)))
	checkNoValue(t, expr.Binary(expr.NOT.Term(), T, F))
	checkNoValue(t, kanren.NewMap(map[string]kanren.Term{expr.KEY_OP: expr.PLUS.Term(), expr.KEY_LHS: n(1)}))
	checkNoValue(t, kanren.List(expr.Digit(0).Term(), expr.Digit(7).Term()))
	checkNoValue(t, kanren.NewAtom("hello"))
}

func Test_Eval_12(t *testing.T) {
	// Comparisons of arithmetic, all the way down
	for a := uint64(0); a <= 6; a++ {
		for b := uint64(0); b <= 6; b++ {
			var (
				lhs = expr.Add(n(a), n(1))
				rhs = expr.Multiply(n(b), n(1))
			)
			//
			checkEval(t, expr.LessEqual(lhs, rhs), expr.Bool(a+1 <= b))
			checkEval(t, expr.Not(expr.GreaterThan(lhs, rhs)), expr.Bool(a+1 <= b))
		}
	}
}

func Test_Eval_Oracle(t *testing.T) {
	var evaluator = New(Config{})
	// Every binary operator over small numerals and both booleans
	operands := []kanren.Term{n(0), n(1), n(2), n(5), n(9), n(10), T, F}
	//
	for _, class := range []expr.Class{expr.ARITHMETIC, expr.LOGIC, expr.COMPARISON} {
		for _, op := range expr.Operators[class] {
			for _, lhs := range operands {
				for _, rhs := range operands {
					input, _ := expr.Apply(op, lhs, rhs)
					//
					if op.Arity() == 1 {
						input, _ = expr.Apply(op, lhs)
					}
					//
					checkOracle(t, evaluator, input)
				}
			}
		}
	}
}

// ===================================================================
// Evaluator
// ===================================================================

func Test_Evaluator_01(t *testing.T) {
	// Step limit
	evaluator := New(Config{Search: kanren.Config{MaxSteps: 10}})
	//
	_, err := evaluator.Evaluate(context.Background(), expr.Multiply(n(123), n(11)))
	if !errors.Is(err, kanren.ErrStepLimit) {
		t.Errorf("expected step limit error, got %v", err)
	}
}

func Test_Evaluator_02(t *testing.T) {
	// Cancellation
	var (
		evaluator   = New(Config{Search: kanren.Config{PollInterval: 1}})
		ctx, cancel = context.WithCancel(context.Background())
	)
	//
	cancel()
	//
	_, err := evaluator.Evaluate(ctx, expr.Multiply(n(123), n(11)))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancellation error, got %v", err)
	}
}

func Test_Evaluator_03(t *testing.T) {
	evaluator := New(Config{})
	//
	_, err := evaluator.Evaluate(context.Background(), expr.Subtract(n(2), n(4)))
	if !errors.Is(err, ErrNoSolution) {
		t.Errorf("expected no solution, got %v", err)
	}
}

func Test_Evaluator_04(t *testing.T) {
	evaluator := New(Config{MaxResults: 1})
	//
	values, err := evaluator.EvaluateAll(context.Background(), expr.Add(n(998), n(2)))
	if err != nil {
		t.Fatal(err)
	} else if len(values) != 1 || values[0].String() != n(1000).String() {
		t.Errorf("unexpected values %v", values)
	}
}

func Test_Evaluator_05(t *testing.T) {
	var (
		m         = metrics.New()
		evaluator = New(Config{}, WithMetrics(m))
		ctx       = context.Background()
	)
	//
	_, _ = evaluator.Evaluate(ctx, expr.Add(n(1), n(2)))
	_, _ = evaluator.Evaluate(ctx, expr.Subtract(n(1), n(2)))
	//
	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatal(err)
	}
	//
	var outcomes = make(map[string]float64)
	//
	for _, family := range families {
		if family.GetName() != "relexpr_evaluations_total" {
			continue
		}
		//
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "outcome" {
					outcomes[label.GetValue()] += metric.GetCounter().GetValue()
				}
			}
		}
	}
	//
	if outcomes[metrics.OUTCOME_VALUE] != 1 || outcomes[metrics.OUTCOME_NONE] != 1 {
		t.Errorf("unexpected outcomes %v", outcomes)
	}
}

// ===================================================================
// Stream
// ===================================================================

func Test_Stream_01(t *testing.T) {
	defer goleak.VerifyNone(t)
	//
	var (
		evaluator = New(Config{})
		input     = expr.Add(expr.Multiply(n(10), expr.Subtract(n(10), n(2))), expr.Divide(n(14), n(11)))
		results   []Result
	)
	//
	for r := range evaluator.Stream(context.Background(), input) {
		results = append(results, r)
	}
	//
	if len(results) != 1 || results[0].Err != nil || results[0].Value.String() != n(81).String() {
		t.Errorf("unexpected results %v", results)
	}
}

func Test_Stream_02(t *testing.T) {
	defer goleak.VerifyNone(t)
	// Consumer walks away without reading anything
	var (
		evaluator   = New(Config{})
		ctx, cancel = context.WithCancel(context.Background())
		results     = evaluator.Stream(ctx, expr.Multiply(n(123), n(11)))
	)
	//
	cancel()
	//
	for range results {
	}
}

func Test_Stream_03(t *testing.T) {
	defer goleak.VerifyNone(t)
	//
	var (
		evaluator = New(Config{Search: kanren.Config{MaxSteps: 10}})
		results   []Result
	)
	//
	for r := range evaluator.Stream(context.Background(), expr.Multiply(n(123), n(11))) {
		results = append(results, r)
	}
	//
	if len(results) != 1 || !errors.Is(results[0].Err, kanren.ErrStepLimit) {
		t.Errorf("unexpected results %v", results)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkEval(t *testing.T, input kanren.Term, expected kanren.Term) {
	t.Helper()
	//
	values, err := New(Config{}).EvaluateAll(context.Background(), input)
	//
	if err != nil {
		t.Fatal(err)
	} else if len(values) != 1 {
		t.Fatalf("expected exactly one value for %s, got %v", expr.Format(input), values)
	} else if values[0].String() != expected.String() {
		t.Errorf("expected %s to give %s, got %s", expr.Format(input), expr.Format(expected),
			expr.Format(values[0]))
	}
}

func checkOracle(t *testing.T, evaluator *Evaluator, input kanren.Term) {
	t.Helper()
	//
	values, err := evaluator.EvaluateAll(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}
	//
	expected, ok := oracle.Eval(input)
	//
	switch {
	case !ok && len(values) != 0:
		t.Errorf("expected no values for %s, got %v", expr.Format(input), values)
	case ok && len(values) != 1:
		t.Errorf("expected %s to give %s, got %v", expr.Format(input), expr.Format(expected), values)
	case ok && values[0].String() != expected.String():
		t.Errorf("expected %s to give %s, got %s", expr.Format(input), expr.Format(expected),
			expr.Format(values[0]))
	}
}

func checkNoValue(t *testing.T, input kanren.Term) {
	t.Helper()
	//
	values, err := New(Config{}).EvaluateAll(context.Background(), input)
	//
	if err != nil {
		t.Fatal(err)
	} else if len(values) != 0 {
		t.Errorf("expected no values for %s, got %v", expr.Format(input), values)
	}
}
