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
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"

	"github.com/consensys/go-relexpr/pkg/eval"
	"github.com/consensys/go-relexpr/pkg/expr"
	"github.com/consensys/go-relexpr/pkg/kanren"
	"github.com/consensys/go-relexpr/pkg/oracle"
	"github.com/consensys/go-relexpr/pkg/util"
	"github.com/consensys/go-relexpr/pkg/util/collection/iter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags]",
	Short: "Check operators exhaustively over small operands.",
	Long: `Check operators exhaustively over small operands.
	Every operation on the natural numbers 0..max (and the booleans) is evaluated
	and compared against a direct computation of its value.  Ill-typed or
	undefined operations (e.g. 1 - 2) must have no value.`,
	Run: func(cmd *cobra.Command, args []string) {
		var ops []expr.Operator
		//
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		for _, name := range getStringArray(cmd, "ops") {
			op, err := expr.LookupOperator(name)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			ops = append(ops, op)
		}
		// Default to all operators
		if len(ops) == 0 {
			for _, class := range []expr.Class{expr.ARITHMETIC, expr.LOGIC, expr.COMPARISON} {
				ops = append(ops, expr.Operators[class]...)
			}
		}
		//
		var (
			ctx, cancel  = signal.NotifyContext(context.Background(), os.Interrupt)
			evaluator, m = newEvaluator(cmd, getUint(cmd, "max-steps"))
			operands     = checkOperands(getUint(cmd, "max"))
			workers      = max(1, getUint(cmd, "workers"))
			failures     uint64
		)
		//
		for _, op := range ops {
			stats := util.NewPerfStats()
			checked, failed, err := checkOperator(ctx, evaluator, op, operands, workers)
			//
			log.Debugf("checking %s took %s", op, stats.Elapsed())
			//
			if err != nil {
				cancel()
				log.Error(err)
				os.Exit(2)
			}
			//
			log.Infof("checked %d operation(s) with %s, %d failure(s)", checked, op, failed)
			//
			failures += failed
		}
		//
		cancel()
		writeMetrics(cmd, m)
		//
		if failures > 0 {
			os.Exit(1)
		}
	},
}

// Construct the operands to check against, namely the natural numbers upto
// (and including) a given bound followed by the booleans.
func checkOperands(n uint) []kanren.Term {
	var operands []kanren.Term
	//
	for i := uint64(0); i <= uint64(n); i++ {
		operands = append(operands, expr.Num(i))
	}
	//
	return append(operands, expr.True, expr.False)
}

// Check every application of an operator to the given operands, using a given
// number of workers.  This returns the number of operations checked, and how
// many of those failed.  An error is only returned when checking is cut short.
func checkOperator(ctx context.Context, evaluator *eval.Evaluator, op expr.Operator, operands []kanren.Term,
	workers uint) (uint64, uint64, error) {
	var (
		checked, failed atomic.Uint64
		group, gctx     = errgroup.WithContext(ctx)
	)
	//
	group.SetLimit(int(workers))
	//
	for tuples := iter.EnumerateElements(op.Arity(), operands); tuples.HasNext(); {
		args := tuples.Next()
		//
		group.Go(func() error {
			ok, err := checkOperation(gctx, evaluator, op, args)
			//
			if err != nil {
				return err
			}
			//
			checked.Add(1)
			//
			if !ok {
				failed.Add(1)
			}
			//
			return nil
		})
	}
	//
	err := group.Wait()
	//
	return checked.Load(), failed.Load(), err
}

// Check a single operation, logging any mismatch found.
func checkOperation(ctx context.Context, evaluator *eval.Evaluator, op expr.Operator, args []kanren.Term) (bool,
	error) {
	var (
		input, _     = expr.Apply(op, args...)
		expected, ok = oracle.Apply(op, args...)
		actual, err  = evaluator.Evaluate(ctx, input)
	)
	//
	switch {
	case ctx.Err() != nil:
		return false, ctx.Err()
	case !ok && errors.Is(err, eval.ErrNoSolution):
		return true, nil
	case !ok && err == nil:
		log.Errorf("%s = %s, but expected no value", expr.Format(input), expr.Format(actual))
	case !ok:
		log.Errorf("%s: %v, but expected no value", expr.Format(input), err)
	case err != nil:
		log.Errorf("%s: %v, but expected %s", expr.Format(input), err, expr.Format(expected))
	case actual.String() != expected.String():
		log.Errorf("%s = %s, but expected %s", expr.Format(input), expr.Format(actual), expr.Format(expected))
	default:
		return true, nil
	}
	//
	return false, nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Uint("max", 10, "largest natural number to check with")
	checkCmd.Flags().StringArray("ops", nil, "operators to check (defaults to all)")
	checkCmd.Flags().Uint("workers", uint(runtime.NumCPU()), "number of operations to check in parallel")
}
