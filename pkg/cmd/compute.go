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
	"fmt"
	"os"
	"os/signal"

	"github.com/consensys/go-relexpr/pkg/eval"
	"github.com/consensys/go-relexpr/pkg/expr"
	"github.com/consensys/go-relexpr/pkg/kanren"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// computeCmd represents the compute command
var computeCmd = &cobra.Command{
	Use:   "compute [flags] operator lhs [rhs]",
	Short: "Evaluate a single operation on literal operands.",
	Long: `Evaluate a single operation on literal operands.
	Operators are given by symbol (e.g. "+" or "<=") or by name (e.g. "add" or
	"le"), whilst operands are either natural numbers or booleans.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 || len(args) > 3 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		op, err := expr.LookupOperator(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// Parse operands
		operands := make([]kanren.Term, len(args)-1)
		//
		for i, arg := range args[1:] {
			if operands[i], err = parseOperand(arg); err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
		}
		//
		input, ok := expr.Apply(op, operands...)
		if !ok {
			fmt.Printf("operator %s expects %d operand(s)\n", op, op.Arity())
			os.Exit(1)
		}
		//
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		evaluator, m := newEvaluator(cmd, getUint(cmd, "max-steps"))
		//
		if getFlag(cmd, "all") {
			err = computeAll(ctx, evaluator, input)
		} else {
			err = compute(ctx, evaluator, input)
		}
		//
		cancel()
		writeMetrics(cmd, m)
		//
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}

// Print the (unique) value of an expression.
func compute(ctx context.Context, evaluator *eval.Evaluator, input kanren.Term) error {
	value, err := evaluator.Evaluate(ctx, input)
	//
	if err != nil {
		return err
	}
	//
	fmt.Printf("%s = %s\n", expr.Format(input), expr.Format(value))
	//
	return nil
}

// Print every value of an expression as soon as it is found.
func computeAll(ctx context.Context, evaluator *eval.Evaluator, input kanren.Term) error {
	var count = 0
	//
	for result := range evaluator.Stream(ctx, input) {
		if result.Err != nil {
			return result.Err
		}
		//
		count++
		//
		fmt.Printf("%s = %s\n", expr.Format(input), expr.Format(result.Value))
	}
	//
	if err := ctx.Err(); err != nil {
		return err
	} else if count == 0 {
		return fmt.Errorf("evaluating %s: %w", expr.Format(input), eval.ErrNoSolution)
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(computeCmd)
	computeCmd.Flags().Bool("all", false, "report every value found, rather than insisting on exactly one")
}
