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

	"github.com/consensys/go-relexpr/pkg/eval"
	"github.com/consensys/go-relexpr/pkg/expr"
	"github.com/consensys/go-relexpr/pkg/kanren"
	"github.com/consensys/go-relexpr/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// EXPECT_NONE is the expected value of a scenario whose expression has no
// value.
const EXPECT_NONE = "none"

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] scenario_file",
	Short: "Evaluate a file of scenarios, checking each has its expected value.",
	Long: `Evaluate a file of scenarios, checking each has its expected value.
	Scenario files are YAML documents holding a list of scenarios, each with a
	name, an expression and the expected value (or "none" when the expression
	should have no value).  An optional limits block overrides the maximum
	number of search steps.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		file, err := readScenarioFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		maxSteps := getUint(cmd, "max-steps")
		// Scenario files can override the default limit
		if file.Limits.MaxSteps != 0 && !cmd.Flags().Changed("max-steps") {
			maxSteps = file.Limits.MaxSteps
		}
		//
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		evaluator, m := newEvaluator(cmd, maxSteps)
		outcomes, err := runScenarios(ctx, evaluator, file.Scenarios)
		//
		cancel()
		writeMetrics(cmd, m)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if failures := printOutcomes(outcomes, useAnsiEscapes(cmd)); failures > 0 {
			log.Errorf("%d of %d scenario(s) failed", failures, len(outcomes))
			os.Exit(1)
		}
	},
}

// scenarioFile is the contents of a scenario file.
type scenarioFile struct {
	Limits struct {
		MaxSteps uint `yaml:"max-steps"`
	} `yaml:"limits"`
	Scenarios []scenario `yaml:"scenarios"`
}

// scenario is a single expression with its expected value.  Expressions (and
// values) are kept as YAML nodes until run, such that decoding errors can be
// reported against their position in the file.
type scenario struct {
	Name   string    `yaml:"name"`
	Expr   yaml.Node `yaml:"expr"`
	Expect yaml.Node `yaml:"expect"`
}

// outcome is the result of running a single scenario.
type outcome struct {
	name     string
	input    string
	expected string
	actual   string
	passed   bool
}

func readScenarioFile(filename string) (*scenarioFile, error) {
	var file scenarioFile
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	} else if err = yaml.Unmarshal(bytes, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	for i, s := range file.Scenarios {
		if s.Name == "" {
			file.Scenarios[i].Name = fmt.Sprintf("#%d", i+1)
		}
	}
	//
	return &file, nil
}

// Run every scenario in turn.  An error is only returned for a scenario which
// is malformed, or when the context is cancelled.
func runScenarios(ctx context.Context, evaluator *eval.Evaluator, scenarios []scenario) ([]outcome, error) {
	var outcomes []outcome
	//
	for _, s := range scenarios {
		o, err := runScenario(ctx, evaluator, s)
		//
		if err != nil {
			return outcomes, fmt.Errorf("scenario %s: %w", s.Name, err)
		} else if err = ctx.Err(); err != nil {
			return outcomes, err
		}
		//
		log.Debugf("scenario %s: %s", s.Name, o.actual)
		//
		outcomes = append(outcomes, o)
	}
	//
	return outcomes, nil
}

func runScenario(ctx context.Context, evaluator *eval.Evaluator, s scenario) (outcome, error) {
	var expected kanren.Term
	//
	input, err := expr.DecodeYAML(&s.Expr)
	if err != nil {
		return outcome{}, err
	}
	//
	if s.Expect.Kind != yaml.ScalarNode || s.Expect.Value != EXPECT_NONE {
		if expected, err = expr.DecodeYAML(&s.Expect); err != nil {
			return outcome{}, err
		}
	}
	//
	var (
		value, verr = evaluator.Evaluate(ctx, input)
		o           = outcome{name: s.Name, input: expr.Format(input), expected: EXPECT_NONE}
	)
	//
	if expected != nil {
		o.expected = expr.Format(expected)
	}
	//
	switch {
	case errors.Is(verr, eval.ErrNoSolution):
		o.actual = EXPECT_NONE
		o.passed = expected == nil
	case verr != nil:
		o.actual = verr.Error()
	default:
		o.actual = expr.Format(value)
		o.passed = expected != nil && value.String() == expected.String()
	}
	//
	return o, nil
}

// Print outcomes as a table, returning the number of failures.
func printOutcomes(outcomes []outcome, escapes bool) uint {
	var (
		failures uint
		tp       = termio.NewTablePrinter(5, uint(len(outcomes)+1))
		pass     = termio.NewAnsiEscape().FgColour(termio.TERM_GREEN)
		fail     = termio.NewAnsiEscape().FgColour(termio.TERM_RED)
	)
	//
	tp.SetRow(0, "", "scenario", "expression", "expected", "actual")
	//
	for i, o := range outcomes {
		row := uint(i + 1)
		//
		if o.passed {
			tp.SetRow(row, "PASS", o.name, o.input, o.expected, o.actual)
			tp.SetEscape(0, row, pass)
		} else {
			tp.SetRow(row, "FAIL", o.name, o.input, o.expected, o.actual)
			tp.SetEscape(0, row, fail)
			//
			failures++
		}
	}
	//
	tp.SetMaxWidths(termio.Width(os.Stdout) / 3)
	tp.AnsiEscapes(escapes)
	tp.Print(os.Stdout)
	//
	return failures
}

func init() {
	rootCmd.AddCommand(runCmd)
}
