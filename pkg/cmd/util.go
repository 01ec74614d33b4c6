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
	"fmt"
	"os"

	"github.com/consensys/go-relexpr/pkg/eval"
	"github.com/consensys/go-relexpr/pkg/expr"
	"github.com/consensys/go-relexpr/pkg/kanren"
	"github.com/consensys/go-relexpr/pkg/metrics"
	"github.com/consensys/go-relexpr/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected unsigned integer, or panic if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string, or panic if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string array, or panic if an error arises.
func getStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Construct an evaluator with a given step limit.  Metrics are only collected
// when a metrics file was requested, otherwise they are nil.
func newEvaluator(cmd *cobra.Command, maxSteps uint) (*eval.Evaluator, *metrics.Metrics) {
	var (
		m      *metrics.Metrics
		config = eval.Config{Search: kanren.Config{MaxSteps: maxSteps}}
	)
	//
	if getString(cmd, "metrics") != "" {
		m = metrics.New()
	}
	//
	return eval.New(config, eval.WithMetrics(m)), m
}

// Write collected metrics (if any) to the requested metrics file.
func writeMetrics(cmd *cobra.Command, m *metrics.Metrics) {
	filename := getString(cmd, "metrics")
	//
	if filename == "" {
		return
	} else if err := m.WriteTextfile(filename); err != nil {
		log.Errorf("writing metrics: %v", err)
		os.Exit(2)
	}
	//
	log.Debugf("wrote metrics to %s", filename)
}

// Determine whether or not ANSI escapes should be used when writing to stdout.
func useAnsiEscapes(cmd *cobra.Command) bool {
	return getFlag(cmd, "ansi-escapes") && termio.IsTerminal(os.Stdout)
}

// Parse an operand given on the command-line, which is either a boolean
// constant or a natural number.
func parseOperand(text string) (kanren.Term, error) {
	switch text {
	case "true":
		return expr.True, nil
	case "false":
		return expr.False, nil
	}
	//
	n, err := expr.ParseNumeral(text)
	if err != nil {
		return nil, fmt.Errorf("operand %q: %w", text, err)
	}
	//
	return n.Term(), nil
}
