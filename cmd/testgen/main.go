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
package main

import (
	"bytes"
	"fmt"
	"os"
	"path"

	"github.com/consensys/go-relexpr/pkg/expr"
	"github.com/consensys/go-relexpr/pkg/kanren"
	"github.com/consensys/go-relexpr/pkg/oracle"
	"github.com/consensys/go-relexpr/pkg/util/collection/iter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint("min-elem", 0, "Minimum natural number")
	rootCmd.Flags().Uint("max-elem", 3, "Maximum natural number")
	rootCmd.Flags().Uint("depth", 1, "Maximum nesting of operations")
	rootCmd.Flags().String("dir", "testdata", "Directory to write scenario files into")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen [flags] model",
	Short: "Test generation utility for relexpr.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		var cfg TestGenConfig
		// Lookup model
		cfg.model = findModel(args[0])
		cfg.minElem = getUint(cmd, "min-elem")
		cfg.maxElem = getUint(cmd, "max-elem")
		cfg.depth = getUint(cmd, "depth")
		cfg.dir = getString(cmd, "dir")
		// Generate & write out
		writeTestScenarios(cfg, generateTestScenarios(cfg))
	},
}

// TestGenConfig encapsulates configuration related to test generation.
type TestGenConfig struct {
	model   Model
	minElem uint
	maxElem uint
	depth   uint
	dir     string
}

// Model determines which operators are used to generate scenarios.
type Model struct {
	// Name of the model in question
	Name string
	// Classes of operator to generate
	Classes []expr.Class
}

var models []Model = []Model{
	{"arithmetic", []expr.Class{expr.ARITHMETIC}},
	{"logic", []expr.Class{expr.LOGIC}},
	{"comparison", []expr.Class{expr.COMPARISON}},
	{"mixed", []expr.Class{expr.ARITHMETIC, expr.LOGIC, expr.COMPARISON}},
}

func findModel(name string) Model {
	for _, m := range models {
		if m.Name == name {
			return m
		}
	}
	//
	panic(fmt.Sprintf("unknown model \"%s\"", name))
}

// scenario mirrors the layout of scenario files read by "relexpr run".
type scenario struct {
	Name   string     `yaml:"name"`
	Expr   *yaml.Node `yaml:"expr"`
	Expect *yaml.Node `yaml:"expect"`
}

// Generate every expression upto the given depth, along with its expected
// value (according to the oracle).
func generateTestScenarios(cfg TestGenConfig) []scenario {
	var (
		leaves    = generatePool(cfg)
		previous  = leaves
		scenarios []scenario
	)
	//
	for d := uint(1); d <= cfg.depth; d++ {
		var (
			level    []kanren.Term
			operands = previous
		)
		// Nested operands can be combined with leaves
		if d > 1 {
			operands = append(append([]kanren.Term(nil), previous...), leaves...)
		}
		//
		for _, class := range cfg.model.Classes {
			for _, op := range expr.Operators[class] {
				for tuples := iter.EnumerateElements(op.Arity(), operands); tuples.HasNext(); {
					args := tuples.Next()
					// Only keep expressions of exactly this depth
					if d > 1 && !nested(args) {
						continue
					}
					//
					term, _ := expr.Apply(op, args...)
					level = append(level, term)
					scenarios = append(scenarios, generateScenario(term))
				}
			}
		}
		//
		previous = level
	}
	// Done
	return scenarios
}

// Check whether any argument is itself an operation.
func nested(args []kanren.Term) bool {
	for _, arg := range args {
		if _, ok := expr.OperatorOf(arg); ok {
			return true
		}
	}
	//
	return false
}

func generateScenario(term kanren.Term) scenario {
	var (
		node, err = expr.EncodeYAML(term)
		expect    = &yaml.Node{Kind: yaml.ScalarNode, Value: "none"}
	)
	//
	if err != nil {
		panic(err)
	}
	//
	if value, ok := oracle.Eval(term); ok {
		expect, _ = expr.EncodeYAML(value)
	}
	//
	return scenario{expr.Format(term), node, expect}
}

func generatePool(cfg TestGenConfig) []kanren.Term {
	var elems []kanren.Term
	// Iterate values
	for i := cfg.minElem; i <= cfg.maxElem; i++ {
		elems = append(elems, expr.Num(uint64(i)))
	}
	// Done
	return append(elems, expr.True, expr.False)
}

func writeTestScenarios(cfg TestGenConfig, scenarios []scenario) {
	var (
		buf bytes.Buffer
		enc = yaml.NewEncoder(&buf)
		// Construct filename
		filename = path.Join(cfg.dir, fmt.Sprintf("%s.auto.yaml", cfg.model.Name))
	)
	//
	enc.SetIndent(2)
	//
	if err := enc.Encode(map[string][]scenario{"scenarios": scenarios}); err != nil {
		panic(err)
	} else if err := enc.Close(); err != nil {
		panic(err)
	}
	// Write the file
	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		panic(err)
	}
	// Log what happened
	log.Infof("Wrote %s (%d scenarios)\n", filename, len(scenarios))
}

func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}
