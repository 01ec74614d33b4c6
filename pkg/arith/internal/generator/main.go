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
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
	"github.com/consensys/go-relexpr/pkg/expr"
	"github.com/consensys/go-relexpr/pkg/util/collection/iter"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-relexpr")
	//
	assertNoError(bgen.Generate(newTableConfig(), "arith", "templates",
		bavard.Entry{
			File:      "../../digit_table.go",
			Templates: []string{"digits.go.tmpl"},
		},
	), "for digit tables")
	// run gofmt on generated file
	runCmd("gofmt", "-w", "../../digit_table.go")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

// tableEntry is one row of the digit sum table.
type tableEntry struct {
	Sum   expr.Digit
	Carry expr.Digit
}

type tableConfig struct {
	Base uint
	// Sums[x][y] gives the sum digit and carry of x+y.
	Sums [][]tableEntry
	// Every ordered pair of distinct digits.
	Distinct [][]expr.Digit
}

func newTableConfig() *tableConfig {
	var config = tableConfig{Base: expr.Base}
	//
	config.Sums = make([][]tableEntry, expr.Base)
	//
	for x := range config.Sums {
		config.Sums[x] = make([]tableEntry, expr.Base)
	}
	// Pairs are enumerated with the first component varying fastest.
	for pairs := iter.EnumerateElements(2, expr.Digits); pairs.HasNext(); {
		var (
			pair = pairs.Next()
			x, y = pair[0], pair[1]
			sum  = uint(x) + uint(y)
		)
		//
		config.Sums[x][y] = tableEntry{expr.Digit(sum % expr.Base), expr.Digit(sum / expr.Base)}
	}
	//
	distinct := iter.Filter(iter.EnumerateElements(2, expr.Digits), func(pair []expr.Digit) bool {
		return pair[0] != pair[1]
	})
	config.Distinct = iter.Collect[[]expr.Digit](distinct)
	// Order distinct pairs by their first component, as this reads naturally.
	slices.SortStableFunc(config.Distinct, func(l, r []expr.Digit) int {
		return int(l[0]) - int(r[0])
	})
	//
	return &config
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
