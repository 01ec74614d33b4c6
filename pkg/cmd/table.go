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

	"github.com/consensys/go-relexpr/pkg/arith"
	"github.com/consensys/go-relexpr/pkg/expr"
	"github.com/consensys/go-relexpr/pkg/util/termio"
	"github.com/spf13/cobra"
)

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the digit addition table underlying all arithmetic.",
	Long: `Print the digit addition table underlying all arithmetic.
	The entry for row x and column y is the sum of digits x and y, where sums
	which carry into the next digit are highlighted.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		tp := digitTable()
		tp.AnsiEscapes(useAnsiEscapes(cmd))
		tp.Print(os.Stdout)
	},
}

func digitTable() *termio.TablePrinter {
	var (
		n     = uint(len(expr.Digits))
		tp    = termio.NewTablePrinter(n+1, n+1)
		carry = termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW)
		title = termio.BoldAnsiEscape()
	)
	//
	tp.Set(0, 0, "+")
	//
	for _, x := range expr.Digits {
		i := uint(x) + 1
		// Headings
		tp.Set(i, 0, x.String())
		tp.Set(0, i, x.String())
		tp.SetEscape(i, 0, title)
		tp.SetEscape(0, i, title)
		//
		for _, y := range expr.Digits {
			var (
				j    = uint(y) + 1
				s, c = arith.DigitSumOf(x, y)
			)
			//
			if c == 0 {
				tp.Set(j, i, s.String())
			} else {
				tp.Set(j, i, c.String()+s.String())
				tp.SetEscape(j, i, carry)
			}
		}
	}
	//
	return tp
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
