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
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "relexpr",
	Short: "A relational evaluator for natural arithmetic and logic.",
	Long: `A relational evaluator for arbitrary-precision natural arithmetic, booleans
	and comparisons.  Expressions are evaluated by searching for their values,
	rather than by computing them directly.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "debug") {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if !getFlag(cmd, "version") {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		fmt.Print("relexpr ")
		if Version != "" {
			// Built via "make"
			fmt.Printf("%s", Version)
		} else if info, ok := debug.ReadBuildInfo(); ok {
			// Built via "go install"
			fmt.Printf("%s", info.Main.Version)
		} else {
			// Unknown, perhaps "go run"
			fmt.Printf("(unknown version)")
		}
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "report debugging information (e.g. search steps)")
	rootCmd.PersistentFlags().Uint("max-steps", 10_000_000, "maximum number of search steps per expression (0 for no limit)")
	rootCmd.PersistentFlags().String("metrics", "", "write prometheus metrics to a given textfile on exit")
	rootCmd.PersistentFlags().Bool("ansi-escapes", true, "permit ANSI escapes in output (when writing to a terminal)")
}
