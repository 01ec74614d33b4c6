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
package termio

import (
	"bytes"
	"testing"
)

func Test_Escape_01(t *testing.T) {
	checkEscape(t, NewAnsiEscape().FgColour(TERM_RED), "\033[31m")
	checkEscape(t, BoldAnsiEscape().FgColour(TERM_GREEN), "\033[1;32m")
	checkEscape(t, ResetAnsiEscape(), "\033[0m")
}

func Test_Table_01(t *testing.T) {
	tp := NewTablePrinter(2, 2)
	tp.SetRow(0, "x", "value")
	tp.Set(0, 1, "1")
	tp.Set(1, 1, "100")
	//
	checkTable(t, tp, " x | value |\n 1 |   100 |\n")
}

func Test_Table_02(t *testing.T) {
	tp := NewTablePrinter(1, 2)
	tp.Set(0, 0, "abcdefgh")
	tp.Set(0, 1, "ab")
	tp.SetMaxWidths(5)
	//
	checkTable(t, tp, " abc.. |\n    ab |\n")
}

func Test_Table_03(t *testing.T) {
	tp := NewTablePrinter(1, 1)
	tp.Set(0, 0, "ok")
	tp.SetEscape(0, 0, NewAnsiEscape().FgColour(TERM_GREEN))
	//
	checkTable(t, tp, "\033[32m ok\033[0m |\n")
	// Escapes can be disabled
	tp.AnsiEscapes(false)
	checkTable(t, tp, " ok |\n")
}

func checkEscape(t *testing.T, escape AnsiEscape, expected string) {
	if actual := escape.Build(); actual != expected {
		t.Errorf("expected escape %q, got %q", expected, actual)
	}
}

func checkTable(t *testing.T, tp *TablePrinter, expected string) {
	var buf bytes.Buffer
	//
	tp.Print(&buf)
	//
	if actual := buf.String(); actual != expected {
		t.Errorf("expected table %q, got %q", expected, actual)
	}
}
