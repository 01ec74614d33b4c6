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
package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func Test_Metrics_01(t *testing.T) {
	m := New()
	m.ObserveEvaluation("arithmetic", OUTCOME_VALUE, 120, 1, time.Millisecond)
	m.ObserveEvaluation("arithmetic", OUTCOME_VALUE, 80, 1, time.Millisecond)
	m.ObserveEvaluation("logic", OUTCOME_NONE, 3, 0, time.Microsecond)
	//
	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatal(err)
	}
	//
	var total float64
	//
	for _, family := range families {
		if family.GetName() != "relexpr_evaluations_total" {
			continue
		}
		//
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	//
	if total != 3 {
		t.Errorf("expected 3 evaluations, got %v", total)
	}
}

func Test_Metrics_02(t *testing.T) {
	var (
		m        = New()
		filename = filepath.Join(t.TempDir(), "relexpr.prom")
	)
	//
	m.ObserveEvaluation("comparison", OUTCOME_ERROR, 1000, 0, time.Second)
	//
	if err := m.WriteTextfile(filename); err != nil {
		t.Fatal(err)
	}
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	//
	text := string(bytes)
	if !strings.Contains(text, `relexpr_evaluations_total{class="comparison",outcome="error"} 1`) {
		t.Errorf("unexpected textfile contents:\n%s", text)
	}
}

func Test_Metrics_03(t *testing.T) {
	// Nil metrics record nothing
	var m *Metrics
	//
	m.ObserveEvaluation("logic", OUTCOME_VALUE, 1, 1, time.Second)
	//
	if err := m.WriteTextfile(filepath.Join(t.TempDir(), "none.prom")); err != nil {
		t.Fatal(err)
	}
}
