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
package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats captures useful performance statistics for some unit of work,
// such as evaluating an expression or running a batch of checks.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
	// Starting number of gc events
	startGc uint32
}

// NewPerfStats creates a new snapshot of the current time and amount of memory
// allocated.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{time.Now(), m.TotalAlloc, m.NumGC}
}

// Elapsed returns the time passed since the snapshot was taken.
func (p *PerfStats) Elapsed() time.Duration {
	return time.Since(p.startTime)
}

// Log logs (at debug level) the difference between the state now and as it was
// when the snapshot was taken, along with the number of search steps taken in
// the meantime.
func (p *PerfStats) Log(prefix string, steps uint) {
	// Nothing to report unless debugging
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	//
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	var (
		alloc    = (m.TotalAlloc - p.startMem) / 1024 / 1024
		gcs      = m.NumGC - p.startGc
		exectime = p.Elapsed().Seconds()
	)
	//
	log.Debugf("%s took %0.3fs and %d steps using %v Mb (%v GC events)", prefix, exectime, steps, alloc, gcs)
}
