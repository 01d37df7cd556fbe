/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package topology

import (
	"log"
	"time"
)

// Stopwatch times one connector's full read pass, mirroring the reference's
// Timer::Start/Stop/GetTime (SPEC_FULL.md §5.2).
type Stopwatch struct {
	label   string
	started time.Time
}

// Start begins timing label.
func Start(label string) *Stopwatch {
	return &Stopwatch{label: label, started: time.Now()}
}

// Stop logs the elapsed duration since Start.
func (s *Stopwatch) Stop() {
	log.Printf("%s: completed in %s", s.label, time.Since(s.started))
}
