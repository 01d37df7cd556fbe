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

// Package historical holds the five durable, append-on-write text sinks
// (position, risk, execution, streaming, inquiry) that persist every
// service update the fabric produces (spec §4.11, §6).
package historical

import (
	"fmt"
	"io"
	"log"
	"time"
)

// Sink is the thin store+publish-connector pair every historical service
// embeds: it prefixes each line with a local timestamp and writes it out,
// logging (never crashing) on a closed or nil writer (spec §7: "File not
// open: logged on every publish attempt; no retry; no crash").
type Sink struct {
	w   io.Writer
	now func() time.Time
}

// NewSink wraps w. now defaults to time.Now; tests may override it.
func NewSink(w io.Writer, now func() time.Time) *Sink {
	if now == nil {
		now = time.Now
	}
	return &Sink{w: w, now: now}
}

// WriteLine timestamps and writes one output line.
func (s *Sink) WriteLine(format string, args ...any) {
	if s.w == nil {
		log.Printf("historical: sink not open, dropping line")
		return
	}
	stamp := s.now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf(stamp+" "+format+"\n", args...)
	if _, err := io.WriteString(s.w, line); err != nil {
		log.Printf("historical: write failed: %v", err)
	}
}
