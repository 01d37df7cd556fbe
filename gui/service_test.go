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

package gui

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Rick-LHC/treasury-fabric-go/pricing"
)

func TestListenerThrottlesByInterval(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	var ticks []Tick
	l := NewListener(time.Second, 100, clock, func(tk Tick) { ticks = append(ticks, tk) })

	q := pricing.PriceQuote{ProductID: "T1", Mid: decimal.RequireFromString("100")}
	l.ProcessAdd(q)
	l.ProcessAdd(q) // same instant, should be throttled

	if len(ticks) != 1 {
		t.Fatalf("len(ticks) = %d, want 1", len(ticks))
	}

	now = now.Add(2 * time.Second)
	l.ProcessAdd(q)
	if len(ticks) != 2 {
		t.Fatalf("len(ticks) = %d, want 2 after the interval elapsed", len(ticks))
	}
}

func TestListenerCapsEmitCount(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewListener(0, 2, func() time.Time { return now }, func(Tick) {})

	q := pricing.PriceQuote{ProductID: "T1", Mid: decimal.RequireFromString("100")}
	for i := 0; i < 5; i++ {
		now = now.Add(time.Second)
		l.ProcessAdd(q)
	}

	if l.Count() != 2 {
		t.Errorf("Count() = %d, want 2 (capped)", l.Count())
	}
}
