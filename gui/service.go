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

// Package gui throttles pricing ticks down to a bounded, rate-limited feed
// suitable for a desk display (spec §4.12).
package gui

import (
	"time"

	"github.com/Rick-LHC/treasury-fabric-go/pricing"
	"github.com/Rick-LHC/treasury-fabric-go/soa"
)

// Tick is one throttled mid-price observation.
type Tick struct {
	ProductID string
	Mid       string
	At        time.Time
}

// Now lets tests substitute a fixed clock.
type Now func() time.Time

// Listener forwards a pricing tick only when both (now-last >= interval)
// and (count < cap) hold. Throttle state — last-emit time and counter —
// lives on the listener, not on any service, matching the reference
// (spec §4.12).
type Listener struct {
	soa.BaseListener[pricing.PriceQuote]
	interval time.Duration
	cap      int
	now      Now

	last  time.Time
	count int

	emit func(Tick)
}

// NewListener builds a throttled GUI listener. emit is called for every
// tick that passes the gate (the topology wires it to the gui.txt sink).
func NewListener(interval time.Duration, cap int, now Now, emit func(Tick)) *Listener {
	return &Listener{interval: interval, cap: cap, now: now, emit: emit}
}

func (l *Listener) ProcessAdd(q pricing.PriceQuote) {
	if l.count >= l.cap {
		return
	}
	now := l.now()
	if !l.last.IsZero() && now.Sub(l.last) < l.interval {
		return
	}
	l.last = now
	l.count++
	l.emit(Tick{ProductID: q.ProductID, Mid: q.Mid.String(), At: now})
}

// Count reports how many ticks have been emitted so far.
func (l *Listener) Count() int { return l.count }
