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

package algostreaming

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Rick-LHC/treasury-fabric-go/pricing"
)

// TestBuildStreamAlternatesVisibleQuantity locks in scenario 6: successive
// builds from one service alternate visible=1M, visible=2M; bid and offer
// of the same stream always agree.
func TestBuildStreamAlternatesVisibleQuantity(t *testing.T) {
	svc := NewService()
	listener := NewPricingListener(svc)
	quote := pricing.PriceQuote{ProductID: "T1", Mid: decimal.RequireFromString("100"), Spread: decimal.RequireFromString("0.5")}

	listener.ProcessAdd(quote)
	first, _ := svc.Get("T1")
	if first.Bid.VisibleQty != visibleLow || first.Offer.VisibleQty != visibleLow {
		t.Errorf("first build visible = %d/%d, want %d/%d", first.Bid.VisibleQty, first.Offer.VisibleQty, visibleLow, visibleLow)
	}
	if first.Bid.HiddenQty != visibleLow*2 {
		t.Errorf("first build hidden = %d, want %d", first.Bid.HiddenQty, visibleLow*2)
	}

	listener.ProcessAdd(quote)
	second, _ := svc.Get("T1")
	if second.Bid.VisibleQty != visibleHigh || second.Offer.VisibleQty != visibleHigh {
		t.Errorf("second build visible = %d/%d, want %d/%d", second.Bid.VisibleQty, second.Offer.VisibleQty, visibleHigh, visibleHigh)
	}
}

func TestBuildStreamPriceGap(t *testing.T) {
	svc := NewService()
	listener := NewPricingListener(svc)
	quote := pricing.PriceQuote{ProductID: "T1", Mid: decimal.RequireFromString("100"), Spread: decimal.RequireFromString("0.5")}

	listener.ProcessAdd(quote)
	stream, _ := svc.Get("T1")

	if !stream.Bid.Price.Equal(decimal.RequireFromString("99.75")) {
		t.Errorf("Bid.Price = %s, want 99.75", stream.Bid.Price)
	}
	if !stream.Offer.Price.Equal(decimal.RequireFromString("100.25")) {
		t.Errorf("Offer.Price = %s, want 100.25", stream.Offer.Price)
	}
}
