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
	"github.com/shopspring/decimal"

	"github.com/Rick-LHC/treasury-fabric-go/pricing"
	"github.com/Rick-LHC/treasury-fabric-go/soa"
)

const (
	visibleLow  int64 = 1_000_000
	visibleHigh int64 = 2_000_000
)

var two = decimal.New(2, 0)

// Service builds one PriceStream per pricing update. Counter is incremented
// after each build, alternating visible quantity 1M/2M (spec §4.5).
type Service struct {
	store     *soa.Store[string, PriceStream]
	listeners soa.ListenerList[PriceStream]
	counter   int
}

func NewService() *Service {
	return &Service{store: soa.NewStore[string, PriceStream]()}
}

func (s *Service) Get(id string) (PriceStream, bool) { return s.store.Get(id) }

func (s *Service) AddListener(l soa.Listener[PriceStream]) { s.listeners.Add(l) }

func (s *Service) Listeners() []soa.Listener[PriceStream] { return s.listeners.All() }

// PricingListener feeds pricing adds into stream construction (spec §4.5).
type PricingListener struct {
	soa.BaseListener[pricing.PriceQuote]
	svc *Service
}

func NewPricingListener(svc *Service) *PricingListener {
	return &PricingListener{svc: svc}
}

func (l *PricingListener) ProcessAdd(q pricing.PriceQuote) {
	l.svc.buildStream(q)
}

// buildStream implements spec §4.5: gap = spread/2, bid = mid-gap,
// offer = mid+gap; visible alternates 1M/2M by counter parity (even -> 1M);
// hidden = 2 * visible, exactly (not truncated, unlike algo-execution's
// 2/3 truncation rule).
func (s *Service) buildStream(q pricing.PriceQuote) {
	gap := q.Spread.Div(two)

	visible := visibleLow
	if s.counter%2 == 1 {
		visible = visibleHigh
	}
	hidden := visible * 2

	stream := PriceStream{
		ProductID: q.ProductID,
		Bid: PriceStreamOrder{
			Price:      q.Mid.Sub(gap),
			VisibleQty: visible,
			HiddenQty:  hidden,
			Side:       SideBid,
		},
		Offer: PriceStreamOrder{
			Price:      q.Mid.Add(gap),
			VisibleQty: visible,
			HiddenQty:  hidden,
			Side:       SideOffer,
		},
	}

	s.store.Set(q.ProductID, stream)
	s.listeners.NotifyUpdate(stream)
	s.counter++
}
