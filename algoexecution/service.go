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

package algoexecution

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/Rick-LHC/treasury-fabric-go/marketdata"
	"github.com/Rick-LHC/treasury-fabric-go/product"
	"github.com/Rick-LHC/treasury-fabric-go/soa"
)

// spreadThreshold is 1/128, the tight-spread trigger (spec §4.3/§8).
var spreadThreshold = decimal.New(1, 0).Div(decimal.New(128, 0))

// Service synthesizes an ExecutionOrder whenever the market-data best
// bid/offer spread (under the §4.2 inversion convention) is tight enough.
type Service struct {
	store     *soa.Store[string, ExecutionOrder]
	listeners soa.ListenerList[ExecutionOrder]
	products  *product.Service
	counter   int
}

func NewService(products *product.Service) *Service {
	return &Service{store: soa.NewStore[string, ExecutionOrder](), products: products}
}

func (s *Service) Get(id string) (ExecutionOrder, bool) { return s.store.Get(id) }

func (s *Service) AddListener(l soa.Listener[ExecutionOrder]) { s.listeners.Add(l) }

func (s *Service) Listeners() []soa.Listener[ExecutionOrder] { return s.listeners.All() }

// MarketdataListener is registered as a listener on the market-data service's add
// channel (spec §4.3: "Listens to market-data updates via the add
// channel").
type MarketdataListener struct {
	soa.BaseListener[marketdata.OrderBook]
	svc *Service
	md  *marketdata.Service
}

func NewMarketdataListener(svc *Service, md *marketdata.Service) *MarketdataListener {
	return &MarketdataListener{svc: svc, md: md}
}

func (l *MarketdataListener) ProcessAdd(book marketdata.OrderBook) {
	l.svc.onBook(l.md, book.ProductID)
}

// onBook implements spec §4.3's emission rule.
func (s *Service) onBook(md *marketdata.Service, productID string) {
	best, ok := md.BestBidOffer(productID)
	if !ok {
		return
	}
	spread := best.BidPrice.Sub(best.OfferPrice).Abs()
	if spread.GreaterThan(spreadThreshold) {
		return
	}

	bond, ok := s.products.Get(productID)
	if !ok {
		log.Printf("algoexecution: unknown product %s, skipping", productID)
		return
	}

	side := SideOffer
	if s.counter%2 == 1 {
		side = SideBid
	}

	var total int64
	if side == SideBid {
		total = best.BidQty
	} else {
		total = best.OfferQty
	}
	hidden := total * 2 / 3
	visible := total - hidden

	order := ExecutionOrder{
		ProductID:     productID,
		Side:          side,
		OrderID:       fmt.Sprintf("ORDER%d%s%d", bond.Maturity.Year(), bond.Ticker, s.counter),
		OrderType:     OrderTypeIOC,
		Price:         best.OfferPrice,
		VisibleQty:    visible,
		HiddenQty:     hidden,
		ParentOrderID: "N/A",
		IsChild:       false,
	}
	s.counter++

	s.store.Set(productID, order)
	s.listeners.NotifyUpdate(order)
}
