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

package marketdata

import (
	"log"

	"github.com/Rick-LHC/treasury-fabric-go/soa"
)

// Service stores one OrderBook per product id and fans updates out to its
// listeners (algo-execution, primarily).
type Service struct {
	store     *soa.Store[string, OrderBook]
	listeners soa.ListenerList[OrderBook]
}

func NewService() *Service {
	return &Service{store: soa.NewStore[string, OrderBook]()}
}

func (s *Service) Get(id string) (OrderBook, bool) { return s.store.Get(id) }

func (s *Service) AddListener(l soa.Listener[OrderBook]) { s.listeners.Add(l) }

func (s *Service) Listeners() []soa.Listener[OrderBook] { return s.listeners.All() }

// OnMessage stores book and notifies listeners via ProcessAdd (spec §4.2).
func (s *Service) OnMessage(book OrderBook) {
	s.store.Set(book.ProductID, book)
	s.listeners.NotifyAdd(book)
}

// BestBidOffer returns the tightest pair from the stored book. The bid/offer
// price fields are deliberately swapped to match the reference's composition
// quirk (spec §4.2, §9 Open Question): BidPrice carries the best OFFER's
// price and BidQty its quantity; OfferPrice/OfferQty carry the best BID's.
// Downstream algo-execution (spec §4.3) depends on this exact convention.
func (s *Service) BestBidOffer(id string) (BidOffer, bool) {
	book, ok := s.store.Get(id)
	if !ok {
		return BidOffer{}, false
	}
	bestBid, hasBid := bestOf(book.Bids)
	bestOffer, hasOffer := bestOf(book.Offers)
	if !hasBid || !hasOffer {
		return BidOffer{}, false
	}
	return BidOffer{
		ProductID:  id,
		BidPrice:   bestOffer.Price,
		BidQty:     bestOffer.Quantity,
		OfferPrice: bestBid.Price,
		OfferQty:   bestBid.Quantity,
	}, true
}

// bestOf returns the first level of a side without comparing prices. The
// marketdata.csv reconstruction appends levels in depth order (Spread1
// first), so the first level is the best one when the spreads widen with
// depth.
func bestOf(orders []Order) (Order, bool) {
	if len(orders) == 0 {
		return Order{}, false
	}
	return orders[0], true
}

// AggregateDepth rebuilds the stored book by collapsing same-price levels
// on each side into one Order whose quantity is the sum (spec §4.2).
// Idempotent: aggregating an already-aggregated book yields the same
// multiset of price levels.
func (s *Service) AggregateDepth(id string) (OrderBook, bool) {
	book, ok := s.store.Get(id)
	if !ok {
		log.Printf("marketdata: aggregate_depth: unknown product %s", id)
		return OrderBook{}, false
	}
	agg := OrderBook{
		ProductID: id,
		Bids:      collapse(book.Bids),
		Offers:    collapse(book.Offers),
	}
	s.store.Set(id, agg)
	return agg, true
}

// collapse groups orders by price string and sums quantity per group. Group
// emission order is unspecified (spec §4.2: "order of levels is
// unspecified... uses a hash grouping").
func collapse(orders []Order) []Order {
	index := make(map[string]int, len(orders))
	var out []Order
	for _, o := range orders {
		key := o.Price.String()
		if i, ok := index[key]; ok {
			out[i].Quantity += o.Quantity
			continue
		}
		index[key] = len(out)
		out = append(out, o)
	}
	return out
}
