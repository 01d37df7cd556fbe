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

// Package position tracks signed net quantity per book for every bond in
// the desk's ticker universe (spec §4.8).
package position

import (
	"github.com/Rick-LHC/treasury-fabric-go/product"
	"github.com/Rick-LHC/treasury-fabric-go/soa"
	"github.com/Rick-LHC/treasury-fabric-go/tradebooking"
)

// Position is a product's net quantity per book. Aggregate is the sum over
// all three books.
type Position struct {
	ProductID string
	Books     map[tradebooking.BookID]int64
}

// Aggregate sums the position's book quantities (spec §3 invariant).
func (p Position) Aggregate() int64 {
	var total int64
	for _, q := range p.Books {
		total += q
	}
	return total
}

var allBooks = []tradebooking.BookID{tradebooking.Book1, tradebooking.Book2, tradebooking.Book3}

func zeroPosition(productID string) Position {
	books := make(map[tradebooking.BookID]int64, len(allBooks))
	for _, b := range allBooks {
		books[b] = 0
	}
	return Position{ProductID: productID, Books: books}
}

// Service owns one Position per product id, seeded at zero in every book
// for every bond of the configured ticker (spec §4.8, §3 invariant).
type Service struct {
	store     *soa.Store[string, Position]
	listeners soa.ListenerList[Position]
}

// NewService seeds a zero Position for every bond products returns for
// ticker.
func NewService(products *product.Service, ticker string) *Service {
	s := &Service{store: soa.NewStore[string, Position]()}
	for _, b := range products.BondsForTicker(ticker) {
		s.store.Set(b.Identifier, zeroPosition(b.Identifier))
	}
	return s
}

func (s *Service) Get(id string) (Position, bool) { return s.store.Get(id) }

func (s *Service) AddListener(l soa.Listener[Position]) { s.listeners.Add(l) }

func (s *Service) Listeners() []soa.Listener[Position] { return s.listeners.All() }

// TradeBookingListener feeds booked trades into position arithmetic
// (listens on trade-booking's update channel, spec §4.7/§4.8).
type TradeBookingListener struct {
	soa.BaseListener[tradebooking.Trade]
	svc *Service
}

func NewTradeBookingListener(svc *Service) *TradeBookingListener {
	return &TradeBookingListener{svc: svc}
}

func (l *TradeBookingListener) ProcessUpdate(t tradebooking.Trade) {
	l.svc.AddTrade(t)
}

// AddTrade applies t's signed delta to the product's book-specific entry,
// creating the position (zeroed) if it doesn't already exist, and notifies
// listeners via ProcessUpdate (spec §4.8).
func (s *Service) AddTrade(t tradebooking.Trade) {
	pos, ok := s.store.Get(t.ProductID)
	if !ok {
		pos = zeroPosition(t.ProductID)
	}
	delta := t.Quantity
	if t.Side == tradebooking.SideSell {
		delta = -delta
	}
	pos.Books[t.Book] += delta
	s.store.Set(t.ProductID, pos)
	s.listeners.NotifyUpdate(pos)
}
