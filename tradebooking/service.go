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

package tradebooking

import (
	"fmt"

	"github.com/Rick-LHC/treasury-fabric-go/execution"
	"github.com/Rick-LHC/treasury-fabric-go/product"
	"github.com/Rick-LHC/treasury-fabric-go/soa"
)

// Service books Trades by trade id. Counter is used both for bridge trade
// synthesis (trade id suffix) and book rotation, and it increments on every
// booked trade regardless of ingress path (spec §4.7).
type Service struct {
	store     *soa.Store[string, Trade]
	listeners soa.ListenerList[Trade]
	products  *product.Service
	counter   int
}

func NewService(products *product.Service) *Service {
	return &Service{store: soa.NewStore[string, Trade](), products: products}
}

func (s *Service) Get(id string) (Trade, bool) { return s.store.Get(id) }

func (s *Service) AddListener(l soa.Listener[Trade]) { s.listeners.Add(l) }

func (s *Service) Listeners() []soa.Listener[Trade] { return s.listeners.All() }

// OnMessage is the subscribe-connector ingress path: it books t as-is.
func (s *Service) OnMessage(t Trade) {
	s.BookTrade(t)
}

// BookTrade stores t by trade id, increments the counter, and notifies
// listeners via ProcessUpdate (spec §4.7).
func (s *Service) BookTrade(t Trade) {
	s.store.Set(t.TradeID, t)
	s.counter++
	s.listeners.NotifyUpdate(t)
}

// ExecutionListener is the bridge from the execution service's add channel
// (spec §4.7 path 2): it synthesizes a Trade from a routed execution.
type ExecutionListener struct {
	soa.BaseListener[execution.Execution]
	svc *Service
}

func NewExecutionListener(svc *Service) *ExecutionListener {
	return &ExecutionListener{svc: svc}
}

func (l *ExecutionListener) ProcessAdd(exec execution.Execution) {
	bond, ok := l.svc.products.Get(exec.ProductID)
	if !ok {
		return
	}

	var side Side
	switch exec.Side {
	case "BID":
		side = SideSell
	case "OFFER":
		side = SideBuy
	default:
		return
	}

	book := books[l.svc.counter%len(books)]
	trade := Trade{
		ProductID: exec.ProductID,
		TradeID:   fmt.Sprintf("TRADE%d%s%d", bond.Maturity.Year(), bond.Ticker, l.svc.counter),
		Price:     exec.Price,
		Book:      book,
		Quantity:  exec.VisibleQty + exec.HiddenQty,
		Side:      side,
	}
	l.svc.BookTrade(trade)
}
