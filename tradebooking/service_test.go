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
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Rick-LHC/treasury-fabric-go/algoexecution"
	"github.com/Rick-LHC/treasury-fabric-go/execution"
	"github.com/Rick-LHC/treasury-fabric-go/product"
)

func seededProducts() *product.Service {
	p := product.NewService()
	p.Add(product.NewBond("CUSIP1", product.IdentifierCUSIP, "T", 2.5, "2030-01-01"))
	return p
}

func TestOnMessageBooksTradeByID(t *testing.T) {
	svc := NewService(seededProducts())
	svc.OnMessage(Trade{ProductID: "CUSIP1", TradeID: "TR1", Quantity: 100, Side: SideBuy, Book: Book1})

	got, ok := svc.Get("TR1")
	if !ok {
		t.Fatal("expected trade to be booked under its trade id")
	}
	if got.ProductID != "CUSIP1" {
		t.Errorf("ProductID = %s, want CUSIP1", got.ProductID)
	}
}

// TestExecutionListenerSideInversion locks in the bridge's BID->SELL,
// OFFER->BUY mapping (spec §4.7: a filled bid is sold into, a filled offer
// is bought from).
func TestExecutionListenerSideInversion(t *testing.T) {
	svc := NewService(seededProducts())
	listener := NewExecutionListener(svc)

	var booked []Trade
	svc.AddListener(captureListener(func(tr Trade) { booked = append(booked, tr) }))

	listener.ProcessAdd(execution.Execution{
		ExecutionOrder: algoexecution.ExecutionOrder{
			ProductID: "CUSIP1", Side: "BID", Price: decimal.RequireFromString("100"),
			VisibleQty: 10, HiddenQty: 5,
		},
		Venue: "CME",
	})

	if len(booked) != 1 || booked[0].Side != SideSell {
		t.Fatalf("BID execution should book a SELL trade, got %+v", booked)
	}
	if booked[0].Quantity != 15 {
		t.Errorf("Quantity = %d, want visible+hidden=15", booked[0].Quantity)
	}
}

func TestExecutionListenerBookRotation(t *testing.T) {
	svc := NewService(seededProducts())
	listener := NewExecutionListener(svc)

	var seen []BookID
	svc.AddListener(captureListener(func(tr Trade) { seen = append(seen, tr.Book) }))

	for i := 0; i < 4; i++ {
		listener.ProcessAdd(execution.Execution{
			ExecutionOrder: algoexecution.ExecutionOrder{ProductID: "CUSIP1", Side: "OFFER"},
		})
	}

	want := []BookID{Book1, Book2, Book3, Book1}
	if len(seen) != len(want) {
		t.Fatalf("len(seen) = %d, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("trade %d booked into %s, want %s", i, seen[i], want[i])
		}
	}
}

func TestExecutionListenerUnknownSideSkipped(t *testing.T) {
	svc := NewService(seededProducts())
	listener := NewExecutionListener(svc)
	before := svc.counter

	listener.ProcessAdd(execution.Execution{
		ExecutionOrder: algoexecution.ExecutionOrder{ProductID: "CUSIP1", Side: "JUNK"},
	})

	if svc.counter != before {
		t.Error("an unrecognized side should not book a trade or advance the counter")
	}
}

type captureListener func(Trade)

func (c captureListener) ProcessAdd(Trade)      {}
func (c captureListener) ProcessRemove(Trade)   {}
func (c captureListener) ProcessUpdate(t Trade)  { c(t) }
