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

// Package execution routes a synthesized child order to one of the desk's
// three execution venues, chosen by an injectable randomness source so
// tests can seed deterministic output (spec §4.4, §9).
package execution

import (
	"github.com/Rick-LHC/treasury-fabric-go/algoexecution"
	"github.com/Rick-LHC/treasury-fabric-go/soa"
)

type Venue string

const (
	VenueBrokertec Venue = "BROKERTEC"
	VenueESpeed    Venue = "ESPEED"
	VenueCME       Venue = "CME"
)

var venues = []Venue{VenueBrokertec, VenueESpeed, VenueCME}

// Execution pairs a routed venue with the order it routed.
type Execution struct {
	algoexecution.ExecutionOrder
	Venue Venue
}

// Chooser picks a venue index in [0, len(venues)); production wiring uses a
// math/rand.Rand, tests inject a fixed-sequence stub.
type Chooser interface {
	Intn(n int) int
}

// Service stores the most recent Execution per product id and notifies
// listeners via ProcessAdd (spec §4.4).
type Service struct {
	store     *soa.Store[string, Execution]
	listeners soa.ListenerList[Execution]
	chooser   Chooser
}

func NewService(chooser Chooser) *Service {
	return &Service{store: soa.NewStore[string, Execution](), chooser: chooser}
}

func (s *Service) Get(id string) (Execution, bool) { return s.store.Get(id) }

func (s *Service) AddListener(l soa.Listener[Execution]) { s.listeners.Add(l) }

func (s *Service) Listeners() []soa.Listener[Execution] { return s.listeners.All() }

// AlgoExecutionListener is registered on algoexecution's update channel
// (spec §4.4: "Listens for algo-execution updates").
type AlgoExecutionListener struct {
	soa.BaseListener[algoexecution.ExecutionOrder]
	svc *Service
}

func NewAlgoExecutionListener(svc *Service) *AlgoExecutionListener {
	return &AlgoExecutionListener{svc: svc}
}

func (l *AlgoExecutionListener) ProcessUpdate(order algoexecution.ExecutionOrder) {
	l.svc.route(order)
}

func (s *Service) route(order algoexecution.ExecutionOrder) {
	venue := venues[s.chooser.Intn(len(venues))]
	exec := Execution{ExecutionOrder: order, Venue: venue}
	s.store.Set(order.ProductID, exec)
	s.listeners.NotifyAdd(exec)
}
