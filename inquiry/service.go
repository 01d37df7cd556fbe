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

package inquiry

import (
	"github.com/shopspring/decimal"

	"github.com/Rick-LHC/treasury-fabric-go/soa"
)

// Publisher is the connector side of the inquiry loop: Publish decides how
// many times, and with what states, a reconstructed inquiry re-enters the
// service via OnMessage (see Connector in connector.go).
type Publisher interface {
	Publish(i Inquiry)
}

// Service stores inquiries by InquiryID and drives the state-machine
// transitions described in spec §4.10. The connector reference is
// non-owning, set once at topology wiring time.
type Service struct {
	store     *soa.Store[string, Inquiry]
	listeners soa.ListenerList[Inquiry]
	connector Publisher
}

func NewService() *Service {
	return &Service{store: soa.NewStore[string, Inquiry]()}
}

// SetConnector wires the publish connector this service republishes
// through. Must be called once, before any inquiry is processed.
func (s *Service) SetConnector(p Publisher) {
	s.connector = p
}

func (s *Service) Get(id string) (Inquiry, bool) { return s.store.Get(id) }

func (s *Service) AddListener(l soa.Listener[Inquiry]) { s.listeners.Add(l) }

func (s *Service) Listeners() []soa.Listener[Inquiry] { return s.listeners.All() }

// OnMessage stores i and notifies listeners via ProcessUpdate (spec §4.10
// step 1 and every re-injection from the connector's Publish).
func (s *Service) OnMessage(i Inquiry) {
	s.store.Set(i.InquiryID, i)
	s.listeners.NotifyUpdate(i)
}

// SendQuote reconstructs the inquiry with a new price and republishes it
// through the connector; state is left as-is (spec §4.10 steps 2-3).
func (s *Service) SendQuote(id string, price decimal.Decimal) {
	i, ok := s.store.Get(id)
	if !ok {
		return
	}
	s.connector.Publish(i.withPrice(price))
}

// RejectInquiry reconstructs the inquiry as REJECTED and republishes it
// through the connector (spec §4.10). The reference never calls this from
// within the service itself; here it is reachable from the console's
// `reject` command (see SPEC_FULL.md §5.5).
func (s *Service) RejectInquiry(id string) {
	i, ok := s.store.Get(id)
	if !ok {
		return
	}
	s.connector.Publish(i.withState(StateRejected))
}

// QuoteListener is the service's own self-listener: on a RECEIVED update it
// triggers SendQuote at the reference's fixed quote price (spec §4.10 step
// 2). It is registered on the inquiry service's own listener list.
type QuoteListener struct {
	soa.BaseListener[Inquiry]
	svc        *Service
	quotePrice decimal.Decimal
}

// NewQuoteListener builds the self-listener with the fixed quote price the
// reference always sends (100.0).
func NewQuoteListener(svc *Service) *QuoteListener {
	return &QuoteListener{svc: svc, quotePrice: decimal.New(100, 0)}
}

func (l *QuoteListener) ProcessUpdate(i Inquiry) {
	if i.State == StateReceived {
		l.svc.SendQuote(i.InquiryID, l.quotePrice)
	}
}
