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

package pricing

import "github.com/Rick-LHC/treasury-fabric-go/soa"

// Service stores the latest PriceQuote per product id and fans it out via
// ProcessAdd (algo-streaming and the GUI both listen on this channel).
type Service struct {
	store     *soa.Store[string, PriceQuote]
	listeners soa.ListenerList[PriceQuote]
}

func NewService() *Service {
	return &Service{store: soa.NewStore[string, PriceQuote]()}
}

func (s *Service) Get(id string) (PriceQuote, bool) { return s.store.Get(id) }

func (s *Service) AddListener(l soa.Listener[PriceQuote]) { s.listeners.Add(l) }

func (s *Service) Listeners() []soa.Listener[PriceQuote] { return s.listeners.All() }

func (s *Service) OnMessage(q PriceQuote) {
	s.store.Set(q.ProductID, q)
	s.listeners.NotifyAdd(q)
}
