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

// Package streaming republishes algo-streaming's iceberg quotes as the
// desk's externally visible two-way price stream (spec §4.6).
package streaming

import (
	"github.com/Rick-LHC/treasury-fabric-go/algostreaming"
	"github.com/Rick-LHC/treasury-fabric-go/soa"
)

// Service stores the most recently published PriceStream per product id
// and notifies listeners via ProcessAdd.
type Service struct {
	store     *soa.Store[string, algostreaming.PriceStream]
	listeners soa.ListenerList[algostreaming.PriceStream]
}

func NewService() *Service {
	return &Service{store: soa.NewStore[string, algostreaming.PriceStream]()}
}

func (s *Service) Get(id string) (algostreaming.PriceStream, bool) { return s.store.Get(id) }

func (s *Service) AddListener(l soa.Listener[algostreaming.PriceStream]) { s.listeners.Add(l) }

func (s *Service) Listeners() []soa.Listener[algostreaming.PriceStream] { return s.listeners.All() }

// PublishPrice stores stream by product id and notifies listeners via
// ProcessAdd (spec §4.6).
func (s *Service) PublishPrice(stream algostreaming.PriceStream) {
	s.store.Set(stream.ProductID, stream)
	s.listeners.NotifyAdd(stream)
}

// AlgoStreamingListener republishes every algo-streaming update (spec §4.6:
// "Listens for algo-streaming updates").
type AlgoStreamingListener struct {
	soa.BaseListener[algostreaming.PriceStream]
	svc *Service
}

func NewAlgoStreamingListener(svc *Service) *AlgoStreamingListener {
	return &AlgoStreamingListener{svc: svc}
}

func (l *AlgoStreamingListener) ProcessUpdate(stream algostreaming.PriceStream) {
	l.svc.PublishPrice(stream)
}
