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

package historical

import (
	"github.com/Rick-LHC/treasury-fabric-go/algostreaming"
	"github.com/Rick-LHC/treasury-fabric-go/soa"
)

// StreamingService listens on streaming's add channel (its "publish_price"
// event) and persists the bid and offer PriceStreamOrder fields
// (spec §4.11, §6).
type StreamingService struct {
	soa.BaseListener[algostreaming.PriceStream]
	store *soa.Store[string, algostreaming.PriceStream]
	sink  *Sink
}

func NewStreamingService(sink *Sink) *StreamingService {
	return &StreamingService{store: soa.NewStore[string, algostreaming.PriceStream](), sink: sink}
}

func (s *StreamingService) ProcessAdd(stream algostreaming.PriceStream) {
	s.PersistData(stream)
}

func (s *StreamingService) PersistData(stream algostreaming.PriceStream) {
	s.store.Set(stream.ProductID, stream)
	s.sink.WriteLine("%s BID %s %d %d", stream.ProductID, stream.Bid.Price.String(), stream.Bid.VisibleQty, stream.Bid.HiddenQty)
	s.sink.WriteLine("%s OFFER %s %d %d", stream.ProductID, stream.Offer.Price.String(), stream.Offer.VisibleQty, stream.Offer.HiddenQty)
}
