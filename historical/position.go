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
	"github.com/Rick-LHC/treasury-fabric-go/position"
	"github.com/Rick-LHC/treasury-fabric-go/soa"
	"github.com/Rick-LHC/treasury-fabric-go/tradebooking"
)

var positionBooks = []tradebooking.BookID{tradebooking.Book1, tradebooking.Book2, tradebooking.Book3}

// PositionService listens on position's update channel and persists one
// line per book plus one AGGREGATED line, keyed (overwritten) by product id
// (spec §4.11, §6).
type PositionService struct {
	soa.BaseListener[position.Position]
	store *soa.Store[string, position.Position]
	sink  *Sink
}

func NewPositionService(sink *Sink) *PositionService {
	return &PositionService{store: soa.NewStore[string, position.Position](), sink: sink}
}

func (s *PositionService) ProcessUpdate(p position.Position) {
	s.PersistData(p)
}

// PersistData stores p (overwrite) and writes its books plus an aggregated
// line (spec §6: "one line per book (TRSY1/2/3) plus one AGGREGATED line
// per update").
func (s *PositionService) PersistData(p position.Position) {
	s.store.Set(p.ProductID, p)
	for _, book := range positionBooks {
		s.sink.WriteLine("%s %s %d", p.ProductID, book, p.Books[book])
	}
	s.sink.WriteLine("%s AGGREGATED %d", p.ProductID, p.Aggregate())
}
