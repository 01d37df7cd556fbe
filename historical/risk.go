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
	"log"

	"github.com/Rick-LHC/treasury-fabric-go/product"
	"github.com/Rick-LHC/treasury-fabric-go/risk"
	"github.com/Rick-LHC/treasury-fabric-go/soa"
)

// RiskService listens on risk's update channel. On every per-bond update it
// also re-derives the bucketed sector containing the bond and persists
// that roll-up too (two-payload PersistData, spec §4.11/SPEC_FULL.md §5.4).
type RiskService struct {
	soa.BaseListener[risk.PV01Entry]
	store    *soa.Store[string, risk.PV01Entry]
	sink     *Sink
	products *product.Service
	risk     *risk.Service
}

func NewRiskService(sink *Sink, products *product.Service, riskSvc *risk.Service) *RiskService {
	return &RiskService{
		store:    soa.NewStore[string, risk.PV01Entry](),
		sink:     sink,
		products: products,
		risk:     riskSvc,
	}
}

func (s *RiskService) ProcessUpdate(entry risk.PV01Entry) {
	s.PersistBond(entry)

	bond, ok := s.products.Get(entry.Key)
	if !ok {
		return
	}
	sector, ok := s.risk.SectorFor(bond)
	if !ok {
		log.Printf("historical: risk: no bucketed sector for %s, skipping roll-up", entry.Key)
		return
	}
	bucket := s.risk.UpdateBucketedRisk(sector)
	s.PersistBucket(bucket)
}

// PersistBond is the per-bond overload of PersistData (spec §4.11).
func (s *RiskService) PersistBond(entry risk.PV01Entry) {
	s.store.Set(entry.Key, entry)
	s.sink.WriteLine("%s %s %d", entry.Key, entry.PV01.String(), entry.Quantity)
}

// PersistBucket is the per-bucket overload of PersistData, tagged
// "Bucketed Sector" per spec §6.
func (s *RiskService) PersistBucket(entry risk.PV01Entry) {
	s.store.Set(entry.Key, entry)
	s.sink.WriteLine("Bucketed Sector %s %s %d", entry.Key, entry.PV01.String(), entry.Quantity)
}
