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

// Package risk rolls position quantity up into PV01 exposure, per bond and
// per bucketed sector (spec §4.9).
package risk

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Rick-LHC/treasury-fabric-go/position"
	"github.com/Rick-LHC/treasury-fabric-go/product"
	"github.com/Rick-LHC/treasury-fabric-go/soa"
)

// PV01Entry is keyed by either a bond's product id or a bucketed sector's
// name (spec §3).
type PV01Entry struct {
	Key      string
	PV01     decimal.Decimal
	Quantity int64
}

// Service owns one PV01Entry per product id (seeded at construction) plus
// one per bucketed sector name (populated on demand by UpdateBucketedRisk).
type Service struct {
	store     *soa.Store[string, PV01Entry]
	listeners soa.ListenerList[PV01Entry]
	sectors   []product.BucketedSector
}

// NewService seeds a zero-quantity PV01Entry for every (productID, pv01)
// pair in perUnit, and records the sector universe for bucketed roll-ups.
func NewService(perUnit map[string]decimal.Decimal, sectors []product.BucketedSector) *Service {
	s := &Service{store: soa.NewStore[string, PV01Entry](), sectors: sectors}
	for id, pv01 := range perUnit {
		s.store.Set(id, PV01Entry{Key: id, PV01: pv01, Quantity: 0})
	}
	return s
}

func (s *Service) Get(id string) (PV01Entry, bool) { return s.store.Get(id) }

func (s *Service) AddListener(l soa.Listener[PV01Entry]) { s.listeners.Add(l) }

func (s *Service) Listeners() []soa.Listener[PV01Entry] { return s.listeners.All() }

// PositionListener feeds position updates into risk roll-up (listens on
// position's update channel, spec §4.8/§4.9).
type PositionListener struct {
	soa.BaseListener[position.Position]
	svc *Service
}

func NewPositionListener(svc *Service) *PositionListener {
	return &PositionListener{svc: svc}
}

func (l *PositionListener) ProcessUpdate(p position.Position) {
	l.svc.AddPosition(p)
}

// AddPosition looks up the PV01Entry by product id, replaces its aggregate
// quantity with position.Aggregate()+stored quantity (per-unit PV01
// unchanged), and notifies listeners via ProcessUpdate (spec §4.9).
func (s *Service) AddPosition(p position.Position) {
	entry, ok := s.store.Get(p.ProductID)
	if !ok {
		return
	}
	entry.Quantity += p.Aggregate()
	s.store.Set(p.ProductID, entry)
	s.listeners.NotifyUpdate(entry)
}

// UpdateBucketedRisk sums signed quantities and PV01-weighted quantities
// across sector's constituents, stores the result under sector.Name, and
// returns it. Per-unit bucket PV01 is 0 when total quantity is 0
// (spec §4.9).
func (s *Service) UpdateBucketedRisk(sector product.BucketedSector) PV01Entry {
	var totalQty int64
	weighted := decimal.Zero
	for _, bond := range sector.Constituents {
		entry, ok := s.store.Get(bond.Identifier)
		if !ok {
			continue
		}
		totalQty += entry.Quantity
		weighted = weighted.Add(entry.PV01.Mul(decimal.New(entry.Quantity, 0)))
	}

	bucketPV01 := decimal.Zero
	if totalQty != 0 {
		bucketPV01 = weighted.Div(decimal.New(totalQty, 0))
	}

	bucket := PV01Entry{Key: sector.Name, PV01: bucketPV01, Quantity: totalQty}
	s.store.Set(sector.Name, bucket)
	return bucket
}

// GetBucketedRisk looks up a previously computed bucket by name. It fails
// (spec §4.9/§7) when the sector has never been updated.
func (s *Service) GetBucketedRisk(sectorName string) (PV01Entry, error) {
	entry, ok := s.store.Get(sectorName)
	if !ok {
		return PV01Entry{}, fmt.Errorf("risk: unknown bucketed sector %q", sectorName)
	}
	return entry, nil
}

// Sectors returns the configured bucketed-sector universe.
func (s *Service) Sectors() []product.BucketedSector { return s.sectors }

// SectorFor returns the bucketed sector containing bond, if any.
func (s *Service) SectorFor(bond product.Bond) (product.BucketedSector, bool) {
	for _, sector := range s.sectors {
		if sector.Contains(bond) {
			return sector, true
		}
	}
	return product.BucketedSector{}, false
}
