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

package product

import "testing"

func TestServiceGetMiss(t *testing.T) {
	s := NewService()
	if _, ok := s.Get("unknown"); ok {
		t.Error("expected a miss on an empty store")
	}
}

func TestServiceAddAndGet(t *testing.T) {
	s := NewService()
	bond := NewBond("CUSIP1", IdentifierCUSIP, "T", 2.5, "2030-01-01")
	s.Add(bond)

	got, ok := s.Get("CUSIP1")
	if !ok || got.Ticker != "T" {
		t.Fatalf("Get(CUSIP1) = %+v, %v, want ticker T", got, ok)
	}
}

func TestBondsForTicker(t *testing.T) {
	s := NewService()
	s.Add(NewBond("CUSIP1", IdentifierCUSIP, "T", 2.5, "2030-01-01"))
	s.Add(NewBond("CUSIP2", IdentifierCUSIP, "X", 2.5, "2030-01-01"))
	s.Add(NewBond("CUSIP3", IdentifierCUSIP, "T", 3.0, "2035-01-01"))

	bonds := s.BondsForTicker("T")
	if len(bonds) != 2 {
		t.Fatalf("len(BondsForTicker(T)) = %d, want 2", len(bonds))
	}
	for _, b := range bonds {
		if b.Ticker != "T" {
			t.Errorf("unexpected ticker %s in BondsForTicker(T)", b.Ticker)
		}
	}
}

func TestBucketedSectorContains(t *testing.T) {
	b1 := NewBond("CUSIP1", IdentifierCUSIP, "T", 2.5, "2030-01-01")
	b2 := NewBond("CUSIP2", IdentifierCUSIP, "T", 2.5, "2035-01-01")
	sector := BucketedSector{Name: "Belly", Constituents: []Bond{b1}}

	if !sector.Contains(b1) {
		t.Error("expected sector to contain b1")
	}
	if sector.Contains(b2) {
		t.Error("expected sector not to contain b2")
	}
}
