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

// Package topology wires the fixed service/listener/connector graph and
// carries the supplemented seed data (bond universe, PV01 table, bucketed
// sectors) the reference system's main() builds at startup.
package topology

import (
	"github.com/shopspring/decimal"

	"github.com/Rick-LHC/treasury-fabric-go/product"
)

// Ticker is the single ticker this desk trades, matching the reference.
const Ticker = "T"

// Universe is the seeded bond universe, PV01 table, and bucketed sectors a
// fresh topology is built from (SPEC_FULL.md §5.1).
type Universe struct {
	Bonds   []product.Bond
	PV01    map[string]decimal.Decimal
	Sectors []product.BucketedSector
}

// DefaultUniverse reproduces main.cpp's seed data: six on-the-run
// Treasuries, their per-unit PV01, and three bucketed sectors. The 10Y's
// CUSIP is corrected from the source's apparent typo (see DESIGN.md
// "Supplemented-feature deviation") so every bond keys its own store entry.
func DefaultUniverse() Universe {
	bond2y := product.NewBond("9128285M8", product.IdentifierCUSIP, Ticker, 2.750, "2020-11-30")
	bond3y := product.NewBond("9128285P1", product.IdentifierCUSIP, Ticker, 2.750, "2021-11-30")
	bond5y := product.NewBond("9128285R7", product.IdentifierCUSIP, Ticker, 2.880, "2023-11-30")
	bond7y := product.NewBond("9128285N6", product.IdentifierCUSIP, Ticker, 2.880, "2025-11-30")
	bond10y := product.NewBond("9128285J0", product.IdentifierCUSIP, Ticker, 3.130, "2028-11-30")
	bond30y := product.NewBond("9128285B5", product.IdentifierCUSIP, Ticker, 3.380, "2048-11-30")

	pv01 := map[string]decimal.Decimal{
		bond2y.Identifier:  decimal.NewFromFloat(0.0134),
		bond3y.Identifier:  decimal.NewFromFloat(0.01034),
		bond5y.Identifier:  decimal.NewFromFloat(0.0172),
		bond7y.Identifier:  decimal.NewFromFloat(0.02391),
		bond10y.Identifier: decimal.NewFromFloat(0.02),
		bond30y.Identifier: decimal.NewFromFloat(0.0286),
	}

	sectors := []product.BucketedSector{
		{Name: "FrontEnd", Constituents: []product.Bond{bond2y, bond3y}},
		{Name: "Belly", Constituents: []product.Bond{bond5y, bond7y, bond10y}},
		{Name: "LongEnd", Constituents: []product.Bond{bond30y}},
	}

	return Universe{
		Bonds:   []product.Bond{bond2y, bond3y, bond5y, bond7y, bond10y, bond30y},
		PV01:    pv01,
		Sectors: sectors,
	}
}
