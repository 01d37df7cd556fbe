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

// Package product carries the value types shared by every desk service:
// the Bond itself, bucketed sectors of bonds, and the canonical bond-price
// string format (32nds/256ths) used on every CSV boundary.
package product

import "time"

// IdentifierKind is the kind of identifier a Bond is keyed by.
type IdentifierKind string

const (
	IdentifierCUSIP IdentifierKind = "CUSIP"
	IdentifierISIN  IdentifierKind = "ISIN"
)

// Bond is immutable once constructed; every service keys its store by
// Identifier.
type Bond struct {
	Identifier     string
	IdentifierKind IdentifierKind
	Ticker         string
	Coupon         float64
	Maturity       time.Time
}

// NewBond constructs a Bond. Maturity is parsed as RFC3339 date-only
// ("2006-01-02"); a malformed date panics since bond seed data is a
// startup-time constant, not a runtime input (unlike CSV records, which
// never construct a Bond directly).
func NewBond(identifier string, kind IdentifierKind, ticker string, coupon float64, maturity string) Bond {
	t, err := time.Parse("2006-01-02", maturity)
	if err != nil {
		panic("product: invalid bond maturity " + maturity + ": " + err.Error())
	}
	return Bond{
		Identifier:     identifier,
		IdentifierKind: kind,
		Ticker:         ticker,
		Coupon:         coupon,
		Maturity:       t,
	}
}

// BucketedSector is a named group of bonds whose risk is rolled up jointly.
type BucketedSector struct {
	Name       string
	Constituents []Bond
}

// Contains reports whether b is one of the sector's constituents.
func (s BucketedSector) Contains(b Bond) bool {
	for _, c := range s.Constituents {
		if c.Identifier == b.Identifier {
			return true
		}
	}
	return false
}
