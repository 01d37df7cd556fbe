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

// Package pricing ingests two-way mid/spread quotes, the root of the
// streaming and GUI chains (spec §4.5, §4.12).
package pricing

import "github.com/shopspring/decimal"

// PriceQuote is a product's mid price and bid/offer spread. Bid and Offer
// are derived, not stored (spec §3).
type PriceQuote struct {
	ProductID string
	Mid       decimal.Decimal
	Spread    decimal.Decimal
}

// Bid returns mid - spread/2.
func (q PriceQuote) Bid() decimal.Decimal {
	return q.Mid.Sub(q.Spread.Div(decimal.New(2, 0)))
}

// Offer returns mid + spread/2.
func (q PriceQuote) Offer() decimal.Decimal {
	return q.Mid.Add(q.Spread.Div(decimal.New(2, 0)))
}
