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

// Package marketdata ingests order books keyed by product id and exposes
// the best-bid/offer and aggregated-depth views the algo-execution service
// consumes.
package marketdata

import "github.com/shopspring/decimal"

type Side string

const (
	SideBid    Side = "BID"
	SideOffer  Side = "OFFER"
)

// Order is one resting price level in an OrderBook. Immutable once built.
type Order struct {
	Price    decimal.Decimal
	Quantity int64
	Side     Side
}

// OrderBook is a product's full depth: bid orders and offer orders, in
// file order.
type OrderBook struct {
	ProductID string
	Bids      []Order
	Offers    []Order
}

// BidOffer is the best-bid/best-offer pair for a product. Field naming
// matches the spec's deliberately preserved inversion: BidPrice actually
// carries the best OFFER's price and vice versa (see Service.BestBidOffer).
type BidOffer struct {
	ProductID  string
	BidPrice   decimal.Decimal
	BidQty     int64
	OfferPrice decimal.Decimal
	OfferQty   int64
}
