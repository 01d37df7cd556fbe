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

// Package algostreaming turns a two-way PriceQuote into a two-sided
// iceberg PriceStream (spec §4.5).
package algostreaming

import "github.com/shopspring/decimal"

type Side string

const (
	SideBid   Side = "BID"
	SideOffer Side = "OFFER"
)

// PriceStreamOrder is one side of a PriceStream.
type PriceStreamOrder struct {
	Price      decimal.Decimal
	VisibleQty int64
	HiddenQty  int64
	Side       Side
}

// PriceStream is a product's two-sided streamable quote.
type PriceStream struct {
	ProductID string
	Bid       PriceStreamOrder
	Offer     PriceStreamOrder
}
