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

// Package tradebooking books Trades into one of three sub-ledgers, either
// read directly off trades.csv or synthesized from a routed execution
// (spec §4.7).
package tradebooking

import "github.com/shopspring/decimal"

type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

type BookID string

const (
	Book1 BookID = "TRSY1"
	Book2 BookID = "TRSY2"
	Book3 BookID = "TRSY3"
)

var books = []BookID{Book1, Book2, Book3}

// Trade is keyed by TradeID, not product id (spec §3 invariant).
type Trade struct {
	ProductID string
	TradeID   string
	Price     decimal.Decimal
	Book      BookID
	Quantity  int64
	Side      Side
}
