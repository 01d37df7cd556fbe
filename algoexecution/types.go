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

// Package algoexecution watches market-data updates for a tight enough
// spread and, when found, synthesizes an executable child ExecutionOrder.
package algoexecution

import "github.com/shopspring/decimal"

type Side string

const (
	SideBid   Side = "BID"
	SideOffer Side = "OFFER"
)

type OrderType string

const (
	OrderTypeFOK    OrderType = "FOK"
	OrderTypeIOC    OrderType = "IOC"
	OrderTypeLimit  OrderType = "LIMIT"
	OrderTypeMarket OrderType = "MARKET"
	OrderTypeStop   OrderType = "STOP"
)

// ExecutionOrder is a synthesized child order, keyed downstream by
// ProductID. ParentOrderID is "N/A" and IsChild false for every order this
// service emits (spec §4.3).
type ExecutionOrder struct {
	ProductID     string
	Side          Side
	OrderID       string
	OrderType     OrderType
	Price         decimal.Decimal
	VisibleQty    int64
	HiddenQty     int64
	ParentOrderID string
	IsChild       bool
}
