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

// Package inquiry runs the client-inquiry state machine: RECEIVED, quote,
// and resolution, each transition re-published through the fabric
// (spec §4.10).
package inquiry

import "github.com/shopspring/decimal"

type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

type State string

const (
	StateReceived         State = "RECEIVED"
	StateQuoted           State = "QUOTED"
	StateDone             State = "DONE"
	StateRejected         State = "REJECTED"
	StateCustomerRejected State = "CUSTOMER_REJECTED"
)

// Inquiry is keyed by InquiryID, not product id (spec §3 invariant).
type Inquiry struct {
	InquiryID string
	ProductID string
	Side      Side
	Quantity  int64
	Price     decimal.Decimal
	State     State
}

// withState returns a copy of i transitioned to state.
func (i Inquiry) withState(state State) Inquiry {
	i.State = state
	return i
}

// withPrice returns a copy of i with a new price, state unchanged.
func (i Inquiry) withPrice(price decimal.Decimal) Inquiry {
	i.Price = price
	return i
}
