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

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// tick256 is one 256th of a dollar, the finest grid a bond price string can
// express.
var tick256 = decimal.New(1, 0).Div(decimal.New(256, 0))

// ParsePrice parses the canonical "whole-32nds[eighth]" bond price string,
// e.g. "100-25+" = 100 + 25/32 + 4/256 (the '+' half-tick is 4/256ths).
func ParsePrice(s string) (decimal.Decimal, error) {
	whole, frac, ok := strings.Cut(s, "-")
	if !ok || len(frac) < 3 {
		return decimal.Decimal{}, fmt.Errorf("product: malformed price %q", s)
	}
	wholePart, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("product: malformed price %q: %w", s, err)
	}
	thirtySeconds, err := strconv.ParseInt(frac[:2], 10, 64)
	if err != nil || thirtySeconds < 0 || thirtySeconds > 31 {
		return decimal.Decimal{}, fmt.Errorf("product: malformed price %q: bad 32nds", s)
	}
	var eighth int64
	switch frac[2] {
	case '+':
		eighth = 4
	default:
		digit, err := strconv.ParseInt(frac[2:3], 10, 64)
		if err != nil || digit < 0 || digit > 7 {
			return decimal.Decimal{}, fmt.Errorf("product: malformed price %q: bad 256ths", s)
		}
		eighth = digit
	}

	ticks := thirtySeconds*8 + eighth
	result := decimal.New(wholePart, 0).Add(tick256.Mul(decimal.New(ticks, 0)))
	return result, nil
}

// FormatPrice renders p as the canonical "whole-32nds[eighth]" string. It is
// the exact inverse of ParsePrice: FormatPrice(must(ParsePrice(s))) == s for
// every s ParsePrice accepts.
func FormatPrice(p decimal.Decimal) string {
	whole := p.Truncate(0)
	frac := p.Sub(whole)
	ticks := frac.Div(tick256).Round(0).IntPart()

	thirtySeconds := ticks / 8
	eighth := ticks % 8

	var eighthStr string
	if eighth == 4 {
		eighthStr = "+"
	} else {
		eighthStr = strconv.FormatInt(eighth, 10)
	}
	return fmt.Sprintf("%s-%02d%s", whole.String(), thirtySeconds, eighthStr)
}

// MustParsePrice is ParsePrice for compile-time-known constants (seed data,
// tests); it panics on a malformed string instead of returning an error.
func MustParsePrice(s string) decimal.Decimal {
	p, err := ParsePrice(s)
	if err != nil {
		panic(err)
	}
	return p
}
