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

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want string // decimal.String()
	}{
		{"100-000", "100"},
		{"100-25+", "100.796875"}, // 100 + 25/32 + 4/256
		{"99-31+", "99.984375"},
		{"0-000", "0"},
	}
	for _, c := range cases {
		got, err := ParsePrice(c.in)
		if err != nil {
			t.Fatalf("ParsePrice(%q): %v", c.in, err)
		}
		if got.String() != c.want {
			t.Errorf("ParsePrice(%q) = %s, want %s", c.in, got.String(), c.want)
		}
	}
}

func TestPriceRoundTrip(t *testing.T) {
	samples := []string{"100-000", "100-25+", "99-31+", "100-010", "0-040", "123-317"}
	for _, s := range samples {
		p, err := ParsePrice(s)
		if err != nil {
			t.Fatalf("ParsePrice(%q): %v", s, err)
		}
		got := FormatPrice(p)
		if got != s {
			t.Errorf("round-trip %q -> %q", s, got)
		}
	}
}

func TestParsePriceMalformed(t *testing.T) {
	for _, s := range []string{"", "100", "100-3", "100-ab+", "abc-00"} {
		if _, err := ParsePrice(s); err == nil {
			t.Errorf("ParsePrice(%q): expected error", s)
		}
	}
}

func BenchmarkParsePrice(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParsePrice("100-25+")
	}
}

func BenchmarkFormatPrice(b *testing.B) {
	p := MustParsePrice("100-25+")
	for i := 0; i < b.N; i++ {
		_ = FormatPrice(p)
	}
}
