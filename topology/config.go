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

package topology

import "path/filepath"

// Config carries the filesystem layout a Topology reads from and writes
// to. Paths default to the reference's hard-coded "./DataGenerator/" but
// are resolved relative to DataRoot so a test or an alternate deployment
// can point elsewhere (SPEC_FULL.md §2).
type Config struct {
	DataRoot string

	GUIInterval int64 // milliseconds between GUI emits
	GUICap      int   // max GUI emits
}

// NewConfig returns a Config with the reference's defaults.
func NewConfig(dataRoot string) *Config {
	if dataRoot == "" {
		dataRoot = "./DataGenerator"
	}
	return &Config{
		DataRoot:    dataRoot,
		GUIInterval: 300,
		GUICap:      100,
	}
}

func (c *Config) path(name string) string {
	return filepath.Join(c.DataRoot, name)
}

func (c *Config) TradesPath() string      { return c.path("trades.csv") }
func (c *Config) PricesPath() string      { return c.path("prices.csv") }
func (c *Config) MarketDataPath() string  { return c.path("marketdata.csv") }
func (c *Config) InquiriesPath() string   { return c.path("inquiries.csv") }
func (c *Config) PositionOutPath() string { return c.path("position.txt") }
func (c *Config) RiskOutPath() string     { return c.path("risk.txt") }
func (c *Config) ExecutionOutPath() string { return c.path("execution.txt") }
func (c *Config) StreamingOutPath() string { return c.path("streaming.txt") }
func (c *Config) GUIOutPath() string       { return c.path("gui.txt") }
func (c *Config) InquiriesOutPath() string { return c.path("allinquiries.txt") }
