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

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultUniverseSixDistinctBonds(t *testing.T) {
	u := DefaultUniverse()
	if len(u.Bonds) != 6 {
		t.Fatalf("len(Bonds) = %d, want 6", len(u.Bonds))
	}
	seen := make(map[string]bool, len(u.Bonds))
	for _, b := range u.Bonds {
		if seen[b.Identifier] {
			t.Errorf("duplicate CUSIP %s in seed universe", b.Identifier)
		}
		seen[b.Identifier] = true
		if _, ok := u.PV01[b.Identifier]; !ok {
			t.Errorf("no PV01 entry for %s", b.Identifier)
		}
	}
}

func TestDefaultUniverseSectorsCoverEveryBond(t *testing.T) {
	u := DefaultUniverse()
	var covered int
	for _, sector := range u.Sectors {
		covered += len(sector.Constituents)
	}
	if covered != len(u.Bonds) {
		t.Errorf("sector constituent count = %d, want %d (one sector membership per bond)", covered, len(u.Bonds))
	}
}

func TestConfigDefaultPaths(t *testing.T) {
	cfg := NewConfig("")
	if cfg.DataRoot != "./DataGenerator" {
		t.Errorf("DataRoot = %s, want ./DataGenerator", cfg.DataRoot)
	}
	if cfg.TradesPath() != filepath.Join("./DataGenerator", "trades.csv") {
		t.Errorf("TradesPath() = %s", cfg.TradesPath())
	}
}

// TestBuildWiresEveryService constructs a full Topology against a temp data
// root and confirms every product in the seed universe is reachable through
// position and risk right after Build (zero-seeded, per spec §3/§4.8).
func TestBuildWiresEveryService(t *testing.T) {
	dir := t.TempDir()
	cfg := NewConfig(dir)

	top, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer top.Close()

	for _, b := range top.Universe.Bonds {
		if _, ok := top.Position.Get(b.Identifier); !ok {
			t.Errorf("expected a zero-seeded position for %s", b.Identifier)
		}
		if _, ok := top.Risk.Get(b.Identifier); !ok {
			t.Errorf("expected a seeded PV01 entry for %s", b.Identifier)
		}
	}

	for _, name := range []string{"position.txt", "risk.txt", "execution.txt", "streaming.txt", "gui.txt", "allinquiries.txt"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected output file %s to exist: %v", name, err)
		}
	}
}

// TestRunSkipsMissingInputFiles confirms a missing connector input logs and
// continues rather than failing the whole replay (spec §7: missing files
// are tolerated, not fatal).
func TestRunSkipsMissingInputFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := NewConfig(dir)

	top, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer top.Close()

	if err := top.Run(); err != nil {
		t.Fatalf("Run() with no input files present: %v", err)
	}
}

func TestStopwatchStartStop(t *testing.T) {
	sw := Start("test")
	sw.Stop() // must not panic; logs elapsed time
}
