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

// Package console is an interactive operator REPL over a live topology: an
// inspector whose only write is the `reject` command, not a new transport
// (SPEC_FULL.md §3, §6).
package console

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Rick-LHC/treasury-fabric-go/position"
	"github.com/Rick-LHC/treasury-fabric-go/risk"
	"github.com/Rick-LHC/treasury-fabric-go/topology"
)

// Snapshot is a consistent cross-service read gathered by Watch.
type Snapshot struct {
	SessionID string
	Positions []position.Position
	Bucketed  []risk.PV01Entry
}

// Watch fans out read-only Get/GetAll-style calls across services through
// an errgroup, the only place in this module where concurrent access to
// service stores is legitimate: it runs outside the single-threaded replay
// loop (spec §5), strictly after ingest, and never mutates a store.
func Watch(ctx context.Context, t *topology.Topology) (Snapshot, error) {
	snap := Snapshot{SessionID: uuid.NewString()}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		var positions []position.Position
		for _, b := range t.Universe.Bonds {
			if p, ok := t.Position.Get(b.Identifier); ok {
				positions = append(positions, p)
			}
		}
		snap.Positions = positions
		return nil
	})

	g.Go(func() error {
		var bucketed []risk.PV01Entry
		for _, sector := range t.Risk.Sectors() {
			if entry, err := t.Risk.GetBucketedRisk(sector.Name); err == nil {
				bucketed = append(bucketed, entry)
			}
		}
		snap.Bucketed = bucketed
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
