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

package historical

import (
	"github.com/Rick-LHC/treasury-fabric-go/execution"
	"github.com/Rick-LHC/treasury-fabric-go/soa"
)

// orderTypeLabels maps an order type to its execution.txt label. IOC is
// rendered "LOC" — a known label quirk of the reference, preserved exactly
// for byte-identical output (spec §6, §9 Open Question).
var orderTypeLabels = map[string]string{
	"FOK":    "FOK",
	"IOC":    "LOC",
	"LIMIT":  "LIMIT",
	"MARKET": "MARKET",
	"STOP":   "STOP",
}

// ExecutionService listens on execution's add channel and persists the full
// ExecutionOrder (spec §4.11, §6).
type ExecutionService struct {
	soa.BaseListener[execution.Execution]
	store *soa.Store[string, execution.Execution]
	sink  *Sink
}

func NewExecutionService(sink *Sink) *ExecutionService {
	return &ExecutionService{store: soa.NewStore[string, execution.Execution](), sink: sink}
}

func (s *ExecutionService) ProcessAdd(exec execution.Execution) {
	s.PersistData(exec)
}

func (s *ExecutionService) PersistData(exec execution.Execution) {
	s.store.Set(exec.ProductID, exec)
	label := orderTypeLabels[string(exec.OrderType)]
	s.sink.WriteLine("%s %s %s %s %s %s %d %d %s %t",
		exec.ProductID, exec.OrderID, exec.Side, label, exec.Price.String(),
		exec.Venue, exec.VisibleQty, exec.HiddenQty, exec.ParentOrderID, exec.IsChild)
}
