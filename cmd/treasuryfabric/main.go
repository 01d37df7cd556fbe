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

package main

import (
	"flag"
	"log"

	"github.com/Rick-LHC/treasury-fabric-go/console"
	"github.com/Rick-LHC/treasury-fabric-go/topology"
)

func main() {
	dataRoot := flag.String("data", "", "directory holding trades.csv, prices.csv, marketdata.csv, inquiries.csv (default ./DataGenerator)")
	interactive := flag.Bool("console", true, "open the operator console after replay completes")
	flag.Parse()

	cfg := topology.NewConfig(*dataRoot)

	t, err := topology.Build(cfg)
	if err != nil {
		log.Fatalf("treasuryfabric: build: %v", err)
	}
	defer t.Close()

	if err := t.Run(); err != nil {
		log.Fatalf("treasuryfabric: run: %v", err)
	}

	if *interactive {
		console.Repl(t)
	}
}
