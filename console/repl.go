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

package console

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/chzyer/readline"

	"github.com/Rick-LHC/treasury-fabric-go/topology"
)

// Repl runs the interactive desk inspector over a built topology. Every
// command only reads the replayed state except `reject`, which republishes
// an inquiry as REJECTED through the inquiry service (SPEC_FULL.md §5
// item 5); no command injects market data, prices or trades.
func Repl(t *topology.Topology) {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("md"),
		readline.PcItem("position"),
		readline.PcItem("risk"),
		readline.PcItem("orders"),
		readline.PcItem("inquiries"),
		readline.PcItem("reject"),
		readline.PcItem("status"),
		readline.PcItem("watch"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "treasury> ",
		HistoryFile:     "/tmp/treasuryfabric_history",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Printf("console: failed to create readline: %v", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}

		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) == 0 {
			continue
		}

		switch strings.ToLower(parts[0]) {
		case "md":
			handleMd(t, parts)
		case "position":
			handlePosition(t, parts)
		case "risk":
			handleRisk(t, parts)
		case "orders":
			handleOrders(t, parts)
		case "inquiries":
			handleInquiries(t, parts)
		case "reject":
			handleReject(t, parts)
		case "status":
			handleStatus(t)
		case "watch":
			handleWatch(t)
		case "help":
			displayHelp()
		case "exit":
			return
		default:
			fmt.Println("Unknown command. Type 'help' for available commands.")
		}
	}
}

func handleMd(t *topology.Topology, parts []string) {
	if len(parts) < 2 {
		fmt.Println("Usage: md <productId>")
		return
	}
	bo, ok := t.MarketData.BestBidOffer(parts[1])
	if !ok {
		fmt.Printf("No market data for %s\n", parts[1])
		return
	}
	fmt.Printf("%-12s bid %s@%d offer %s@%d\n", bo.ProductID, bo.BidPrice, bo.BidQty, bo.OfferPrice, bo.OfferQty)
}

func handlePosition(t *topology.Topology, parts []string) {
	if len(parts) < 2 {
		fmt.Println("Usage: position <productId>")
		return
	}
	p, ok := t.Position.Get(parts[1])
	if !ok {
		fmt.Printf("No position for %s\n", parts[1])
		return
	}
	fmt.Printf("%-12s net %d\n", p.ProductID, p.Aggregate())
}

func handleRisk(t *topology.Topology, parts []string) {
	if len(parts) < 2 {
		fmt.Println("Usage: risk <productId|sectorName>")
		return
	}
	if entry, err := t.Risk.GetBucketedRisk(parts[1]); err == nil {
		fmt.Printf("%-12s pv01 %s qty %d\n", entry.Key, entry.PV01, entry.Quantity)
		return
	}
	entry, ok := t.Risk.Get(parts[1])
	if !ok {
		fmt.Printf("No risk entry for %s\n", parts[1])
		return
	}
	fmt.Printf("%-12s pv01 %s qty %d\n", entry.Key, entry.PV01, entry.Quantity)
}

func handleOrders(t *topology.Topology, parts []string) {
	if len(parts) < 2 {
		fmt.Println("Usage: orders <productId>")
		return
	}
	o, ok := t.AlgoExec.Get(parts[1])
	if !ok {
		fmt.Printf("No execution order for %s\n", parts[1])
		return
	}
	fmt.Printf("%-20s %-4s %-8s %s visible=%d hidden=%d\n", o.OrderID, o.Side, o.OrderType, o.Price, o.VisibleQty, o.HiddenQty)
}

func handleInquiries(t *topology.Topology, parts []string) {
	if len(parts) < 2 {
		fmt.Println("Usage: inquiries <inquiryId>")
		return
	}
	i, ok := t.Inquiry.Get(parts[1])
	if !ok {
		fmt.Printf("No inquiry %s\n", parts[1])
		return
	}
	fmt.Printf("%-12s %-10s %-8s state=%s price=%s\n", i.InquiryID, i.ProductID, i.Side, i.State, i.Price)
}

func handleReject(t *topology.Topology, parts []string) {
	if len(parts) < 2 {
		fmt.Println("Usage: reject <inquiryId>")
		return
	}
	t.Inquiry.RejectInquiry(parts[1])
	fmt.Printf("Rejected inquiry %s\n", parts[1])
}

func handleStatus(t *topology.Topology) {
	fmt.Printf("GUI ticks emitted: %d\n", t.GUIListener.Count())
	for _, b := range t.Universe.Bonds {
		p, _ := t.Position.Get(b.Identifier)
		fmt.Printf("  %-12s %-10s net %d\n", b.Identifier, b.Ticker, p.Aggregate())
	}
}

func handleWatch(t *topology.Topology) {
	snap, err := Watch(context.Background(), t)
	if err != nil {
		fmt.Printf("watch: %v\n", err)
		return
	}
	fmt.Printf("snapshot %s\n", snap.SessionID)
	for _, p := range snap.Positions {
		fmt.Printf("  position %-12s net %d\n", p.ProductID, p.Aggregate())
	}
	for _, b := range snap.Bucketed {
		fmt.Printf("  bucket   %-12s pv01 %s (%d)\n", b.Key, b.PV01, b.Quantity)
	}
}

func displayHelp() {
	fmt.Print(`Commands:
  md <productId>          - Show best bid/offer for a product
  position <productId>    - Show net position for a product
  risk <productId|sector> - Show PV01 for a product or bucketed sector
  orders <productId>      - Show the latest algo-execution order
  inquiries <inquiryId>   - Show an inquiry's current state
  reject <inquiryId>      - Reject an open inquiry
  status                  - Show GUI tick count and every position
  watch                   - Take a concurrent cross-service snapshot
  help                    - Show this message
  exit                    - Quit
`)
}
