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
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/Rick-LHC/treasury-fabric-go/algoexecution"
	"github.com/Rick-LHC/treasury-fabric-go/algostreaming"
	"github.com/Rick-LHC/treasury-fabric-go/execution"
	"github.com/Rick-LHC/treasury-fabric-go/gui"
	"github.com/Rick-LHC/treasury-fabric-go/historical"
	"github.com/Rick-LHC/treasury-fabric-go/inquiry"
	"github.com/Rick-LHC/treasury-fabric-go/marketdata"
	"github.com/Rick-LHC/treasury-fabric-go/position"
	"github.com/Rick-LHC/treasury-fabric-go/pricing"
	"github.com/Rick-LHC/treasury-fabric-go/product"
	"github.com/Rick-LHC/treasury-fabric-go/risk"
	"github.com/Rick-LHC/treasury-fabric-go/streaming"
	"github.com/Rick-LHC/treasury-fabric-go/tradebooking"
)

// Topology owns every service, listener, and connector in the fabric. It
// is constructed once at startup and torn down at exit (spec §5:
// "Process-wide state is confined to the topology object").
type Topology struct {
	cfg      *Config
	Universe Universe

	Products    *product.Service
	MarketData  *marketdata.Service
	AlgoExec    *algoexecution.Service
	Execution   *execution.Service
	TradeBook   *tradebooking.Service
	Position    *position.Service
	Risk        *risk.Service
	Pricing     *pricing.Service
	AlgoStream  *algostreaming.Service
	Streaming   *streaming.Service
	Inquiry     *inquiry.Service
	GUIListener *gui.Listener

	tradesConnector     *tradebooking.Connector
	marketDataConnector *marketdata.Connector
	pricesConnector     *pricing.Connector
	inquiryConnector    *inquiry.Connector

	positionOut  *os.File
	riskOut      *os.File
	executionOut *os.File
	streamingOut *os.File
	guiOut       *os.File
	inquiriesOut *os.File
}

// wireOutputs opens every output file (append-on-write, spec §1 Non-goals:
// "Persistence durability guarantees beyond append-on-write to a text
// file") and records them for Close.
func (t *Topology) wireOutputs() error {
	open := func(path string) (*os.File, error) {
		return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	}

	var err error
	if t.positionOut, err = open(t.cfg.PositionOutPath()); err != nil {
		return err
	}
	if t.riskOut, err = open(t.cfg.RiskOutPath()); err != nil {
		return err
	}
	if t.executionOut, err = open(t.cfg.ExecutionOutPath()); err != nil {
		return err
	}
	if t.streamingOut, err = open(t.cfg.StreamingOutPath()); err != nil {
		return err
	}
	if t.guiOut, err = open(t.cfg.GUIOutPath()); err != nil {
		return err
	}
	if t.inquiriesOut, err = open(t.cfg.InquiriesOutPath()); err != nil {
		return err
	}
	return nil
}

// sink wraps an output file as a historical.Sink.
func (t *Topology) sink(f *os.File) *historical.Sink {
	return historical.NewSink(f, nil)
}

// Build wires every service, listener, and connector in the order the
// reference's main() does: trade-booking -> position -> risk/position
// history first, then market-data -> algo-execution -> execution ->
// trade-booking bridge/execution history, then pricing -> algo-streaming ->
// streaming -> streaming history and pricing -> GUI, then inquiry and its
// self-listener/history.
func Build(cfg *Config) (*Topology, error) {
	universe := DefaultUniverse()

	products := product.NewService()
	for _, b := range universe.Bonds {
		products.Add(b)
	}

	t := &Topology{cfg: cfg, Universe: universe, Products: products}

	if err := t.wireOutputs(); err != nil {
		return nil, err
	}

	// Trade-booking -> position -> risk.
	t.TradeBook = tradebooking.NewService(products)
	t.Position = position.NewService(products, Ticker)
	t.Risk = risk.NewService(universe.PV01, universe.Sectors)

	t.TradeBook.AddListener(position.NewTradeBookingListener(t.Position))
	t.Position.AddListener(risk.NewPositionListener(t.Risk))

	positionHist := historical.NewPositionService(t.sink(t.positionOut))
	t.Position.AddListener(positionHist)

	riskHist := historical.NewRiskService(t.sink(t.riskOut), products, t.Risk)
	t.Risk.AddListener(riskHist)

	t.tradesConnector = tradebooking.NewConnector(t.TradeBook, products)

	// Market-data -> algo-execution -> execution -> trade-booking bridge.
	t.MarketData = marketdata.NewService()
	t.AlgoExec = algoexecution.NewService(products)
	t.Execution = execution.NewService(rand.New(rand.NewSource(time.Now().UnixNano())))

	t.MarketData.AddListener(algoexecution.NewMarketdataListener(t.AlgoExec, t.MarketData))
	t.AlgoExec.AddListener(execution.NewAlgoExecutionListener(t.Execution))
	t.Execution.AddListener(tradebooking.NewExecutionListener(t.TradeBook))

	executionHist := historical.NewExecutionService(t.sink(t.executionOut))
	t.Execution.AddListener(executionHist)

	t.marketDataConnector = marketdata.NewConnector(t.MarketData, products)

	// Pricing -> algo-streaming -> streaming, and pricing -> GUI.
	t.Pricing = pricing.NewService()
	t.AlgoStream = algostreaming.NewService()
	t.Streaming = streaming.NewService()

	t.Pricing.AddListener(algostreaming.NewPricingListener(t.AlgoStream))
	t.AlgoStream.AddListener(streaming.NewAlgoStreamingListener(t.Streaming))

	streamingHist := historical.NewStreamingService(t.sink(t.streamingOut))
	t.Streaming.AddListener(streamingHist)

	guiSink := t.sink(t.guiOut)
	t.GUIListener = gui.NewListener(
		time.Duration(cfg.GUIInterval)*time.Millisecond,
		cfg.GUICap,
		time.Now,
		func(tick gui.Tick) { guiSink.WriteLine("%s %s", tick.ProductID, tick.Mid) },
	)
	t.Pricing.AddListener(t.GUIListener)

	t.pricesConnector = pricing.NewConnector(t.Pricing, products)

	// Inquiry lifecycle.
	t.Inquiry = inquiry.NewService()
	t.inquiryConnector = inquiry.NewConnector(t.Inquiry, products)
	t.Inquiry.SetConnector(t.inquiryConnector)
	t.Inquiry.AddListener(inquiry.NewQuoteListener(t.Inquiry))

	inquiryHist := historical.NewInquiryService(t.sink(t.inquiriesOut))
	t.Inquiry.AddListener(inquiryHist)

	return t, nil
}

// Run replays every subscribe connector's file to completion, in sequence
// (spec §5: "the driver runs them sequentially — no interleaving").
func (t *Topology) Run() error {
	if err := t.runConnector("trades", t.cfg.TradesPath(), t.tradesConnector.Run); err != nil {
		return err
	}
	if err := t.runConnector("marketdata", t.cfg.MarketDataPath(), t.marketDataConnector.Run); err != nil {
		return err
	}
	if err := t.runConnector("prices", t.cfg.PricesPath(), t.pricesConnector.Run); err != nil {
		return err
	}
	if err := t.runConnector("inquiries", t.cfg.InquiriesPath(), t.inquiryConnector.Run); err != nil {
		return err
	}
	return nil
}

func (t *Topology) runConnector(label, path string, run func(r io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("topology: %s: %v", label, err)
		return nil
	}
	defer f.Close()

	sw := Start(label)
	defer sw.Stop()
	return run(f)
}

// Close releases every output file Build opened.
func (t *Topology) Close() {
	for _, f := range []*os.File{t.positionOut, t.riskOut, t.executionOut, t.streamingOut, t.guiOut, t.inquiriesOut} {
		if f != nil {
			f.Close()
		}
	}
}
