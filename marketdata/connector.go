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

package marketdata

import (
	"encoding/csv"
	"io"
	"log"
	"strconv"

	"github.com/Rick-LHC/treasury-fabric-go/product"
)

const depthLevels = 5
const progressEvery = 6000

// Connector is marketdata.csv's subscribe connector. Columns:
// BondIDType,BondID,Price,Spread1..Spread5,Size1..Size5. Each side is
// reconstructed at five depths as (mid ± Spread_i, Size_i) — the same
// Size_i is used for both the bid and the offer side at a given depth.
type Connector struct {
	svc      *Service
	products *product.Service
}

func NewConnector(svc *Service, products *product.Service) *Connector {
	return &Connector{svc: svc, products: products}
}

// Run reads every record from r (minus the header) and drives svc.OnMessage.
func (c *Connector) Run(r io.Reader) error {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return err
	}
	_ = header

	count := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("marketdata: read error: %v", err)
			continue
		}
		book, ok := c.parse(rec)
		if !ok {
			continue
		}
		c.svc.OnMessage(book)
		count++
		if count%progressEvery == 0 {
			log.Printf("marketdata: %d records processed", count)
		}
	}
	return nil
}

func (c *Connector) parse(rec []string) (OrderBook, bool) {
	if len(rec) < 2+1+depthLevels+depthLevels {
		log.Printf("marketdata: malformed record, skipping: %v", rec)
		return OrderBook{}, false
	}
	bondID := rec[1]
	if _, ok := c.products.Get(bondID); !ok {
		log.Printf("marketdata: unknown product %s, skipping", bondID)
		return OrderBook{}, false
	}
	mid, err := product.ParsePrice(rec[2])
	if err != nil {
		log.Printf("marketdata: bad price %q: %v", rec[2], err)
		return OrderBook{}, false
	}

	book := OrderBook{ProductID: bondID}
	for i := 0; i < depthLevels; i++ {
		spread, err := product.ParsePrice(rec[3+i])
		if err != nil {
			log.Printf("marketdata: bad spread %q: %v", rec[3+i], err)
			return OrderBook{}, false
		}
		size, err := strconv.ParseInt(rec[3+depthLevels+i], 10, 64)
		if err != nil {
			log.Printf("marketdata: bad size %q: %v", rec[3+depthLevels+i], err)
			return OrderBook{}, false
		}
		book.Bids = append(book.Bids, Order{Price: mid.Sub(spread), Quantity: size, Side: SideBid})
		book.Offers = append(book.Offers, Order{Price: mid.Add(spread), Quantity: size, Side: SideOffer})
	}
	return book, true
}
