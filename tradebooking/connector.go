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

package tradebooking

import (
	"encoding/csv"
	"io"
	"log"
	"strconv"

	"github.com/Rick-LHC/treasury-fabric-go/product"
)

const progressEvery = 6000

// Connector is trades.csv's subscribe connector. Columns:
// TradeID,BondIDType,BondID,Side,Quantity,Price,BookId.
type Connector struct {
	svc      *Service
	products *product.Service
}

func NewConnector(svc *Service, products *product.Service) *Connector {
	return &Connector{svc: svc, products: products}
}

func (c *Connector) Run(r io.Reader) error {
	reader := csv.NewReader(r)
	if _, err := reader.Read(); err != nil {
		return err
	}

	count := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("tradebooking: read error: %v", err)
			continue
		}
		trade, ok := c.parse(rec)
		if !ok {
			continue
		}
		c.svc.OnMessage(trade)
		count++
		if count%progressEvery == 0 {
			log.Printf("tradebooking: %d records processed", count)
		}
	}
	return nil
}

func (c *Connector) parse(rec []string) (Trade, bool) {
	if len(rec) < 7 {
		log.Printf("tradebooking: malformed record, skipping: %v", rec)
		return Trade{}, false
	}
	bondID := rec[2]
	if _, ok := c.products.Get(bondID); !ok {
		log.Printf("tradebooking: unknown product %s, skipping", bondID)
		return Trade{}, false
	}
	side := Side(rec[3])
	if side != SideBuy && side != SideSell {
		log.Printf("tradebooking: bad side %q, skipping", rec[3])
		return Trade{}, false
	}
	qty, err := strconv.ParseInt(rec[4], 10, 64)
	if err != nil {
		log.Printf("tradebooking: bad quantity %q: %v", rec[4], err)
		return Trade{}, false
	}
	price, err := product.ParsePrice(rec[5])
	if err != nil {
		log.Printf("tradebooking: bad price %q: %v", rec[5], err)
		return Trade{}, false
	}
	return Trade{
		ProductID: bondID,
		TradeID:   rec[0],
		Price:     price,
		Book:      BookID(rec[6]),
		Quantity:  qty,
		Side:      side,
	}, true
}
