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

package pricing

import (
	"encoding/csv"
	"io"
	"log"

	"github.com/Rick-LHC/treasury-fabric-go/product"
)

const progressEvery = 60000

// Connector is prices.csv's subscribe connector. Columns:
// BondIDType,BondID,Price,Spread.
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
			log.Printf("pricing: read error: %v", err)
			continue
		}
		quote, ok := c.parse(rec)
		if !ok {
			continue
		}
		c.svc.OnMessage(quote)
		count++
		if count%progressEvery == 0 {
			log.Printf("pricing: %d records processed", count)
		}
	}
	return nil
}

func (c *Connector) parse(rec []string) (PriceQuote, bool) {
	if len(rec) < 4 {
		log.Printf("pricing: malformed record, skipping: %v", rec)
		return PriceQuote{}, false
	}
	bondID := rec[1]
	if _, ok := c.products.Get(bondID); !ok {
		log.Printf("pricing: unknown product %s, skipping", bondID)
		return PriceQuote{}, false
	}
	mid, err := product.ParsePrice(rec[2])
	if err != nil {
		log.Printf("pricing: bad price %q: %v", rec[2], err)
		return PriceQuote{}, false
	}
	spread, err := product.ParsePrice(rec[3])
	if err != nil {
		log.Printf("pricing: bad spread %q: %v", rec[3], err)
		return PriceQuote{}, false
	}
	return PriceQuote{ProductID: bondID, Mid: mid, Spread: spread}, true
}
