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

package inquiry

import (
	"encoding/csv"
	"io"
	"log"
	"strconv"

	"github.com/Rick-LHC/treasury-fabric-go/product"
)

// Connector is both inquiries.csv's subscribe connector and the inquiry
// service's publish connector: Run drives the initial RECEIVED ingest,
// Publish implements the re-injection branching described in spec §4.10.
//
// Pass-count decision (see DESIGN.md "Open Question decisions"): Publish
// re-injects once for REJECTED, twice (QUOTED then DONE) otherwise — three
// OnMessage passes per happy-path input record in total, matching spec.md
// §8 scenario 4's "4 × 3 = 12" arithmetic.
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

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("inquiry: read error: %v", err)
			continue
		}
		inq, ok := c.parse(rec)
		if !ok {
			continue
		}
		c.svc.OnMessage(inq)
	}
	return nil
}

func (c *Connector) parse(rec []string) (Inquiry, bool) {
	if len(rec) < 7 {
		log.Printf("inquiry: malformed record, skipping: %v", rec)
		return Inquiry{}, false
	}
	bondID := rec[2]
	if _, ok := c.products.Get(bondID); !ok {
		log.Printf("inquiry: unknown product %s, skipping", bondID)
		return Inquiry{}, false
	}
	side := Side(rec[3])
	if side != SideBuy && side != SideSell {
		log.Printf("inquiry: bad side %q, skipping", rec[3])
		return Inquiry{}, false
	}
	qty, err := strconv.ParseInt(rec[4], 10, 64)
	if err != nil {
		log.Printf("inquiry: bad quantity %q: %v", rec[4], err)
		return Inquiry{}, false
	}
	price, err := product.ParsePrice(rec[5])
	if err != nil {
		log.Printf("inquiry: bad price %q: %v", rec[5], err)
		return Inquiry{}, false
	}
	return Inquiry{
		InquiryID: rec[0],
		ProductID: bondID,
		Side:      side,
		Quantity:  qty,
		Price:     price,
		State:     State(rec[6]),
	}, true
}

// Publish implements spec §4.10 step 4: REJECTED re-injects once as-is;
// any other state re-injects twice, transitioned to QUOTED then to DONE.
func (c *Connector) Publish(i Inquiry) {
	if i.State == StateRejected {
		c.svc.OnMessage(i)
		return
	}
	c.svc.OnMessage(i.withState(StateQuoted))
	c.svc.OnMessage(i.withState(StateDone))
}
