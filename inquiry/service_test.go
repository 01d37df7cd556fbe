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
	"testing"

	"github.com/shopspring/decimal"
)

type recordingPublisher struct {
	published []Inquiry
}

func (p *recordingPublisher) Publish(i Inquiry) { p.published = append(p.published, i) }

// TestHappyPathIsThreePasses locks in the DESIGN.md pass-count decision:
// RECEIVED, QUOTED, DONE — exactly three OnMessage/listener passes per
// happy-path input record, wired end to end through the real Connector.
func TestHappyPathIsThreePasses(t *testing.T) {
	svc := NewService()
	conn := NewConnector(svc, nil)
	svc.SetConnector(conn)
	svc.AddListener(NewQuoteListener(svc))

	var states []State
	svc.AddListener(captureListener(func(i Inquiry) { states = append(states, i.State) }))

	svc.OnMessage(Inquiry{InquiryID: "INQ1", State: StateReceived})

	// The quote listener runs before the capture listener on every pass, so
	// its recursive QUOTED/DONE re-injection (triggered off the RECEIVED
	// pass) is fully recorded before the outer RECEIVED pass's own capture
	// call returns: QUOTED and DONE land first, RECEIVED last. Three passes
	// total, matching the DESIGN.md decision.
	want := []State{StateQuoted, StateDone, StateReceived}
	if len(states) != len(want) {
		t.Fatalf("states = %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Errorf("states[%d] = %s, want %s", i, states[i], want[i])
		}
	}
}

func TestRejectInquiryPublishesRejectedOnce(t *testing.T) {
	svc := NewService()
	publisher := &recordingPublisher{}
	svc.SetConnector(publisher)
	svc.store.Set("INQ1", Inquiry{InquiryID: "INQ1", State: StateReceived})

	svc.RejectInquiry("INQ1")

	if len(publisher.published) != 1 || publisher.published[0].State != StateRejected {
		t.Fatalf("published = %v, want exactly one REJECTED", publisher.published)
	}
}

func TestSendQuoteSetsPrice(t *testing.T) {
	svc := NewService()
	publisher := &recordingPublisher{}
	svc.SetConnector(publisher)
	svc.store.Set("INQ1", Inquiry{InquiryID: "INQ1", State: StateReceived})

	svc.SendQuote("INQ1", decimal.New(101, 0))

	if len(publisher.published) == 0 || !publisher.published[0].Price.Equal(decimal.New(101, 0)) {
		t.Fatalf("expected the republished inquiry to carry the new price")
	}
}

func TestConnectorPublishBranching(t *testing.T) {
	svc := NewService()
	conn := NewConnector(svc, nil)

	var states []State
	svc.AddListener(captureListener(func(i Inquiry) { states = append(states, i.State) }))

	conn.Publish(Inquiry{InquiryID: "INQ2", State: StateRejected})
	if len(states) != 1 || states[0] != StateRejected {
		t.Fatalf("REJECTED should re-inject exactly once, got %v", states)
	}

	states = nil
	conn.Publish(Inquiry{InquiryID: "INQ3", State: StateReceived})
	if len(states) != 2 || states[0] != StateQuoted || states[1] != StateDone {
		t.Fatalf("non-REJECTED should re-inject QUOTED then DONE, got %v", states)
	}
}

type captureListener func(Inquiry)

func (c captureListener) ProcessAdd(Inquiry)     {}
func (c captureListener) ProcessRemove(Inquiry)  {}
func (c captureListener) ProcessUpdate(i Inquiry) { c(i) }
