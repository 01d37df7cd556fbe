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

package streaming

import (
	"testing"

	"github.com/Rick-LHC/treasury-fabric-go/algostreaming"
)

func TestPublishPriceStoresAndNotifies(t *testing.T) {
	svc := NewService()
	var got []algostreaming.PriceStream
	svc.AddListener(captureListener(func(s algostreaming.PriceStream) { got = append(got, s) }))

	stream := algostreaming.PriceStream{ProductID: "T1"}
	svc.PublishPrice(stream)

	if _, ok := svc.Get("T1"); !ok {
		t.Fatal("expected stream to be stored under its product id")
	}
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
}

func TestAlgoStreamingListenerRepublishes(t *testing.T) {
	svc := NewService()
	listener := NewAlgoStreamingListener(svc)

	listener.ProcessUpdate(algostreaming.PriceStream{ProductID: "T1"})

	if _, ok := svc.Get("T1"); !ok {
		t.Fatal("expected the listener to republish into the service")
	}
}

type captureListener func(algostreaming.PriceStream)

func (c captureListener) ProcessAdd(s algostreaming.PriceStream)  { c(s) }
func (c captureListener) ProcessRemove(algostreaming.PriceStream) {}
func (c captureListener) ProcessUpdate(algostreaming.PriceStream) {}
