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
	"github.com/Rick-LHC/treasury-fabric-go/inquiry"
	"github.com/Rick-LHC/treasury-fabric-go/soa"
)

// InquiryService listens on inquiry's update channel and persists a line
// for every state transition the inquiry passes through (spec §4.10,
// §4.11, §6: "allinquiries.txt: inquiry lines across all state
// transitions").
type InquiryService struct {
	soa.BaseListener[inquiry.Inquiry]
	store *soa.Store[string, inquiry.Inquiry]
	sink  *Sink
}

func NewInquiryService(sink *Sink) *InquiryService {
	return &InquiryService{store: soa.NewStore[string, inquiry.Inquiry](), sink: sink}
}

func (s *InquiryService) ProcessUpdate(i inquiry.Inquiry) {
	s.PersistData(i)
}

func (s *InquiryService) PersistData(i inquiry.Inquiry) {
	s.store.Set(i.InquiryID, i)
	s.sink.WriteLine("%s %s %s %d %s %s", i.InquiryID, i.ProductID, i.Side, i.Quantity, i.Price.String(), i.State)
}
