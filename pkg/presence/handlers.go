// Copyright 2022 The jackal Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package presence

import (
	"context"

	"github.com/jackal-xmpp/stravaganza/v2"
)

// PresenceHandler is invoked with the sender address and the received presence stanza.
type PresenceHandler func(ctx context.Context, jid string, pr *stravaganza.Presence)

// SubscriptionHandler is invoked with the address of the entity a subscription event comes from.
type SubscriptionHandler func(ctx context.Context, jid string)

// Handlers contains the callbacks invoked on inbound contact events.
// A nil callback is skipped.
type Handlers struct {
	OnAvailable   PresenceHandler
	OnUnavailable PresenceHandler

	// OnSubscribe runs when a contact requests a subscription to the agent presence.
	OnSubscribe SubscriptionHandler

	// OnSubscribed runs when a contact approves the agent subscription request.
	OnSubscribed SubscriptionHandler

	OnUnsubscribe  SubscriptionHandler
	OnUnsubscribed SubscriptionHandler
}

func (h Handlers) presence(typ string) PresenceHandler {
	switch typ {
	case stravaganza.UnavailableType:
		return h.OnUnavailable
	case stravaganza.ErrorType:
		return nil
	default:
		return h.OnAvailable
	}
}

func (h Handlers) subscription(typ string) SubscriptionHandler {
	switch typ {
	case stravaganza.SubscribeType:
		return h.OnSubscribe
	case stravaganza.SubscribedType:
		return h.OnSubscribed
	case stravaganza.UnsubscribeType:
		return h.OnUnsubscribe
	case stravaganza.UnsubscribedType:
		return h.OnUnsubscribed
	}
	return nil
}
