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

package hook

import (
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

const (
	// PresenceAvailable hook runs when an 'available' presence is received.
	PresenceAvailable = "presence.available"

	// PresenceUnavailable hook runs when an 'unavailable' presence is received.
	PresenceUnavailable = "presence.unavailable"

	// PresenceError hook runs when an 'error' presence is received.
	PresenceError = "presence.error"

	// PresenceSubscribe hook runs when a peer requests a subscription to our presence.
	PresenceSubscribe = "presence.subscribe"

	// PresenceSubscribed hook runs when a peer approves our subscription request.
	PresenceSubscribed = "presence.subscribed"

	// PresenceUnsubscribe hook runs when a peer withdraws its subscription to our presence.
	PresenceUnsubscribe = "presence.unsubscribe"

	// PresenceUnsubscribed hook runs when a peer denies or revokes our subscription.
	PresenceUnsubscribed = "presence.unsubscribed"
)

// PresenceInfo contains all info associated to an inbound presence event.
type PresenceInfo struct {
	// JID is the presence sender address.
	JID *jid.JID

	// Presence is the received presence stanza.
	Presence *stravaganza.Presence
}

// PresenceHookByType returns the hook name that runs for a given presence type.
// An empty string is returned for types without an associated hook (e.g. 'probe').
func PresenceHookByType(typ string) string {
	if len(typ) == 0 {
		return PresenceAvailable
	}
	switch typ {
	case stravaganza.AvailableType:
		return PresenceAvailable
	case stravaganza.UnavailableType:
		return PresenceUnavailable
	case stravaganza.ErrorType:
		return PresenceError
	case stravaganza.SubscribeType:
		return PresenceSubscribe
	case stravaganza.SubscribedType:
		return PresenceSubscribed
	case stravaganza.UnsubscribeType:
		return PresenceUnsubscribe
	case stravaganza.UnsubscribedType:
		return PresenceUnsubscribed
	}
	return ""
}
