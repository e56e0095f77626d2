// Copyright 2020 The jackal Authors
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

package xmpputil

import (
	"errors"

	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

const availableType = "available"

// MakeResultIQ creates a new result stanza derived from iq.
func MakeResultIQ(iq *stravaganza.IQ, queryChild stravaganza.Element) *stravaganza.IQ {
	b := iq.ResultBuilder()
	if queryChild != nil {
		b.WithChild(queryChild)
	}
	resIQ, _ := b.BuildIQ()
	return resIQ
}

// MakeErrorStanza creates an error stanza using errReason as reason.
func MakeErrorStanza(stanza stravaganza.Stanza, errReason stanzaerror.Reason) stravaganza.Stanza {
	errStanza, _ := stanzaerror.E(errReason, stanza).
		Stanza(false)
	return errStanza
}

// MakePresence creates presence of type typ using fromJID and toJID addresses.
func MakePresence(fromJID, toJID *jid.JID, typ string, children []stravaganza.Element) (*stravaganza.Presence, error) {
	if fromJID == nil || toJID == nil {
		return nil, errors.New("xmpputil: presence 'from' and 'to' addresses are required")
	}
	return presenceBuilder(typ, children).
		WithAttribute(stravaganza.From, fromJID.String()).
		WithAttribute(stravaganza.To, toJID.String()).
		BuildPresence()
}

// MakeBroadcastPresence creates an unaddressed presence element of type typ,
// as sent by a client to have it broadcast by its server.
func MakeBroadcastPresence(typ string, children []stravaganza.Element) stravaganza.Element {
	return presenceBuilder(typ, children).Build()
}

func presenceBuilder(typ string, children []stravaganza.Element) *stravaganza.Builder {
	b := stravaganza.NewPresenceBuilder()
	if len(typ) > 0 && typ != availableType {
		b.WithAttribute(stravaganza.Type, typ)
	}
	return b.WithChildren(children...)
}

// PresenceType returns pr type attribute value, where a missing type
// is reported as 'available'.
func PresenceType(pr stravaganza.Element) string {
	typ := pr.Attribute(stravaganza.Type)
	if len(typ) == 0 {
		return availableType
	}
	return typ
}

// IsAvailable tells whether pr is an available presence.
func IsAvailable(pr stravaganza.Element) bool {
	return PresenceType(pr) == availableType
}

// BareString returns the bare representation of j.
func BareString(j *jid.JID) string {
	return j.ToBareJID().String()
}
