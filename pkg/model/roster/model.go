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

package rostermodel

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/samber/lo"
)

const (
	// None represents 'none' subscription type.
	None = "none"

	// From represents 'from' subscription type.
	From = "from"

	// To represents 'to' subscription type.
	To = "to"

	// Both represents 'both' subscription type.
	Both = "both"

	// Remove represents 'remove' subscription type.
	Remove = "remove"
)

// Item represents a roster item entity.
type Item struct {
	// Username is the roster owner node.
	Username string `cbor:"username"`

	// JID is the contact bare JID string.
	JID string `cbor:"jid"`

	Name         string `cbor:"name,omitempty"`
	Subscription string `cbor:"subscription"`

	// Ask tells whether an outbound subscription request is pending.
	Ask bool `cbor:"ask,omitempty"`

	Groups []string `cbor:"groups,omitempty"`

	// Attributes holds arbitrary per-contact attributes (e.g. trust flags).
	Attributes map[string]string `cbor:"attrs,omitempty"`
}

// IsValidSubscription tells whether sub is a known roster subscription value.
func IsValidSubscription(sub string) bool {
	switch sub {
	case None, From, To, Both, Remove:
		return true
	}
	return false
}

// Normalize validates ri and brings it to its canonical stored form:
// bare JID, 'none' as default subscription and deduplicated groups.
func (ri *Item) Normalize() error {
	if len(ri.JID) == 0 {
		return errors.New("rostermodel: item jid is required")
	}
	j, err := jid.NewWithString(ri.JID, false)
	if err != nil {
		return fmt.Errorf("rostermodel: invalid item jid %q: %w", ri.JID, err)
	}
	ri.JID = j.ToBareJID().String()

	if len(ri.Subscription) == 0 {
		ri.Subscription = None
	}
	if !IsValidSubscription(ri.Subscription) {
		return fmt.Errorf("rostermodel: unrecognized subscription value: %s", ri.Subscription)
	}
	groups := lo.Filter(ri.Groups, func(gr string, _ int) bool { return len(gr) > 0 })
	ri.Groups = lo.Uniq(groups)
	return nil
}

// ContactJID parses and returns roster item contact JID.
func (ri *Item) ContactJID() *jid.JID {
	j, _ := jid.NewWithString(ri.JID, true)
	return j
}

// Attribute returns the value of a roster item attribute.
func (ri *Item) Attribute(key string) string {
	return ri.Attributes[key]
}

// SetAttribute sets a roster item attribute value.
func (ri *Item) SetAttribute(key, value string) {
	if ri.Attributes == nil {
		ri.Attributes = make(map[string]string)
	}
	ri.Attributes[key] = value
}

// InheritAttributes copies into ri every attribute of prev not already set on ri.
func (ri *Item) InheritAttributes(prev *Item) {
	if prev == nil {
		return
	}
	for k, v := range prev.Attributes {
		if _, ok := ri.Attributes[k]; !ok {
			ri.SetAttribute(k, v)
		}
	}
}

// Clone returns a deep copy of the roster item.
func (ri *Item) Clone() *Item {
	cp := *ri
	if ri.Groups != nil {
		cp.Groups = make([]string, len(ri.Groups))
		copy(cp.Groups, ri.Groups)
	}
	if ri.Attributes != nil {
		cp.Attributes = make(map[string]string, len(ri.Attributes))
		for k, v := range ri.Attributes {
			cp.Attributes[k] = v
		}
	}
	return &cp
}

// item shares Item layout without its binary marshaling methods.
type item Item

// MarshalBinary satisfies encoding.BinaryMarshaler interface.
func (ri *Item) MarshalBinary() ([]byte, error) {
	return cbor.Marshal((*item)(ri))
}

// UnmarshalBinary satisfies encoding.BinaryUnmarshaler interface.
func (ri *Item) UnmarshalBinary(data []byte) error {
	return cbor.Unmarshal(data, (*item)(ri))
}
