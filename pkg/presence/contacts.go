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
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/samber/lo"
	"github.com/tenda-dev/spade/pkg/hook"
	rostermodel "github.com/tenda-dev/spade/pkg/model/roster"
	xmpputil "github.com/tenda-dev/spade/pkg/util/xmpp"
)

// Contact represents a roster contact along with its last received presence.
type Contact struct {
	// JID is the contact bare address.
	JID string

	Name         string
	Subscription string

	// PendingOut tells whether a subscription request sent to the contact is awaiting an answer.
	PendingOut bool

	Groups     []string
	Attributes map[string]string

	// Presence is the last presence received from the contact, or nil if none has been received yet.
	Presence *stravaganza.Presence
}

// Attribute returns the value of a contact roster attribute.
func (c Contact) Attribute(key string) string {
	return c.Attributes[key]
}

// IsAvailable tells whether the last presence received from the contact is an available one.
func (c Contact) IsAvailable() bool {
	return c.Presence != nil && xmpputil.IsAvailable(c.Presence)
}

// PresenceType returns the show value of the last received presence when the contact
// is available with a particular show, and the presence type otherwise.
// An empty string is returned if no presence has been received.
func (c Contact) PresenceType() string {
	if c.Presence == nil {
		return ""
	}
	if c.IsAvailable() {
		if showEl := c.Presence.Child("show"); showEl != nil {
			if show, err := ParseShow(showEl.Text()); err == nil && show != ShowNone {
				return string(show)
			}
		}
	}
	return xmpputil.PresenceType(c.Presence)
}

// GetContacts returns every roster contact keyed by bare address.
func (m *Manager) GetContacts(ctx context.Context) (map[string]Contact, error) {
	items, err := m.cl.RosterItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("presence: failed to fetch roster: %w", err)
	}
	return m.contacts(items), nil
}

// GetContactsInGroups returns the roster contacts belonging to any of groups, keyed by bare JID.
func (m *Manager) GetContactsInGroups(ctx context.Context, groups ...string) (map[string]Contact, error) {
	if len(groups) == 0 {
		return map[string]Contact{}, nil
	}
	items, err := m.cl.RosterItemsInGroups(ctx, groups)
	if err != nil {
		return nil, fmt.Errorf("presence: failed to fetch roster groups: %w", err)
	}
	return m.contacts(items), nil
}

func (m *Manager) contacts(items []*rostermodel.Item) map[string]Contact {
	selfJID := m.cl.JID().ToBareJID().String()
	items = lo.Filter(items, func(ri *rostermodel.Item, _ int) bool {
		return ri.JID != selfJID
	})

	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.Associate(items, func(ri *rostermodel.Item) (string, Contact) {
		return ri.JID, m.contact(ri)
	})
}

// GetContact returns the roster contact matching the bare form of j.
func (m *Manager) GetContact(ctx context.Context, j *jid.JID) (Contact, error) {
	if j == nil {
		return Contact{}, ErrInvalidAddress
	}
	if m.isSelf(j) {
		return Contact{}, ErrContactNotFound
	}
	ri, err := m.cl.RosterItem(ctx, j.ToBareJID().String())
	if err != nil {
		return Contact{}, fmt.Errorf("presence: failed to fetch roster item: %w", err)
	}
	if ri == nil {
		return Contact{}, ErrContactNotFound
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.contact(ri), nil
}

// contact must be called holding the read lock.
func (m *Manager) contact(ri *rostermodel.Item) Contact {
	return Contact{
		JID:          ri.JID,
		Name:         ri.Name,
		Subscription: ri.Subscription,
		PendingOut:   ri.Ask,
		Groups:       ri.Groups,
		Attributes:   ri.Attributes,
		Presence:     m.lastPresence[ri.JID],
	}
}

func (m *Manager) onPresence(ctx context.Context, execCtx *hook.ExecutionContext) error {
	inf := execCtx.Info.(*hook.PresenceInfo)
	typ := xmpputil.PresenceType(inf.Presence)

	if m.isSelf(inf.JID) {
		reportIncomingEvent(typ, true)
		m.observeSelf(inf.Presence)
		return nil
	}
	reportIncomingEvent(typ, false)

	m.mu.Lock()
	m.lastPresence[inf.JID.ToBareJID().String()] = inf.Presence
	cached := len(m.lastPresence)
	m.mu.Unlock()

	reportCachedPresences(cached)

	level.Debug(m.logger).Log("msg", "contact presence updated", "jid", inf.JID.String(), "type", typ)

	if hnd := m.getHandlers().presence(typ); hnd != nil {
		hnd(ctx, inf.JID.String(), inf.Presence)
	}
	return nil
}
