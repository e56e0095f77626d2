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
	"github.com/tenda-dev/spade/pkg/hook"
)

// Subscribe requests a subscription to the presence of the bare form of j.
func (m *Manager) Subscribe(ctx context.Context, j *jid.JID) error {
	return m.sendSubscription(ctx, j, stravaganza.SubscribeType)
}

// Unsubscribe cancels the subscription to the presence of the bare form of j.
func (m *Manager) Unsubscribe(ctx context.Context, j *jid.JID) error {
	return m.sendSubscription(ctx, j, stravaganza.UnsubscribeType)
}

// Approve allows the bare form of j to receive the agent presence.
func (m *Manager) Approve(ctx context.Context, j *jid.JID) error {
	return m.sendSubscription(ctx, j, stravaganza.SubscribedType)
}

// Deny refuses or revokes the subscription of the bare form of j to the agent presence.
func (m *Manager) Deny(ctx context.Context, j *jid.JID) error {
	return m.sendSubscription(ctx, j, stravaganza.UnsubscribedType)
}

// SetApproveAll sets the automatic subscription approval policy.
func (m *Manager) SetApproveAll(approveAll bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.approveAll = approveAll
}

// ApproveAll tells whether inbound subscription requests are automatically reciprocated.
func (m *Manager) ApproveAll() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.approveAll
}

func (m *Manager) sendSubscription(ctx context.Context, j *jid.JID, typ string) error {
	if j == nil {
		return ErrInvalidAddress
	}
	contactJID := j.ToBareJID()

	err := m.cl.SendSubscription(ctx, contactJID, typ)
	reportOutgoingStanza(typ, err == nil)
	if err != nil {
		return fmt.Errorf("presence: failed to send %s to %s: %w", typ, contactJID.String(), err)
	}
	level.Info(m.logger).Log("msg", "subscription presence sent", "type", typ, "jid", contactJID.String())
	return nil
}

func (m *Manager) onSubscription(ctx context.Context, execCtx *hook.ExecutionContext) error {
	inf := execCtx.Info.(*hook.PresenceInfo)
	typ := inf.Presence.Attribute(stravaganza.Type)

	if m.isSelf(inf.JID) {
		reportIncomingEvent(typ, true)
		return nil
	}
	reportIncomingEvent(typ, false)

	level.Info(m.logger).Log("msg", "subscription presence received", "type", typ, "jid", inf.JID.String())

	if hnd := m.getHandlers().subscription(typ); hnd != nil {
		hnd(ctx, inf.JID.String())
	}
	if !m.ApproveAll() {
		return nil
	}
	switch typ {
	case stravaganza.SubscribeType:
		return m.Approve(ctx, inf.JID)
	case stravaganza.UnsubscribeType:
		return m.Deny(ctx, inf.JID)
	}
	return nil
}
