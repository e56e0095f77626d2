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
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/tenda-dev/spade/pkg/hook"
)

// Config contains presence manager configuration.
type Config struct {
	// ApproveAll enables automatic reciprocation of inbound subscription requests.
	ApproveAll bool `fig:"approve_all"`

	// Show, Status and Priority define the initial own presence state.
	Show     ShowState `fig:"show"`
	Status   string    `fig:"status"`
	Priority int8      `fig:"priority"`
}

// Manager tracks the agent own presence, the last presence received from every contact
// and reacts to inbound subscription events.
type Manager struct {
	cl     Client
	hk     *hook.Hooks
	logger kitlog.Logger

	mu           sync.RWMutex
	st           state
	observed     *state
	lastPresence map[string]*stravaganza.Presence
	approveAll   bool
	handlers     Handlers
	hookIDs      map[string]hook.HandlerID
}

// New returns a new initialized Manager instance.
func New(cl Client, hk *hook.Hooks, cfg Config, handlers Handlers, logger kitlog.Logger) *Manager {
	m := &Manager{
		cl:           cl,
		hk:           hk,
		logger:       kitlog.With(logger, "component", "presence"),
		lastPresence: make(map[string]*stravaganza.Presence),
		hookIDs:      make(map[string]hook.HandlerID),
		approveAll:   cfg.ApproveAll,
		handlers:     handlers,
	}
	m.st.priority = cfg.Priority
	if len(cfg.Status) > 0 {
		m.st.status = NewStatus(cfg.Status)
	}
	if cfg.Show.IsValid() {
		m.st.show = cfg.Show
	} else {
		level.Warn(m.logger).Log("msg", "ignored invalid show value", "show", cfg.Show)
	}
	return m
}

// Start binds the manager to inbound presence events.
func (m *Manager) Start(_ context.Context) error {
	m.mu.Lock()
	for _, hookName := range []string{hook.PresenceAvailable, hook.PresenceUnavailable, hook.PresenceError} {
		m.hookIDs[hookName] = m.hk.AddHook(hookName, m.onPresence, hook.DefaultPriority)
	}
	for _, hookName := range []string{hook.PresenceSubscribe, hook.PresenceSubscribed, hook.PresenceUnsubscribe, hook.PresenceUnsubscribed} {
		m.hookIDs[hookName] = m.hk.AddHook(hookName, m.onSubscription, hook.DefaultPriority)
	}
	m.mu.Unlock()

	level.Info(m.logger).Log("msg", "started presence manager", "jid", m.cl.JID().String())
	return nil
}

// Stop unbinds the manager from inbound presence events.
func (m *Manager) Stop(_ context.Context) error {
	m.mu.Lock()
	for hookName, id := range m.hookIDs {
		m.hk.RemoveHandler(hookName, id)
		delete(m.hookIDs, hookName)
	}
	m.mu.Unlock()

	level.Info(m.logger).Log("msg", "stopped presence manager")
	return nil
}

// SetHandlers replaces the contact event callbacks.
func (m *Manager) SetHandlers(handlers Handlers) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = handlers
}

func (m *Manager) getHandlers() Handlers {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.handlers
}

func (m *Manager) isSelf(j *jid.JID) bool {
	return j.ToBareJID().String() == m.cl.JID().ToBareJID().String()
}
