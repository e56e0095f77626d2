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
	"strconv"

	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	xmpputil "github.com/tenda-dev/spade/pkg/util/xmpp"
)

// state represents an own presence state.
type state struct {
	available bool
	show      ShowState
	status    Status
	priority  int8
}

// PresenceOption defines a presence state update.
type PresenceOption func(st *state)

// WithShow sets the presence show value.
func WithShow(show ShowState) PresenceOption {
	return func(st *state) { st.show = show }
}

// WithStatus sets text as the default status entry, discarding any other entry.
func WithStatus(text string) PresenceOption {
	return func(st *state) { st.status = NewStatus(text) }
}

// WithLocalizedStatus sets the whole status map.
func WithLocalizedStatus(status Status) PresenceOption {
	return func(st *state) { st.status = status.Clone() }
}

// WithPriority sets the presence priority.
func WithPriority(priority int8) PresenceOption {
	return func(st *state) { st.priority = priority }
}

func (st *state) presence() stravaganza.Element {
	if !st.available {
		return xmpputil.MakeBroadcastPresence(stravaganza.UnavailableType, st.status.elements())
	}
	var children []stravaganza.Element
	if st.show != ShowNone {
		children = append(children, stravaganza.NewBuilder("show").
			WithText(string(st.show)).
			Build(),
		)
	}
	children = append(children, st.status.elements()...)
	children = append(children, stravaganza.NewBuilder("priority").
		WithText(strconv.Itoa(int(st.priority))).
		Build(),
	)
	return xmpputil.MakeBroadcastPresence(stravaganza.AvailableType, children)
}

func stateFromPresence(pr *stravaganza.Presence) *state {
	var show ShowState
	if showEl := pr.Child("show"); showEl != nil {
		show, _ = ParseShow(showEl.Text())
	}
	return &state{
		available: xmpputil.IsAvailable(pr),
		show:      show,
		status:    statusFromPresence(pr),
		priority:  pr.Priority(),
	}
}

// SetAvailable marks the agent as available and broadcasts its full presence.
func (m *Manager) SetAvailable(ctx context.Context, opts ...PresenceOption) error {
	return m.updateState(ctx, func(st *state) {
		st.available = true
		for _, opt := range opts {
			opt(st)
		}
	})
}

// SetUnavailable marks the agent as unavailable and broadcasts its full presence.
func (m *Manager) SetUnavailable(ctx context.Context) error {
	return m.updateState(ctx, func(st *state) {
		st.available = false
	})
}

// SetPresence updates show, status or priority keeping current availability,
// and broadcasts the resulting full presence.
func (m *Manager) SetPresence(ctx context.Context, opts ...PresenceOption) error {
	return m.updateState(ctx, func(st *state) {
		for _, opt := range opts {
			opt(st)
		}
	})
}

// IsAvailable returns the last explicitly set availability.
func (m *Manager) IsAvailable() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.st.available
}

// Show returns the locally set show value.
func (m *Manager) Show() ShowState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.st.show
}

// Status returns the locally set status.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.st.status.Clone()
}

// Priority returns the locally set priority.
func (m *Manager) Priority() int8 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.st.priority
}

// CurrentAvailable returns the availability of the last own presence observed from the network.
// ok is false if no own presence has been observed yet.
func (m *Manager) CurrentAvailable() (available, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.observed == nil {
		return false, false
	}
	return m.observed.available, true
}

// CurrentStatus returns the status of the last own presence observed from the network.
func (m *Manager) CurrentStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.observed == nil {
		return nil
	}
	return m.observed.status.Clone()
}

// CurrentShow returns the show value of the last own presence observed from the network.
func (m *Manager) CurrentShow() ShowState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.observed == nil {
		return ShowNone
	}
	return m.observed.show
}

// CurrentPriority returns the priority of the last own presence observed from the network.
func (m *Manager) CurrentPriority() int8 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.observed == nil {
		return 0
	}
	return m.observed.priority
}

func (m *Manager) updateState(ctx context.Context, updateFn func(st *state)) error {
	m.mu.Lock()
	updateFn(&m.st)
	pr := m.st.presence()
	m.mu.Unlock()

	typ := xmpputil.PresenceType(pr)
	err := m.cl.SendPresence(ctx, pr)
	reportOutgoingStanza(typ, err == nil)
	if err != nil {
		return fmt.Errorf("presence: failed to send %s presence: %w", typ, err)
	}
	level.Debug(m.logger).Log("msg", "presence sent", "type", typ)
	return nil
}

func (m *Manager) observeSelf(pr *stravaganza.Presence) {
	if !xmpputil.IsAvailable(pr) && !pr.IsUnavailable() {
		return
	}
	st := stateFromPresence(pr)

	m.mu.Lock()
	m.observed = st
	m.mu.Unlock()
}
