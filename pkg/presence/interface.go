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
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	rostermodel "github.com/tenda-dev/spade/pkg/model/roster"
)

//go:generate moq -out client.mock_test.go . Client:clientMock

// Client defines the protocol client operations the presence manager relies on.
type Client interface {
	// JID returns the agent address.
	JID() *jid.JID

	// SendPresence sends an outbound presence element.
	SendPresence(ctx context.Context, pr stravaganza.Element) error

	// SendSubscription sends a subscription management presence of type typ addressed to to.
	SendSubscription(ctx context.Context, to *jid.JID, typ string) error

	// RosterItem returns the roster item associated to bareJID, or nil if not present.
	RosterItem(ctx context.Context, bareJID string) (*rostermodel.Item, error)

	// RosterItems returns all roster items.
	RosterItems(ctx context.Context) ([]*rostermodel.Item, error)

	// RosterItemsInGroups returns the roster items belonging to any of groups.
	RosterItemsInGroups(ctx context.Context, groups []string) ([]*rostermodel.Item, error)
}
