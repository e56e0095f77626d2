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

package client

import (
	"context"

	"github.com/jackal-xmpp/stravaganza/v2"
	rostermodel "github.com/tenda-dev/spade/pkg/model/roster"
	"github.com/tenda-dev/spade/pkg/storage/repository"
)

// transitionFunc applies to ri the subscription change caused by a presence of type typ.
// It reports whether ri was modified.
type transitionFunc func(ri *rostermodel.Item, typ string) bool

// updateSubscription applies transitionFn to the roster item associated to contactJID.
// When non-nil, commitFn runs inside the same transaction and its failure discards the change.
func (c *Client) updateSubscription(
	ctx context.Context,
	contactJID, typ string,
	transitionFn transitionFunc,
	commitFn func(ctx context.Context) error,
) error {
	return c.rep.InTransaction(ctx, func(ctx context.Context, tx repository.Transaction) error {
		ri, err := tx.FetchRosterItem(ctx, c.username(), contactJID)
		if err != nil {
			return err
		}
		if ri == nil {
			ri = &rostermodel.Item{
				Username:     c.username(),
				JID:          contactJID,
				Subscription: rostermodel.None,
			}
		}
		if transitionFn(ri, typ) {
			if err := tx.UpsertRosterItem(ctx, ri); err != nil {
				return err
			}
		}
		if commitFn != nil {
			return commitFn(ctx)
		}
		return nil
	})
}

// outboundTransition handles subscription presences sent by the client.
func outboundTransition(ri *rostermodel.Item, typ string) bool {
	switch typ {
	case stravaganza.SubscribeType:
		switch {
		case ri.Subscription == rostermodel.To, ri.Subscription == rostermodel.Both:
			return false // already subscribed...
		case ri.Ask:
			return false // request already sent...
		}
		ri.Ask = true
		return true

	case stravaganza.SubscribedType:
		switch ri.Subscription {
		case rostermodel.None:
			ri.Subscription = rostermodel.From
		case rostermodel.To:
			ri.Subscription = rostermodel.Both
		default:
			return false
		}
		return true

	case stravaganza.UnsubscribeType:
		changed := ri.Ask
		ri.Ask = false
		switch ri.Subscription {
		case rostermodel.To:
			ri.Subscription = rostermodel.None
		case rostermodel.Both:
			ri.Subscription = rostermodel.From
		default:
			return changed
		}
		return true

	case stravaganza.UnsubscribedType:
		switch ri.Subscription {
		case rostermodel.From:
			ri.Subscription = rostermodel.None
		case rostermodel.Both:
			ri.Subscription = rostermodel.To
		default:
			return false
		}
		return true
	}
	return false
}

// inboundTransition handles subscription presences received from a contact.
func inboundTransition(ri *rostermodel.Item, typ string) bool {
	switch typ {
	case stravaganza.SubscribedType:
		if !ri.Ask {
			return false // not requested
		}
		ri.Ask = false
		switch ri.Subscription {
		case rostermodel.None:
			ri.Subscription = rostermodel.To
		case rostermodel.From:
			ri.Subscription = rostermodel.Both
		}
		return true

	case stravaganza.UnsubscribeType:
		switch ri.Subscription {
		case rostermodel.From:
			ri.Subscription = rostermodel.None
		case rostermodel.Both:
			ri.Subscription = rostermodel.To
		default:
			return false
		}
		return true

	case stravaganza.UnsubscribedType:
		changed := ri.Ask
		ri.Ask = false
		switch ri.Subscription {
		case rostermodel.To:
			ri.Subscription = rostermodel.None
		case rostermodel.Both:
			ri.Subscription = rostermodel.From
		default:
			return changed
		}
		return true
	}
	// an inbound 'subscribe' is a pending request and leaves the roster untouched
	return false
}
