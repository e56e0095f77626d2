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
	"errors"
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/samber/lo"
	rostermodel "github.com/tenda-dev/spade/pkg/model/roster"
	"github.com/tenda-dev/spade/pkg/storage/repository"
	xmpputil "github.com/tenda-dev/spade/pkg/util/xmpp"
)

const (
	rosterNamespace   = "jabber:iq:roster"
	rosterVersionAttr = "ver"
)

// RequestRoster asks the server for the full roster. The answer replaces the local roster
// once it has been received.
// When a roster version is stored it is announced, so that the server may answer with an
// empty result if nothing changed since.
func (c *Client) RequestRoster(ctx context.Context) error {
	ver, err := c.RosterVersion(ctx)
	if err != nil {
		return fmt.Errorf("client: failed to fetch roster version: %w", err)
	}
	qb := stravaganza.NewBuilder("query").
		WithAttribute(stravaganza.Namespace, rosterNamespace)
	if len(ver) > 0 {
		qb.WithAttribute(rosterVersionAttr, ver)
	}
	iq := stravaganza.NewIQBuilder().
		WithAttribute(stravaganza.ID, uuid.New().String()).
		WithAttribute(stravaganza.From, c.jd.String()).
		WithAttribute(stravaganza.Type, stravaganza.GetType).
		WithChild(qb.Build()).
		Build()
	return c.sendElement(ctx, iq)
}

func (c *Client) processIQ(ctx context.Context, iq *stravaganza.IQ) error {
	q := iq.ChildNamespace("query", rosterNamespace)
	if q == nil {
		if iq.IsGet() || iq.IsSet() {
			return c.sendReply(ctx, xmpputil.MakeErrorStanza(iq, stanzaerror.ServiceUnavailable))
		}
		return nil
	}
	if !c.isTrustedRosterSource(iq) {
		level.Warn(c.logger).Log("msg", "discarded roster iq from untrusted source", "from", iq.Attribute(stravaganza.From))
		return nil
	}
	switch {
	case iq.IsSet():
		return c.processRosterPush(ctx, iq, q)
	case iq.IsResult():
		return c.replaceRoster(ctx, q)
	}
	return nil
}

func (c *Client) processRosterPush(ctx context.Context, iq *stravaganza.IQ, q stravaganza.Element) error {
	items := q.Children("item")
	if len(items) != 1 {
		return c.sendReply(ctx, xmpputil.MakeErrorStanza(iq, stanzaerror.BadRequest))
	}
	ri, err := decodeRosterItem(items[0])
	if err == nil {
		ri.Username = c.username()
		err = ri.Normalize()
	}
	if err != nil {
		return c.sendReply(ctx, xmpputil.MakeErrorStanza(iq, stanzaerror.BadRequest))
	}
	err = c.rep.InTransaction(ctx, func(ctx context.Context, tx repository.Transaction) error {
		if ri.Subscription != rostermodel.Remove {
			prev, err := tx.FetchRosterItem(ctx, ri.Username, ri.JID)
			if err != nil {
				return err
			}
			ri.InheritAttributes(prev)
		}
		if err := c.applyRosterItem(ctx, tx, ri); err != nil {
			return err
		}
		return c.storeRosterVersion(ctx, tx, q)
	})
	if err != nil {
		_ = c.sendReply(ctx, xmpputil.MakeErrorStanza(iq, stanzaerror.InternalServerError))
		return err
	}
	level.Info(c.logger).Log("msg", "roster push applied", "jid", ri.JID, "subscription", ri.Subscription)

	return c.sendReply(ctx, xmpputil.MakeResultIQ(iq, nil))
}

func (c *Client) replaceRoster(ctx context.Context, q stravaganza.Element) error {
	var items []*rostermodel.Item
	for _, elem := range q.Children("item") {
		ri, err := decodeRosterItem(elem)
		if err != nil {
			level.Warn(c.logger).Log("msg", "skipped malformed roster item", "err", err)
			continue
		}
		if ri.Subscription == rostermodel.Remove {
			continue
		}
		ri.Username = c.username()
		if err := ri.Normalize(); err != nil {
			level.Warn(c.logger).Log("msg", "skipped malformed roster item", "err", err)
			continue
		}
		items = append(items, ri)
	}
	err := c.rep.InTransaction(ctx, func(ctx context.Context, tx repository.Transaction) error {
		prevItems, err := tx.FetchRosterItems(ctx, c.username())
		if err != nil {
			return err
		}
		prev := lo.KeyBy(prevItems, func(ri *rostermodel.Item) string { return ri.JID })

		if err := tx.DeleteRosterItems(ctx, c.username()); err != nil {
			return err
		}
		for _, ri := range items {
			ri.InheritAttributes(prev[ri.JID])
			if err := tx.UpsertRosterItem(ctx, ri); err != nil {
				return err
			}
		}
		return c.storeRosterVersion(ctx, tx, q)
	})
	if err != nil {
		return err
	}
	level.Info(c.logger).Log("msg", "roster received", "items", len(items))
	return nil
}

func (c *Client) applyRosterItem(ctx context.Context, r repository.Roster, ri *rostermodel.Item) error {
	ri.Username = c.username()
	if err := ri.Normalize(); err != nil {
		return err
	}
	if ri.Subscription == rostermodel.Remove {
		return r.DeleteRosterItem(ctx, ri.Username, ri.JID)
	}
	return r.UpsertRosterItem(ctx, ri)
}

func (c *Client) storeRosterVersion(ctx context.Context, r repository.Roster, q stravaganza.Element) error {
	ver := q.Attribute(rosterVersionAttr)
	if len(ver) == 0 {
		return nil
	}
	return r.UpsertRosterVersion(ctx, c.username(), ver)
}

// sendReply sends an iq reply, leaving out the destination address when it refers
// to the client's own account.
func (c *Client) sendReply(ctx context.Context, reply stravaganza.Stanza) error {
	if reply.Attribute(stravaganza.To) != c.jd.ToBareJID().String() {
		return c.sendElement(ctx, reply)
	}
	return c.sendElement(ctx, stravaganza.NewBuilderFromElement(reply).
		WithoutAttribute(stravaganza.To).
		Build(),
	)
}

// isTrustedRosterSource tells whether iq was sent by the client's own account or its server.
func (c *Client) isTrustedRosterSource(iq *stravaganza.IQ) bool {
	from := iq.Attribute(stravaganza.From)
	return from == c.jd.ToBareJID().String() || from == c.jd.Domain()
}

func decodeRosterItem(elem stravaganza.Element) (*rostermodel.Item, error) {
	if elem.Name() != "item" {
		return nil, fmt.Errorf("client: invalid roster item element name: %s", elem.Name())
	}
	ri := &rostermodel.Item{}
	if jidStr := elem.Attribute("jid"); len(jidStr) > 0 {
		j, err := jid.NewWithString(jidStr, false)
		if err != nil {
			return nil, err
		}
		ri.JID = j.String()
	} else {
		return nil, errors.New("client: roster item 'jid' attribute is required")
	}
	ri.Name = elem.Attribute("name")

	if subscription := elem.Attribute("subscription"); len(subscription) > 0 {
		if !rostermodel.IsValidSubscription(subscription) {
			return nil, fmt.Errorf("client: unrecognized 'subscription' enum type: %s", subscription)
		}
		ri.Subscription = subscription
	}
	if ask := elem.Attribute("ask"); len(ask) > 0 {
		if ask != stravaganza.SubscribeType {
			return nil, fmt.Errorf("client: unrecognized 'ask' enum type: %s", ask)
		}
		ri.Ask = true
	}
	for _, group := range elem.Children("group") {
		if len(group.Text()) > 0 {
			ri.Groups = append(ri.Groups, group.Text())
		}
	}
	return ri, nil
}
