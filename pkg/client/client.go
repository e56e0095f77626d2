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
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/jackal-xmpp/runqueue/v2"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/tenda-dev/spade/pkg/hook"
	rostermodel "github.com/tenda-dev/spade/pkg/model/roster"
	"github.com/tenda-dev/spade/pkg/storage/repository"
	xmpputil "github.com/tenda-dev/spade/pkg/util/xmpp"
)

// ErrInvalidSubscriptionType is returned by SendSubscription when the requested type
// is not one of 'subscribe', 'subscribed', 'unsubscribe' or 'unsubscribed'.
var ErrInvalidSubscriptionType = errors.New("client: invalid subscription type")

// Config contains client configuration.
type Config struct {
	// RequestTimeout defines the timeout applied to every inbound element processing.
	RequestTimeout time.Duration `fig:"req_timeout" default:"15s"`

	// Breaker defines outbound circuit breaker configuration.
	Breaker BreakerConfig `fig:"breaker"`
}

// Client represents the protocol client an agent speaks through.
// Inbound elements are processed one at a time in arrival order.
type Client struct {
	cfg    Config
	jd     *jid.JID
	rep    repository.Repository
	sender Sender
	hk     *hook.Hooks
	rq     *runqueue.RunQueue
	logger kitlog.Logger
}

// New returns a new initialized Client instance.
func New(
	cfg Config,
	jd *jid.JID,
	rep repository.Repository,
	sender Sender,
	hk *hook.Hooks,
	logger kitlog.Logger,
) *Client {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = time.Second * 15
	}
	return &Client{
		cfg:    cfg,
		jd:     jd,
		rep:    rep,
		sender: sender,
		hk:     hk,
		rq:     runqueue.New(jd.String()),
		logger: kitlog.With(logger, "client", jd.String()),
	}
}

// JID returns the client full address.
func (c *Client) JID() *jid.JID {
	return c.jd
}

// Hooks returns the hook set inbound events are posted to.
func (c *Client) Hooks() *hook.Hooks {
	return c.hk
}

// SendPresence sends pr to the peer, stamping it with the client address
// and a stanza identifier whenever those are missing.
// An unaddressed presence is broadcast by the server to the client's subscribers.
func (c *Client) SendPresence(ctx context.Context, pr stravaganza.Element) error {
	if pr.Name() != "presence" {
		return fmt.Errorf("client: wrong presence element name: %s", pr.Name())
	}
	b := stravaganza.NewBuilderFromElement(pr)
	if len(pr.Attribute(stravaganza.From)) == 0 {
		b.WithAttribute(stravaganza.From, c.jd.String())
	}
	if len(pr.Attribute(stravaganza.ID)) == 0 {
		b.WithAttribute(stravaganza.ID, uuid.New().String())
	}
	return c.sendElement(ctx, b.Build())
}

// SendSubscription sends a subscription management presence of type typ addressed
// to the bare form of to, updating the local roster accordingly.
// The roster change is discarded whenever the presence could not be sent.
func (c *Client) SendSubscription(ctx context.Context, to *jid.JID, typ string) error {
	if !isSubscriptionType(typ) {
		return fmt.Errorf("%w: %s", ErrInvalidSubscriptionType, typ)
	}
	contactJID := to.ToBareJID()
	pr, err := xmpputil.MakePresence(c.jd.ToBareJID(), contactJID, typ, nil)
	if err != nil {
		return fmt.Errorf("client: failed to build subscription presence: %w", err)
	}
	outPr := stravaganza.NewBuilderFromElement(pr).
		WithAttribute(stravaganza.ID, uuid.New().String()).
		Build()

	return c.updateSubscription(ctx, contactJID.String(), typ, outboundTransition, func(ctx context.Context) error {
		return c.sendElement(ctx, outPr)
	})
}

// RosterItem returns the roster item associated to bareJID, or nil if not present.
func (c *Client) RosterItem(ctx context.Context, bareJID string) (*rostermodel.Item, error) {
	return c.rep.FetchRosterItem(ctx, c.username(), bareJID)
}

// RosterItems returns all client roster items.
func (c *Client) RosterItems(ctx context.Context) ([]*rostermodel.Item, error) {
	return c.rep.FetchRosterItems(ctx, c.username())
}

// RosterItemsInGroups returns the client roster items belonging to any of groups.
func (c *Client) RosterItemsInGroups(ctx context.Context, groups []string) ([]*rostermodel.Item, error) {
	return c.rep.FetchRosterItemsInGroups(ctx, c.username(), groups)
}

// RosterVersion returns the last roster version announced by the server.
func (c *Client) RosterVersion(ctx context.Context) (string, error) {
	return c.rep.FetchRosterVersion(ctx, c.username())
}

// UpdateRosterItem inserts or replaces a client roster item.
// An item with 'remove' subscription is deleted instead.
func (c *Client) UpdateRosterItem(ctx context.Context, ri *rostermodel.Item) error {
	return c.applyRosterItem(ctx, c.rep, ri)
}

// DeleteRosterItem removes the roster item associated to bareJID.
func (c *Client) DeleteRosterItem(ctx context.Context, bareJID string) error {
	return c.rep.DeleteRosterItem(ctx, c.username(), bareJID)
}

// ProcessElement enqueues an inbound element to be processed.
func (c *Client) ProcessElement(elem stravaganza.Element) <-chan error {
	errCh := make(chan error, 1)
	c.rq.Run(func() {
		ctx, cancel := c.requestContext()
		defer cancel()

		t0 := time.Now()
		err := c.processElement(ctx, elem)
		reportIncomingRequest(elem.Name(), elem.Attribute(stravaganza.Type), time.Since(t0).Seconds())

		errCh <- err
	})
	return errCh
}

// Close waits until every enqueued element has been processed and stops the client.
func (c *Client) Close(ctx context.Context) error {
	ch := make(chan struct{})
	c.rq.Stop(func() { close(ch) })

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) processElement(ctx context.Context, elem stravaganza.Element) error {
	switch elem.Name() {
	case "presence":
		if len(elem.Attribute(stravaganza.From)) == 0 {
			level.Warn(c.logger).Log("msg", "discarded presence without 'from' address")
			return nil
		}
		pr, err := c.addressed(elem).BuildPresence()
		if err != nil {
			level.Warn(c.logger).Log("msg", "discarded malformed presence", "err", err)
			return nil
		}
		return c.processPresence(ctx, pr)

	case "iq":
		iq, err := c.addressed(elem).BuildIQ()
		if err != nil {
			level.Warn(c.logger).Log("msg", "discarded malformed iq", "err", err)
			return nil
		}
		return c.processIQ(ctx, iq)

	default:
		level.Debug(c.logger).Log("msg", "ignored inbound element", "name", elem.Name())
		return nil
	}
}

// addressed returns a builder for elem where a missing 'to' is set to the client address
// and a missing 'from' to the client's own account, as implied by the stream.
func (c *Client) addressed(elem stravaganza.Element) *stravaganza.Builder {
	b := stravaganza.NewBuilderFromElement(elem)
	if len(elem.Attribute(stravaganza.From)) == 0 {
		b.WithAttribute(stravaganza.From, c.jd.ToBareJID().String())
	}
	if len(elem.Attribute(stravaganza.To)) == 0 {
		b.WithAttribute(stravaganza.To, c.jd.String())
	}
	return b
}

func (c *Client) processPresence(ctx context.Context, pr *stravaganza.Presence) error {
	fromJID := pr.FromJID()
	typ := pr.Attribute(stravaganza.Type)

	hookName := hook.PresenceHookByType(typ)
	if len(hookName) == 0 {
		level.Debug(c.logger).Log("msg", "ignored presence", "type", typ, "from", fromJID.String())
		return nil
	}
	if isSubscriptionType(typ) && fromJID.ToBareJID().String() != c.jd.ToBareJID().String() {
		if err := c.updateSubscription(ctx, fromJID.ToBareJID().String(), typ, inboundTransition, nil); err != nil {
			return err
		}
	}
	_, err := c.hk.Run(ctx, hookName, &hook.ExecutionContext{
		Info: &hook.PresenceInfo{
			JID:      fromJID,
			Presence: pr,
		},
		Sender: c,
	})
	return err
}

func (c *Client) sendElement(ctx context.Context, elem stravaganza.Element) error {
	err := c.sender.SendElement(ctx, elem)
	reportOutgoingRequest(elem.Name(), elem.Attribute(stravaganza.Type), err == nil)
	if err != nil {
		return fmt.Errorf("client: failed to send %s: %w", elem.Name(), err)
	}
	return nil
}

func (c *Client) username() string {
	if n := c.jd.Node(); len(n) > 0 {
		return n
	}
	return c.jd.Domain()
}

func (c *Client) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.cfg.RequestTimeout)
}

func isSubscriptionType(typ string) bool {
	switch typ {
	case stravaganza.SubscribeType, stravaganza.SubscribedType, stravaganza.UnsubscribeType, stravaganza.UnsubscribedType:
		return true
	}
	return false
}
