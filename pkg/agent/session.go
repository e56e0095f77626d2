// Copyright 2021 The jackal Authors
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

package agent

import (
	"context"
	"errors"
	"fmt"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/tenda-dev/spade/pkg/client"
	"github.com/tenda-dev/spade/pkg/presence"
	"github.com/tenda-dev/spade/pkg/transport"
)

// session binds the protocol client to its transport for the agent lifetime.
type session struct {
	cl            *client.Client
	mng           *presence.Manager
	tr            transport.Transport
	maxStanzaSize int
	offline       bool
	logger        kitlog.Logger

	cancel context.CancelFunc
	doneCh chan struct{}
	once   sync.Once
}

func newSession(
	cl *client.Client,
	mng *presence.Manager,
	tr transport.Transport,
	maxStanzaSize int,
	offline bool,
	logger kitlog.Logger,
) *session {
	return &session{
		cl:            cl,
		mng:           mng,
		tr:            tr,
		maxStanzaSize: maxStanzaSize,
		offline:       offline,
		logger:        logger,
		doneCh:        make(chan struct{}),
	}
}

// Start begins serving inbound elements, requests the roster and announces the initial presence.
func (s *session) Start(ctx context.Context) error {
	serveCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go func() {
		defer close(s.doneCh)
		if err := s.cl.Serve(serveCtx, s.tr, s.maxStanzaSize); err != nil {
			level.Error(s.logger).Log("msg", "session terminated", "err", err)
		}
	}()
	if err := s.cl.RequestRoster(ctx); err != nil {
		return fmt.Errorf("agent: failed to request roster: %w", err)
	}
	if !s.offline {
		if err := s.mng.SetAvailable(ctx); err != nil {
			return err
		}
	}
	level.Info(s.logger).Log("msg", "session started", "jid", s.cl.JID().String(), "transport", s.tr.Type().String())
	return nil
}

// Stop announces unavailability and releases the session resources.
func (s *session) Stop(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		if s.mng.IsAvailable() {
			if uErr := s.mng.SetUnavailable(ctx); uErr != nil {
				level.Warn(s.logger).Log("msg", "failed to send unavailable presence", "err", uErr)
			}
		}
		if s.cancel != nil {
			s.cancel()
		}
		err = errors.Join(s.tr.Close(), s.cl.Close(ctx))
	})
	if err != nil {
		return err
	}
	level.Info(s.logger).Log("msg", "session stopped")
	return nil
}

// Done returns a channel that's closed once the inbound stream ends.
func (s *session) Done() <-chan struct{} {
	return s.doneCh
}

func (s *session) alive() bool {
	select {
	case <-s.doneCh:
		return false
	default:
		return true
	}
}
