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
	"sync"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/sony/gobreaker"
	"github.com/tenda-dev/spade/pkg/transport"
)

// BreakerConfig contains outbound circuit breaker configuration.
type BreakerConfig struct {
	// MaxFailures is the number of consecutive send failures that opens the breaker.
	MaxFailures uint32 `fig:"max_failures" default:"5"`

	// Timeout is the period of the open state after which the breaker becomes half-open.
	Timeout time.Duration `fig:"timeout" default:"30s"`
}

// StreamSender writes outbound elements to a transport.
type StreamSender struct {
	mu sync.Mutex
	tr transport.Transport
}

// NewStreamSender returns a Sender that serializes elements into tr.
func NewStreamSender(tr transport.Transport) *StreamSender {
	return &StreamSender{tr: tr}
}

// SendElement satisfies Sender interface.
func (s *StreamSender) SendElement(ctx context.Context, elem stravaganza.Element) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := ctx.Deadline(); ok {
		_ = s.tr.SetWriteDeadline(d)
	}
	if err := elem.ToXML(s.tr, true); err != nil {
		return err
	}
	return s.tr.Flush()
}

// BreakerSender guards a Sender with a circuit breaker, failing fast
// while the underlying sender keeps erroring.
type BreakerSender struct {
	next Sender
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerSender returns a BreakerSender wrapping next.
func NewBreakerSender(next Sender, cfg BreakerConfig, logger kitlog.Logger) *BreakerSender {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	return &BreakerSender{
		next: next,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "sender",
			Timeout: cfg.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxFailures
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				level.Warn(logger).Log("msg", "circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			},
		}),
	}
}

// SendElement satisfies Sender interface.
func (s *BreakerSender) SendElement(ctx context.Context, elem stravaganza.Element) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.next.SendElement(ctx, elem)
	})
	return err
}
