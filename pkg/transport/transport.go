// Copyright 2020 The jackal Authors
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

package transport

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"

	"golang.org/x/time/rate"
)

// Type represents a stanza transport type.
type Type int

const (
	// Socket represents a socket transport type.
	Socket Type = iota + 1

	// Stdio represents a transport bound to the process standard streams.
	Stdio
)

// String returns TransportType string representation.
func (tt Type) String() string {
	switch tt {
	case Socket:
		return "socket"
	case Stdio:
		return "stdio"
	}
	return ""
}

// Config contains transport configuration.
type Config struct {
	// Address is the TCP address stanzas are exchanged with. An empty value binds the transport to stdin/stdout.
	Address string `fig:"address"`

	DialTimeout  time.Duration `fig:"dial_timeout" default:"5s"`
	WriteTimeout time.Duration `fig:"write_timeout" default:"5s"`

	// ReadRateLimit is the maximum number of inbound bytes per second (0 means unlimited).
	ReadRateLimit float64 `fig:"read_rate_limit"`
	ReadBurst     int     `fig:"read_burst" default:"65536"`

	// MaxStanzaSize is the maximum size in bytes of an inbound stanza.
	MaxStanzaSize int `fig:"max_stanza_size" default:"32768"`
}

// Transport represents a stanza transport mechanism.
type Transport interface {
	io.ReadWriteCloser

	// Type returns transport type value.
	Type() Type

	// WriteString writes a raw string to the transport.
	WriteString(s string) (n int, err error)

	// Flush writes any buffered data to the underlying io.Writer.
	Flush() error

	// SetWriteDeadline sets the deadline for future write calls.
	SetWriteDeadline(d time.Time) error

	// SetReadRateLimiter sets transport read rate limiter.
	SetReadRateLimiter(rLim *rate.Limiter)
}

// Dial connects to cfg.Address and returns a socket transport bound to the established connection.
func Dial(ctx context.Context, cfg Config) (Transport, error) {
	d := net.Dialer{Timeout: cfg.DialTimeout}
	conn, err := d.DialContext(ctx, "tcp", cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("transport: failed to dial %s: %w", cfg.Address, err)
	}
	tr := NewSocketTransport(conn)
	applyReadRateLimit(tr, cfg)
	return tr, nil
}

// New returns a transport according to cfg: a socket transport when an address
// is configured, a standard streams one otherwise.
func New(ctx context.Context, cfg Config) (Transport, error) {
	if len(cfg.Address) > 0 {
		return Dial(ctx, cfg)
	}
	tr := NewStdioTransport()
	applyReadRateLimit(tr, cfg)
	return tr, nil
}

func applyReadRateLimit(tr Transport, cfg Config) {
	if cfg.ReadRateLimit <= 0 {
		return
	}
	tr.SetReadRateLimiter(rate.NewLimiter(rate.Limit(cfg.ReadRateLimit), cfg.ReadBurst))
}
