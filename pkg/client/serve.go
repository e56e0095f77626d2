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
	"io"

	"github.com/go-kit/log/level"
	xmppparser "github.com/tenda-dev/spade/pkg/parser"
	"github.com/tenda-dev/spade/pkg/transport"
)

// Serve reads inbound elements from tr until the stream ends or ctx is done,
// handing each of them over to ProcessElement.
func (c *Client) Serve(ctx context.Context, tr transport.Transport, maxStanzaSize int) error {
	ps := xmppparser.New(tr, xmppparser.SocketStream, maxStanzaSize)
	for {
		elem, err := ps.Parse()
		switch {
		case err == nil:
			break
		case errors.Is(err, io.EOF), errors.Is(err, xmppparser.ErrStreamClosedByPeer):
			level.Info(c.logger).Log("msg", "inbound stream closed")
			return nil
		default:
			if ctx.Err() != nil {
				return nil // transport closed on shutdown
			}
			return err
		}
		if elem.Name() == "stream:stream" {
			continue
		}
		select {
		case err := <-c.ProcessElement(elem):
			if err != nil {
				level.Warn(c.logger).Log("msg", "failed to process inbound element", "name", elem.Name(), "err", err)
			}
		case <-ctx.Done():
			return nil
		}
	}
}
