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
	"bufio"
	"io"
	"net"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const writeBuffSize = 4096

type socketTransport struct {
	conn net.Conn
	lr   *limitedReader
	bw   *bufio.Writer
}

// NewSocketTransport creates a socket class stanza transport.
func NewSocketTransport(conn net.Conn) Transport {
	return &socketTransport{
		conn: conn,
		lr:   newLimitedReader(conn),
		bw:   bufio.NewWriterSize(conn, writeBuffSize),
	}
}

func (s *socketTransport) Read(p []byte) (n int, err error) {
	return s.lr.Read(p)
}

func (s *socketTransport) Write(p []byte) (n int, err error) {
	return s.bw.Write(p)
}

func (s *socketTransport) WriteString(str string) (int, error) {
	n, err := io.Copy(s.bw, strings.NewReader(str))
	return int(n), err
}

func (s *socketTransport) Close() error {
	return s.conn.Close()
}

func (s *socketTransport) Type() Type {
	return Socket
}

func (s *socketTransport) Flush() error {
	return s.bw.Flush()
}

func (s *socketTransport) SetWriteDeadline(d time.Time) error {
	return s.conn.SetWriteDeadline(d)
}

func (s *socketTransport) SetReadRateLimiter(rLim *rate.Limiter) {
	s.lr.setLimiter(rLim)
}
