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
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

type stdioTransport struct {
	lr *limitedReader
	bw *bufio.Writer
	c  io.Closer
}

// NewStdioTransport creates a transport reading stanzas from stdin and writing them to stdout.
func NewStdioTransport() Transport {
	return newStreamTransport(os.Stdin, os.Stdout, os.Stdin)
}

func newStreamTransport(r io.Reader, w io.Writer, c io.Closer) *stdioTransport {
	return &stdioTransport{
		lr: newLimitedReader(r),
		bw: bufio.NewWriterSize(w, writeBuffSize),
		c:  c,
	}
}

func (s *stdioTransport) Read(p []byte) (n int, err error) {
	return s.lr.Read(p)
}

func (s *stdioTransport) Write(p []byte) (n int, err error) {
	return s.bw.Write(p)
}

func (s *stdioTransport) WriteString(str string) (int, error) {
	n, err := io.Copy(s.bw, strings.NewReader(str))
	return int(n), err
}

func (s *stdioTransport) Close() error {
	if err := s.bw.Flush(); err != nil {
		return err
	}
	return s.c.Close()
}

func (s *stdioTransport) Type() Type {
	return Stdio
}

func (s *stdioTransport) Flush() error {
	return s.bw.Flush()
}

func (s *stdioTransport) SetWriteDeadline(_ time.Time) error {
	return nil
}

func (s *stdioTransport) SetReadRateLimiter(rLim *rate.Limiter) {
	s.lr.setLimiter(rLim)
}
