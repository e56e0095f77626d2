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

package xmppparser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/jackal-xmpp/stravaganza/v2"
)

const streamName = "stream"

// ParsingMode defines the way in which special parsed element
// should be considered or not according to the reader nature.
type ParsingMode int

const (
	// DefaultMode treats incoming elements as provided from raw byte reader.
	DefaultMode = ParsingMode(iota)

	// SocketStream treats incoming elements as provided from a socket transport.
	SocketStream
)

// ErrTooLargeStanza will be returned Parse when the size of the incoming stanza is too large.
var ErrTooLargeStanza = errors.New("parser: too large stanza")

// ErrStreamClosedByPeer will be returned by Parse when stream closed element is parsed.
var ErrStreamClosedByPeer = errors.New("parser: stream closed by peer")

// Parser reads a continuous XML stream and returns its top level elements one at a time.
type Parser struct {
	mode          ParsingMode
	dec           *xml.Decoder
	stack         []*stravaganza.Builder
	inElement     bool
	rootOffset    int64
	maxStanzaSize int64
}

// New creates an empty Parser instance.
func New(reader io.Reader, mode ParsingMode, maxStanzaSize int) *Parser {
	return &Parser{
		mode:          mode,
		dec:           xml.NewDecoder(reader),
		maxStanzaSize: int64(maxStanzaSize),
	}
}

// Parse blocks until the next top level element is read.
// io.EOF is returned once the underlying reader is exhausted.
func (p *Parser) Parse() (stravaganza.Element, error) {
	for {
		offset := p.dec.InputOffset()

		t, err := p.dec.RawToken()
		if err != nil {
			if errors.Is(err, io.EOF) && len(p.stack) > 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		switch t1 := t.(type) {
		case xml.StartElement:
			if len(p.stack) == 0 {
				p.rootOffset = offset
			}
			p.startElement(t1)
			if p.mode == SocketStream && isStreamName(t1.Name) {
				// stream open element is never closed before the session ends
				elem := p.stack[len(p.stack)-1].Build()
				p.reset()
				return elem, nil
			}

		case xml.CharData:
			if p.inElement {
				top := len(p.stack) - 1
				p.stack[top] = p.stack[top].WithText(string(t1))
			}

		case xml.EndElement:
			if p.mode == SocketStream && isStreamName(t1.Name) {
				return nil, ErrStreamClosedByPeer
			}
			elem, err := p.endElement(t1)
			if err != nil {
				return nil, err
			}
			if elem != nil {
				if p.exceedsMaxSize() {
					return nil, ErrTooLargeStanza
				}
				return elem, nil
			}
		}
		if len(p.stack) > 0 && p.exceedsMaxSize() {
			return nil, ErrTooLargeStanza
		}
	}
}

func (p *Parser) startElement(t xml.StartElement) {
	var attrs []stravaganza.Attribute
	for _, a := range t.Attr {
		attrs = append(attrs, stravaganza.Attribute{Label: xmlName(a.Name), Value: a.Value})
	}
	p.stack = append(p.stack, stravaganza.NewBuilder(xmlName(t.Name)).WithAttributes(attrs...))
	p.inElement = true
}

// endElement returns the built root element once its closing tag is reached.
func (p *Parser) endElement(t xml.EndElement) (stravaganza.Element, error) {
	name := xmlName(t.Name)
	if len(p.stack) == 0 {
		return nil, errUnexpectedEnd(name)
	}
	top := len(p.stack) - 1
	elem := p.stack[top].Build()
	if elem.Name() != name {
		return nil, errUnexpectedEnd(name)
	}
	p.stack = p.stack[:top]
	p.inElement = false

	if len(p.stack) == 0 {
		return elem, nil
	}
	p.stack[top-1] = p.stack[top-1].WithChild(elem)
	return nil, nil
}

func (p *Parser) exceedsMaxSize() bool {
	return p.dec.InputOffset()-p.rootOffset > p.maxStanzaSize
}

func (p *Parser) reset() {
	p.stack = nil
	p.inElement = false
}

func isStreamName(n xml.Name) bool {
	return n.Local == streamName && n.Space == streamName
}

func xmlName(n xml.Name) string {
	if len(n.Space) > 0 {
		return fmt.Sprintf("%s:%s", n.Space, n.Local)
	}
	return n.Local
}

func errUnexpectedEnd(name string) error {
	return fmt.Errorf("xmppparser: unexpected end element </%s>", name)
}
