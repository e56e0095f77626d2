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

package presence

import (
	"fmt"
	"sort"

	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

// Lang represents a status language tag.
type Lang string

// DefaultLang is the key of the status text carrying no language tag.
const DefaultLang = Lang("")

// ParseLang validates tag and returns its canonical Lang form.
func ParseLang(tag string) (Lang, error) {
	if len(tag) == 0 {
		return DefaultLang, nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return DefaultLang, fmt.Errorf("presence: invalid language tag %q: %w", tag, err)
	}
	return Lang(t.String()), nil
}

// Status represents a set of human-readable status texts keyed by language.
type Status map[Lang]string

// NewStatus returns a Status holding text as its default entry.
func NewStatus(text string) Status {
	return Status{DefaultLang: text}
}

// Text returns the status text that best matches lang.
// The default entry is returned when no language matches.
func (s Status) Text(lang Lang) string {
	if txt, ok := s[lang]; ok {
		return txt
	}
	if lang == DefaultLang {
		return ""
	}
	want, err := language.Parse(string(lang))
	if err != nil {
		return s[DefaultLang]
	}
	var tags []language.Tag
	var keys []Lang
	for _, k := range s.langs() {
		t, err := language.Parse(string(k))
		if k == DefaultLang || err != nil {
			continue
		}
		tags = append(tags, t)
		keys = append(keys, k)
	}
	if len(tags) > 0 {
		_, idx, conf := language.NewMatcher(tags).Match(want)
		if conf != language.No {
			return s[keys[idx]]
		}
	}
	return s[DefaultLang]
}

// Clone returns a copy of s.
func (s Status) Clone() Status {
	if s == nil {
		return nil
	}
	cp := make(Status, len(s))
	for k, v := range s {
		cp[k] = v
	}
	return cp
}

func (s Status) langs() []Lang {
	langs := lo.Keys(s)
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

func (s Status) elements() []stravaganza.Element {
	var elems []stravaganza.Element
	for _, lang := range s.langs() {
		b := stravaganza.NewBuilder("status").WithText(s[lang])
		if lang != DefaultLang {
			b.WithAttribute(stravaganza.Language, string(lang))
		}
		elems = append(elems, b.Build())
	}
	return elems
}

func statusFromPresence(pr *stravaganza.Presence) Status {
	st := make(Status)
	for _, elem := range pr.Children("status") {
		tag := elem.Attribute(stravaganza.Language)
		lang, err := ParseLang(tag)
		if err != nil {
			lang = Lang(tag)
		}
		st[lang] = elem.Text()
	}
	return st
}
