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

import "fmt"

// ShowState represents the availability sub-state of an available entity.
type ShowState string

const (
	// ShowNone represents an available entity with no particular sub-state.
	ShowNone = ShowState("")

	// ShowChat represents an entity actively interested in chatting.
	ShowChat = ShowState("chat")

	// ShowAway represents a temporarily away entity.
	ShowAway = ShowState("away")

	// ShowExtendedAway represents an entity away for an extended period.
	ShowExtendedAway = ShowState("xa")

	// ShowDoNotDisturb represents a busy entity.
	ShowDoNotDisturb = ShowState("dnd")
)

// ParseShow returns the ShowState matching a show element text.
func ParseShow(s string) (ShowState, error) {
	show := ShowState(s)
	if !show.IsValid() {
		return ShowNone, fmt.Errorf("presence: unrecognized show value: %s", s)
	}
	return show, nil
}

// IsValid tells whether s is a known show value.
func (s ShowState) IsValid() bool {
	switch s {
	case ShowNone, ShowChat, ShowAway, ShowExtendedAway, ShowDoNotDisturb:
		return true
	}
	return false
}
