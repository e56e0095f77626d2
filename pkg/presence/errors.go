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

import "errors"

var (
	// ErrContactNotFound is returned when a contact address is not part of the roster.
	ErrContactNotFound = errors.New("presence: contact not found")

	// ErrInvalidAddress is returned when an operation is given a missing contact address.
	ErrInvalidAddress = errors.New("presence: invalid address")
)
