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

package hook

import (
	"context"
	"errors"
	"math"
	"reflect"
	"sort"
	"sync"
)

// Priority defines hook execution priority.
type Priority int32

const (
	// LowestPriority defines lowest hook execution priority.
	LowestPriority = Priority(math.MinInt32)

	// LowPriority defines low hook execution priority.
	LowPriority = Priority(math.MinInt32 + 1000)

	// DefaultPriority defines default hook execution priority.
	DefaultPriority = Priority(0)

	// HighPriority defines high hook execution priority.
	HighPriority = Priority(math.MaxInt32 - 1000)

	// HighestPriority defines highest hook execution priority.
	HighestPriority = Priority(math.MaxInt32)
)

// Handler defines a generic hook handler function.
type Handler func(ctx context.Context, execCtx *ExecutionContext) error

// ErrStopped error is returned by a handler to halt hook execution.
var ErrStopped = errors.New("hook: execution stopped")

// ExecutionContext defines a hook execution info context.
type ExecutionContext struct {
	Info   interface{}
	Sender interface{}
}

// HandlerID identifies a handler registration.
type HandlerID uint64

type handler struct {
	id HandlerID
	h  Handler
	p  Priority
}

// Hooks represents a set of named hook handlers.
type Hooks struct {
	mu       sync.RWMutex
	handlers map[string][]handler
	nextID   HandlerID
}

// NewHooks returns a new initialized Hooks instance.
func NewHooks() *Hooks {
	return &Hooks{
		handlers: make(map[string][]handler),
	}
}

// AddHook adds a new handler to a given hook providing an execution priority value.
// hnd priority may be any number (including negative). Handlers with a higher priority are executed first.
// The returned identifier can be used to remove this registration through RemoveHandler.
func (h *Hooks) AddHook(hook string, hnd Handler, priority Priority) HandlerID {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID

	handlers := h.handlers[hook]
	handlers = append(handlers, handler{
		id: id, h: hnd, p: priority,
	})
	// stable so that equal priorities keep registration order
	sort.SliceStable(handlers, func(i, j int) bool { return handlers[i].p > handlers[j].p })

	h.handlers[hook] = handlers
	return id
}

// RemoveHook removes a hook registered handler.
// Handlers are matched by code pointer, so method values of the same method bound to
// different receivers are indistinguishable. Use RemoveHandler for those.
func (h *Hooks) RemoveHook(hook string, hnd Handler) {
	h.removeFirst(hook, func(hd handler) bool {
		return reflect.ValueOf(hd.h).Pointer() == reflect.ValueOf(hnd).Pointer()
	})
}

// RemoveHandler removes the hook handler registration identified by id.
func (h *Hooks) RemoveHandler(hook string, id HandlerID) {
	h.removeFirst(hook, func(hd handler) bool { return hd.id == id })
}

func (h *Hooks) removeFirst(hook string, matchFn func(hd handler) bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	handlers := h.handlers[hook]
	for i, hd := range handlers {
		if !matchFn(hd) {
			continue
		}
		h.handlers[hook] = append(handlers[:i], handlers[i+1:]...)
		return
	}
}

// Len returns the number of handlers registered for a given hook.
func (h *Hooks) Len(hook string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.handlers[hook])
}

// Run invokes all hook handlers in order.
// If halted return value is true no more handlers are invoked.
func (h *Hooks) Run(ctx context.Context, hook string, execCtx *ExecutionContext) (halted bool, err error) {
	h.mu.RLock()
	handlers := make([]handler, len(h.handlers[hook]))
	copy(handlers, h.handlers[hook])
	h.mu.RUnlock()

	for _, handler := range handlers {
		err := handler.h(ctx, execCtx)
		switch {
		case err == nil:
			break
		case errors.Is(err, ErrStopped):
			return true, nil
		default:
			return false, err
		}
	}
	return false, nil
}
