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

package memoryrepository

import (
	"context"
	"sort"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	rostermodel "github.com/tenda-dev/spade/pkg/model/roster"
	"github.com/tenda-dev/spade/pkg/storage/repository"
)

// Repository represents an in-memory repository implementation.
// Contents are lost once the process exits.
type Repository struct {
	mu     sync.RWMutex
	rep    *memRosterRep
	logger kitlog.Logger
}

// New creates and returns an initialized in-memory Repository instance.
func New(logger kitlog.Logger) *Repository {
	return &Repository{
		rep: &memRosterRep{
			items:    make(map[string]map[string]*rostermodel.Item),
			versions: make(map[string]string),
		},
		logger: logger,
	}
}

// UpsertRosterItem satisfies repository.Roster interface.
func (r *Repository) UpsertRosterItem(ctx context.Context, ri *rostermodel.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rep.UpsertRosterItem(ctx, ri)
}

// DeleteRosterItem satisfies repository.Roster interface.
func (r *Repository) DeleteRosterItem(ctx context.Context, username, jid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rep.DeleteRosterItem(ctx, username, jid)
}

// DeleteRosterItems satisfies repository.Roster interface.
func (r *Repository) DeleteRosterItems(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rep.DeleteRosterItems(ctx, username)
}

// FetchRosterItems satisfies repository.Roster interface.
func (r *Repository) FetchRosterItems(ctx context.Context, username string) ([]*rostermodel.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rep.FetchRosterItems(ctx, username)
}

// FetchRosterItemsInGroups satisfies repository.Roster interface.
func (r *Repository) FetchRosterItemsInGroups(ctx context.Context, username string, groups []string) ([]*rostermodel.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rep.FetchRosterItemsInGroups(ctx, username, groups)
}

// FetchRosterItem satisfies repository.Roster interface.
func (r *Repository) FetchRosterItem(ctx context.Context, username, jid string) (*rostermodel.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rep.FetchRosterItem(ctx, username, jid)
}

// UpsertRosterVersion satisfies repository.Roster interface.
func (r *Repository) UpsertRosterVersion(ctx context.Context, username, ver string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rep.UpsertRosterVersion(ctx, username, ver)
}

// FetchRosterVersion satisfies repository.Roster interface.
func (r *Repository) FetchRosterVersion(ctx context.Context, username string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rep.FetchRosterVersion(ctx, username)
}

// InTransaction runs f holding the repository write lock.
// Changes performed by f are discarded if it returns an error.
func (r *Repository) InTransaction(ctx context.Context, f func(ctx context.Context, tx repository.Transaction) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := r.rep.clone()
	if err := f(ctx, tx); err != nil {
		return err
	}
	r.rep = tx
	return nil
}

// Start implements Start interface method.
func (r *Repository) Start(_ context.Context) error {
	level.Info(r.logger).Log("msg", "started in-memory repository")
	return nil
}

// Stop implements Stop interface method.
func (r *Repository) Stop(_ context.Context) error {
	level.Info(r.logger).Log("msg", "stopped in-memory repository")
	return nil
}

type memRosterRep struct {
	items    map[string]map[string]*rostermodel.Item
	versions map[string]string
}

func (r *memRosterRep) UpsertRosterItem(_ context.Context, ri *rostermodel.Item) error {
	userItems := r.items[ri.Username]
	if userItems == nil {
		userItems = make(map[string]*rostermodel.Item)
		r.items[ri.Username] = userItems
	}
	userItems[ri.JID] = ri.Clone()
	return nil
}

func (r *memRosterRep) DeleteRosterItem(_ context.Context, username, jid string) error {
	delete(r.items[username], jid)
	return nil
}

func (r *memRosterRep) DeleteRosterItems(_ context.Context, username string) error {
	delete(r.items, username)
	return nil
}

func (r *memRosterRep) FetchRosterItems(_ context.Context, username string) ([]*rostermodel.Item, error) {
	userItems := r.items[username]
	if len(userItems) == 0 {
		return nil, nil
	}
	retVal := make([]*rostermodel.Item, 0, len(userItems))
	for _, itm := range userItems {
		retVal = append(retVal, itm.Clone())
	}
	sort.Slice(retVal, func(i, j int) bool { return retVal[i].JID < retVal[j].JID })
	return retVal, nil
}

func (r *memRosterRep) FetchRosterItemsInGroups(ctx context.Context, username string, groups []string) ([]*rostermodel.Item, error) {
	items, _ := r.FetchRosterItems(ctx, username)

	groupsMap := make(map[string]struct{}, len(groups))
	for _, gr := range groups {
		groupsMap[gr] = struct{}{}
	}
	var retVal []*rostermodel.Item
	for _, itm := range items {
		for _, gr := range itm.Groups {
			if _, ok := groupsMap[gr]; ok {
				retVal = append(retVal, itm)
				break
			}
		}
	}
	return retVal, nil
}

func (r *memRosterRep) FetchRosterItem(_ context.Context, username, jid string) (*rostermodel.Item, error) {
	itm := r.items[username][jid]
	if itm == nil {
		return nil, nil
	}
	return itm.Clone(), nil
}

func (r *memRosterRep) UpsertRosterVersion(_ context.Context, username, ver string) error {
	r.versions[username] = ver
	return nil
}

func (r *memRosterRep) FetchRosterVersion(_ context.Context, username string) (string, error) {
	return r.versions[username], nil
}

func (r *memRosterRep) clone() *memRosterRep {
	cp := &memRosterRep{
		items:    make(map[string]map[string]*rostermodel.Item, len(r.items)),
		versions: make(map[string]string, len(r.versions)),
	}
	for username, ver := range r.versions {
		cp.versions[username] = ver
	}
	for username, userItems := range r.items {
		cpItems := make(map[string]*rostermodel.Item, len(userItems))
		for jid, itm := range userItems {
			cpItems[jid] = itm
		}
		cp.items[username] = cpItems
	}
	return cp
}
