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

package boltdb

import (
	"context"
	"fmt"

	rostermodel "github.com/tenda-dev/spade/pkg/model/roster"
	bolt "go.etcd.io/bbolt"
)

const rosterVersionsBucket = "roster:versions"

type boltDBRosterRep struct {
	tx *bolt.Tx
}

func newRosterRep(tx *bolt.Tx) *boltDBRosterRep {
	return &boltDBRosterRep{tx: tx}
}

func (r *boltDBRosterRep) UpsertRosterItem(_ context.Context, ri *rostermodel.Item) error {
	op := upsertKeyOp{
		tx:     r.tx,
		bucket: rosterItemsBucketKey(ri.Username),
		key:    ri.JID,
		obj:    ri,
	}
	return op.do()
}

func (r *boltDBRosterRep) DeleteRosterItem(_ context.Context, username, jid string) error {
	op := delKeyOp{
		tx:     r.tx,
		bucket: rosterItemsBucketKey(username),
		key:    jid,
	}
	return op.do()
}

func (r *boltDBRosterRep) DeleteRosterItems(_ context.Context, username string) error {
	op := delBucketOp{
		tx:     r.tx,
		bucket: rosterItemsBucketKey(username),
	}
	return op.do()
}

func (r *boltDBRosterRep) FetchRosterItems(_ context.Context, username string) ([]*rostermodel.Item, error) {
	var retVal []*rostermodel.Item

	op := iterKeysOp{
		tx:     r.tx,
		bucket: rosterItemsBucketKey(username),
		iterFn: func(_, b []byte) error {
			var itm rostermodel.Item
			if err := itm.UnmarshalBinary(b); err != nil {
				return err
			}
			retVal = append(retVal, &itm)
			return nil
		},
	}
	if err := op.do(); err != nil {
		return nil, err
	}
	return retVal, nil
}

func (r *boltDBRosterRep) FetchRosterItemsInGroups(_ context.Context, username string, groups []string) ([]*rostermodel.Item, error) {
	var retVal []*rostermodel.Item

	groupsMap := make(map[string]struct{}, len(groups))
	for _, gr := range groups {
		groupsMap[gr] = struct{}{}
	}
	op := iterKeysOp{
		tx:     r.tx,
		bucket: rosterItemsBucketKey(username),
		iterFn: func(_, b []byte) error {
			var itm rostermodel.Item
			if err := itm.UnmarshalBinary(b); err != nil {
				return err
			}
			for _, gr := range itm.Groups {
				if _, ok := groupsMap[gr]; ok {
					retVal = append(retVal, &itm)
					return nil
				}
			}
			return nil
		},
	}
	if err := op.do(); err != nil {
		return nil, err
	}
	return retVal, nil
}

func (r *boltDBRosterRep) FetchRosterItem(_ context.Context, username, jid string) (*rostermodel.Item, error) {
	op := fetchKeyOp{
		tx:     r.tx,
		bucket: rosterItemsBucketKey(username),
		key:    jid,
		obj:    &rostermodel.Item{},
	}
	obj, err := op.do()
	if err != nil {
		return nil, err
	}
	switch {
	case obj != nil:
		return obj.(*rostermodel.Item), nil
	default:
		return nil, nil
	}
}

func (r *boltDBRosterRep) UpsertRosterVersion(_ context.Context, username, ver string) error {
	op := putValueOp{
		tx:     r.tx,
		bucket: rosterVersionsBucket,
		key:    username,
		value:  []byte(ver),
	}
	return op.do()
}

func (r *boltDBRosterRep) FetchRosterVersion(_ context.Context, username string) (string, error) {
	op := getValueOp{
		tx:     r.tx,
		bucket: rosterVersionsBucket,
		key:    username,
	}
	return string(op.do()), nil
}

func rosterItemsBucketKey(username string) string {
	return fmt.Sprintf("roster:items:%s", username)
}

// UpsertRosterItem satisfies repository.Roster interface.
func (r *Repository) UpsertRosterItem(ctx context.Context, ri *rostermodel.Item) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return newRosterRep(tx).UpsertRosterItem(ctx, ri)
	})
}

// DeleteRosterItem satisfies repository.Roster interface.
func (r *Repository) DeleteRosterItem(ctx context.Context, username, jid string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return newRosterRep(tx).DeleteRosterItem(ctx, username, jid)
	})
}

// DeleteRosterItems satisfies repository.Roster interface.
func (r *Repository) DeleteRosterItems(ctx context.Context, username string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return newRosterRep(tx).DeleteRosterItems(ctx, username)
	})
}

// FetchRosterItems satisfies repository.Roster interface.
func (r *Repository) FetchRosterItems(ctx context.Context, username string) (items []*rostermodel.Item, err error) {
	err = r.db.View(func(tx *bolt.Tx) error {
		items, err = newRosterRep(tx).FetchRosterItems(ctx, username)
		return err
	})
	return
}

// FetchRosterItemsInGroups satisfies repository.Roster interface.
func (r *Repository) FetchRosterItemsInGroups(ctx context.Context, username string, groups []string) (items []*rostermodel.Item, err error) {
	err = r.db.View(func(tx *bolt.Tx) error {
		items, err = newRosterRep(tx).FetchRosterItemsInGroups(ctx, username, groups)
		return err
	})
	return
}

// FetchRosterItem satisfies repository.Roster interface.
func (r *Repository) FetchRosterItem(ctx context.Context, username, jid string) (item *rostermodel.Item, err error) {
	err = r.db.View(func(tx *bolt.Tx) error {
		item, err = newRosterRep(tx).FetchRosterItem(ctx, username, jid)
		return err
	})
	return
}

// UpsertRosterVersion satisfies repository.Roster interface.
func (r *Repository) UpsertRosterVersion(ctx context.Context, username, ver string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return newRosterRep(tx).UpsertRosterVersion(ctx, username, ver)
	})
}

// FetchRosterVersion satisfies repository.Roster interface.
func (r *Repository) FetchRosterVersion(ctx context.Context, username string) (ver string, err error) {
	err = r.db.View(func(tx *bolt.Tx) error {
		ver, err = newRosterRep(tx).FetchRosterVersion(ctx, username)
		return err
	})
	return
}
