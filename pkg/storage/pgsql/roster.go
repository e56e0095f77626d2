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

package pgsqlrepository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	kitlog "github.com/go-kit/log"
	"github.com/lib/pq"
	"github.com/lib/pq/hstore"
	rostermodel "github.com/tenda-dev/spade/pkg/model/roster"
)

const (
	rosterItemsTableName    = "roster_items"
	rosterVersionsTableName = "roster_versions"
)

var rosterItemColumns = []string{"username", "jid", "name", "subscription", "groups", "ask", "attributes"}

type pgSQLRosterRep struct {
	conn   conn
	logger kitlog.Logger
}

func (r *pgSQLRosterRep) UpsertRosterItem(ctx context.Context, ri *rostermodel.Item) error {
	q := sq.Insert(rosterItemsTableName).
		Columns(rosterItemColumns...).
		Values(ri.Username, ri.JID, ri.Name, ri.Subscription, pq.Array(ri.Groups), ri.Ask, toHstore(ri.Attributes)).
		Suffix("ON CONFLICT (username, jid) DO UPDATE SET name = $3, subscription = $4, groups = $5, ask = $6, attributes = $7")

	_, err := q.RunWith(r.conn).ExecContext(ctx)
	return err
}

func (r *pgSQLRosterRep) DeleteRosterItem(ctx context.Context, username, jid string) error {
	_, err := sq.Delete(rosterItemsTableName).
		Where(sq.And{sq.Eq{"username": username}, sq.Eq{"jid": jid}}).
		RunWith(r.conn).ExecContext(ctx)
	return err
}

func (r *pgSQLRosterRep) DeleteRosterItems(ctx context.Context, username string) error {
	_, err := sq.Delete(rosterItemsTableName).
		Where(sq.Eq{"username": username}).
		RunWith(r.conn).ExecContext(ctx)
	return err
}

func (r *pgSQLRosterRep) FetchRosterItems(ctx context.Context, username string) ([]*rostermodel.Item, error) {
	q := sq.Select(rosterItemColumns...).
		From(rosterItemsTableName).
		Where(sq.Eq{"username": username}).
		OrderBy("created_at DESC")

	rows, err := q.RunWith(r.conn).QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows, r.logger)

	return scanRosterItems(rows)
}

func (r *pgSQLRosterRep) FetchRosterItemsInGroups(ctx context.Context, username string, groups []string) ([]*rostermodel.Item, error) {
	q := sq.Select(rosterItemColumns...).
		From(rosterItemsTableName).
		Where(sq.Expr("username = $1 AND groups && $2", username, pq.Array(groups))).
		OrderBy("created_at DESC")

	rows, err := q.RunWith(r.conn).QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows, r.logger)

	return scanRosterItems(rows)
}

func (r *pgSQLRosterRep) FetchRosterItem(ctx context.Context, username, jid string) (*rostermodel.Item, error) {
	q := sq.Select(rosterItemColumns...).
		From(rosterItemsTableName).
		Where(sq.And{sq.Eq{"username": username}, sq.Eq{"jid": jid}})

	ri, err := scanRosterItem(q.RunWith(r.conn).QueryRowContext(ctx))
	switch err {
	case nil:
		return ri, nil
	case sql.ErrNoRows:
		return nil, nil
	default:
		return nil, err
	}
}

func (r *pgSQLRosterRep) UpsertRosterVersion(ctx context.Context, username, ver string) error {
	q := sq.Insert(rosterVersionsTableName).
		Columns("username", "ver").
		Values(username, ver).
		Suffix("ON CONFLICT (username) DO UPDATE SET ver = $2")

	_, err := q.RunWith(r.conn).ExecContext(ctx)
	return err
}

func (r *pgSQLRosterRep) FetchRosterVersion(ctx context.Context, username string) (string, error) {
	var ver string

	err := sq.Select("ver").
		From(rosterVersionsTableName).
		Where(sq.Eq{"username": username}).
		RunWith(r.conn).
		QueryRowContext(ctx).
		Scan(&ver)
	switch err {
	case nil:
		return ver, nil
	case sql.ErrNoRows:
		return "", nil
	default:
		return "", err
	}
}

func scanRosterItem(scanner rowScanner) (*rostermodel.Item, error) {
	var ri rostermodel.Item
	var attrs hstore.Hstore

	err := scanner.Scan(
		&ri.Username,
		&ri.JID,
		&ri.Name,
		&ri.Subscription,
		pq.Array(&ri.Groups),
		&ri.Ask,
		&attrs,
	)
	if err != nil {
		return nil, err
	}
	ri.Attributes = fromHstore(attrs)
	return &ri, nil
}

func scanRosterItems(scanner rowsScanner) ([]*rostermodel.Item, error) {
	var ret []*rostermodel.Item
	for scanner.Next() {
		ri, err := scanRosterItem(scanner)
		if err != nil {
			return nil, err
		}
		ret = append(ret, ri)
	}
	return ret, nil
}

func toHstore(m map[string]string) hstore.Hstore {
	var h hstore.Hstore
	if len(m) == 0 {
		return h
	}
	h.Map = make(map[string]sql.NullString, len(m))
	for k, v := range m {
		h.Map[k] = sql.NullString{String: v, Valid: true}
	}
	return h
}

func fromHstore(h hstore.Hstore) map[string]string {
	if len(h.Map) == 0 {
		return nil
	}
	m := make(map[string]string, len(h.Map))
	for k, v := range h.Map {
		if v.Valid {
			m[k] = v.String
		}
	}
	return m
}
