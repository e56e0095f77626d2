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

package measuredrepository

import (
	"context"
	"time"

	rostermodel "github.com/tenda-dev/spade/pkg/model/roster"
	"github.com/tenda-dev/spade/pkg/storage/repository"
)

type measuredRosterRep struct {
	rep  repository.Roster
	inTx bool
}

func (m *measuredRosterRep) UpsertRosterItem(ctx context.Context, ri *rostermodel.Item) error {
	t0 := time.Now()
	err := m.rep.UpsertRosterItem(ctx, ri)
	reportOpMetric(upsertOp, time.Since(t0).Seconds(), err == nil, m.inTx)
	return err
}

func (m *measuredRosterRep) DeleteRosterItem(ctx context.Context, username, jid string) error {
	t0 := time.Now()
	err := m.rep.DeleteRosterItem(ctx, username, jid)
	reportOpMetric(deleteOp, time.Since(t0).Seconds(), err == nil, m.inTx)
	return err
}

func (m *measuredRosterRep) DeleteRosterItems(ctx context.Context, username string) error {
	t0 := time.Now()
	err := m.rep.DeleteRosterItems(ctx, username)
	reportOpMetric(deleteOp, time.Since(t0).Seconds(), err == nil, m.inTx)
	return err
}

func (m *measuredRosterRep) FetchRosterItems(ctx context.Context, username string) (items []*rostermodel.Item, err error) {
	t0 := time.Now()
	items, err = m.rep.FetchRosterItems(ctx, username)
	reportOpMetric(fetchOp, time.Since(t0).Seconds(), err == nil, m.inTx)
	return
}

func (m *measuredRosterRep) FetchRosterItemsInGroups(ctx context.Context, username string, groups []string) (items []*rostermodel.Item, err error) {
	t0 := time.Now()
	items, err = m.rep.FetchRosterItemsInGroups(ctx, username, groups)
	reportOpMetric(fetchOp, time.Since(t0).Seconds(), err == nil, m.inTx)
	return
}

func (m *measuredRosterRep) FetchRosterItem(ctx context.Context, username, jid string) (item *rostermodel.Item, err error) {
	t0 := time.Now()
	item, err = m.rep.FetchRosterItem(ctx, username, jid)
	reportOpMetric(fetchOp, time.Since(t0).Seconds(), err == nil, m.inTx)
	return
}

func (m *measuredRosterRep) UpsertRosterVersion(ctx context.Context, username, ver string) error {
	t0 := time.Now()
	err := m.rep.UpsertRosterVersion(ctx, username, ver)
	reportOpMetric(upsertOp, time.Since(t0).Seconds(), err == nil, m.inTx)
	return err
}

func (m *measuredRosterRep) FetchRosterVersion(ctx context.Context, username string) (ver string, err error) {
	t0 := time.Now()
	ver, err = m.rep.FetchRosterVersion(ctx, username)
	reportOpMetric(fetchOp, time.Since(t0).Seconds(), err == nil, m.inTx)
	return
}
