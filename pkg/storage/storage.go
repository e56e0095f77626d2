// Copyright 2021 The jackal Authors
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

package storage

import (
	"fmt"

	kitlog "github.com/go-kit/log"
	boltdbrepository "github.com/tenda-dev/spade/pkg/storage/boltdb"
	measuredrepository "github.com/tenda-dev/spade/pkg/storage/measured"
	memoryrepository "github.com/tenda-dev/spade/pkg/storage/memory"
	pgsqlrepository "github.com/tenda-dev/spade/pkg/storage/pgsql"
	"github.com/tenda-dev/spade/pkg/storage/repository"
)

const (
	memoryRepositoryType = "memory"
	boltDBRepositoryType = "boltdb"
	pgSQLRepositoryType  = "pgsql"
)

// Config contains repository configuration.
type Config struct {
	Type   string                  `fig:"type" default:"boltdb"`
	BoltDB boltdbrepository.Config `fig:"boltdb"`
	PgSQL  pgsqlrepository.Config  `fig:"pgsql"`
}

// New returns a measured repository instance of the configured type.
func New(cfg Config, logger kitlog.Logger) (repository.Repository, error) {
	var rep repository.Repository

	logger = kitlog.With(logger, "repository", cfg.Type)
	switch cfg.Type {
	case memoryRepositoryType:
		rep = memoryrepository.New(logger)
	case boltDBRepositoryType:
		rep = boltdbrepository.New(cfg.BoltDB, logger)
	case pgSQLRepositoryType:
		rep = pgsqlrepository.New(cfg.PgSQL, logger)
	default:
		return nil, fmt.Errorf("storage: unrecognized repository type: %s", cfg.Type)
	}
	return measuredrepository.New(rep), nil
}
