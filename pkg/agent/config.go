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

package agent

import (
	"fmt"
	"path/filepath"

	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/kkyr/fig"
	"github.com/tenda-dev/spade/pkg/client"
	"github.com/tenda-dev/spade/pkg/log"
	"github.com/tenda-dev/spade/pkg/presence"
	"github.com/tenda-dev/spade/pkg/storage"
	"github.com/tenda-dev/spade/pkg/transport"
)

// Config contains the agent configuration.
type Config struct {
	Logger log.Config `fig:"logger"`

	HTTPPort int `fig:"http_port" default:"6060"`

	// JID is the agent full address.
	JID string `fig:"jid" validate:"required"`

	// Offline skips the initial available presence sent at start.
	Offline bool `fig:"offline"`

	Presence  presence.Config  `fig:"presence"`
	Storage   storage.Config   `fig:"storage"`
	Transport transport.Config `fig:"transport"`
	Client    client.Config    `fig:"client"`
}

func loadConfig(configFile string) (*Config, error) {
	var cfg Config
	file := filepath.Base(configFile)
	dir := filepath.Dir(configFile)

	err := fig.Load(&cfg, fig.File(file), fig.Dirs(dir))
	if err != nil {
		return nil, err
	}
	if _, err := jid.NewWithString(cfg.JID, false); err != nil {
		return nil, fmt.Errorf("agent: invalid jid %q: %w", cfg.JID, err)
	}
	return &cfg, nil
}
