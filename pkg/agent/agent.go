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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/spf13/pflag"
	"github.com/tenda-dev/spade/pkg/client"
	"github.com/tenda-dev/spade/pkg/hook"
	"github.com/tenda-dev/spade/pkg/log"
	"github.com/tenda-dev/spade/pkg/presence"
	"github.com/tenda-dev/spade/pkg/storage"
	"github.com/tenda-dev/spade/pkg/storage/repository"
	"github.com/tenda-dev/spade/pkg/transport"
	"github.com/tenda-dev/spade/pkg/version"
)

const (
	defaultBootstrapTimeout = time.Minute
	defaultShutdownTimeout  = time.Second * 30

	envConfigFile = "SPADE_CONFIG_FILE"
)

var logoStr = []string{
	`                     _      `,
	`  ___ _ __   __ _  __| | ___ `,
	` / __| '_ \ / _' |/ _' |/ _ \`,
	` \__ \ |_) | (_| | (_| |  __/`,
	` |___/ .__/ \__,_|\__,_|\___|`,
	`     |_|                     `,
}

const usageStr = `
Usage: spade [options]
Agent Options:
    --config <file>    Configuration file path
Common Options:
    --help             Show this message
    --version          Print version information
`

type starter interface {
	Start(ctx context.Context) error
}

type stopper interface {
	Stop(ctx context.Context) error
}

type startStopper interface {
	starter
	stopper
}

// Agent is the root data structure for spade.
type Agent struct {
	output io.Writer
	args   []string

	hk  *hook.Hooks
	rep repository.Repository
	tr  transport.Transport

	cl          *client.Client
	presenceMng *presence.Manager
	sess        *session

	starters []starter
	stoppers []stopper

	waitStopCh chan os.Signal

	logger kitlog.Logger
}

// New makes a new Agent.
func New(output io.Writer, args []string) *Agent {
	return &Agent{
		output:     output,
		args:       args,
		waitStopCh: make(chan os.Signal, 1),
	}
}

// Run starts the agent, and blocks until it stops.
func (a *Agent) Run() error {
	fs := pflag.NewFlagSet("spade", pflag.ContinueOnError)
	fs.SetOutput(a.output)

	var configFile string
	var showVersion, showUsage bool

	fs.BoolVar(&showUsage, "help", false, "Show this message")
	fs.BoolVar(&showVersion, "version", false, "Print version information.")
	fs.StringVar(&configFile, "config", "config.yaml", "Configuration file path.")

	fs.Usage = func() {
		for i := range logoStr {
			_, _ = fmt.Fprintf(a.output, "%s\n", logoStr[i])
		}
		_, _ = fmt.Fprintf(a.output, "%s\n", usageStr)
	}
	if err := fs.Parse(a.args[1:]); err != nil {
		return err
	}
	// print usage
	if showUsage {
		fs.Usage()
		return nil
	}
	// print version
	if showVersion {
		_, _ = fmt.Fprintf(a.output, "spade version: %v\n", version.Version)
		return nil
	}
	// if present, override config file url with env var
	if envCfgFile := os.Getenv(envConfigFile); len(envCfgFile) > 0 {
		configFile = envCfgFile
	}
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	a.logger = log.NewDefaultLogger(cfg.Logger.Level, cfg.Logger.Format)

	level.Info(a.logger).Log("msg", "spade is starting...",
		"version", version.Version,
		"go_ver", runtime.Version(),
		"go_os", runtime.GOOS,
		"go_arch", runtime.GOARCH,
	)
	a.hk = hook.NewHooks()

	if err := a.initRepository(cfg.Storage); err != nil {
		return err
	}
	if err := a.initTransport(cfg.Transport); err != nil {
		return err
	}
	a.initClient(cfg)
	a.initPresenceManager(cfg.Presence)
	a.initSession(cfg)

	a.registerStartStopper(newHTTPServer(cfg.HTTPPort, a.sess.alive, a.logger))

	if err := a.bootstrap(); err != nil {
		return err
	}
	// ...wait for stop signal or stream termination to shut down
	select {
	case sig := <-a.waitForStopSignal():
		level.Info(a.logger).Log("msg", "received stop signal... shutting down...",
			"signal", sig.String(),
		)
	case <-a.sess.Done():
		level.Info(a.logger).Log("msg", "stream terminated... shutting down...")
	}
	return a.shutdown()
}

func (a *Agent) initRepository(cfg storage.Config) error {
	rep, err := storage.New(cfg, a.logger)
	if err != nil {
		return err
	}
	a.rep = rep
	a.registerStartStopper(a.rep)
	return nil
}

func (a *Agent) initTransport(cfg transport.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultBootstrapTimeout)
	defer cancel()

	tr, err := transport.New(ctx, cfg)
	if err != nil {
		return err
	}
	a.tr = tr
	return nil
}

func (a *Agent) initClient(cfg *Config) {
	jd, _ := jid.NewWithString(cfg.JID, false)

	sender := client.NewBreakerSender(client.NewStreamSender(a.tr), cfg.Client.Breaker, a.logger)
	a.cl = client.New(cfg.Client, jd, a.rep, sender, a.hk, a.logger)
}

func (a *Agent) initPresenceManager(cfg presence.Config) {
	a.presenceMng = presence.New(a.cl, a.hk, cfg, a.loggingHandlers(), a.logger)
	a.registerStartStopper(a.presenceMng)
}

func (a *Agent) initSession(cfg *Config) {
	a.sess = newSession(a.cl, a.presenceMng, a.tr, cfg.Transport.MaxStanzaSize, cfg.Offline, a.logger)
	a.registerStartStopper(a.sess)
}

func (a *Agent) loggingHandlers() presence.Handlers {
	logSubscription := func(event string) presence.SubscriptionHandler {
		return func(_ context.Context, addr string) {
			level.Info(a.logger).Log("msg", "subscription event", "event", event, "jid", addr)
		}
	}
	return presence.Handlers{
		OnAvailable: func(_ context.Context, addr string, pr *stravaganza.Presence) {
			level.Debug(a.logger).Log("msg", "contact available", "jid", addr, "priority", pr.Priority())
		},
		OnUnavailable: func(_ context.Context, addr string, _ *stravaganza.Presence) {
			level.Debug(a.logger).Log("msg", "contact unavailable", "jid", addr)
		},
		OnSubscribe:    logSubscription(stravaganza.SubscribeType),
		OnSubscribed:   logSubscription(stravaganza.SubscribedType),
		OnUnsubscribe:  logSubscription(stravaganza.UnsubscribeType),
		OnUnsubscribed: logSubscription(stravaganza.UnsubscribedType),
	}
}

func (a *Agent) registerStartStopper(ss startStopper) {
	if ss == nil {
		return
	}
	a.starters = append(a.starters, ss)
	a.stoppers = append([]stopper{ss}, a.stoppers...)
}

func (a *Agent) bootstrap() error {
	// spin up all service subsystems
	ctx, cancel := context.WithTimeout(context.Background(), defaultBootstrapTimeout)
	defer cancel()

	return runWithContext(ctx, func(ctx context.Context) error {
		for _, s := range a.starters {
			if err := s.Start(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

func (a *Agent) shutdown() error {
	// wait until shutdown has been completed
	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	return runWithContext(ctx, func(ctx context.Context) error {
		for _, st := range a.stoppers {
			if err := st.Stop(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

func (a *Agent) waitForStopSignal() <-chan os.Signal {
	signal.Notify(a.waitStopCh, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	return a.waitStopCh
}

func runWithContext(ctx context.Context, fn func(ctx context.Context) error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- fn(ctx)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
