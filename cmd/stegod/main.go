// Copyright 2026 The Steganon Authors
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

// Command stegod runs the steganon daemon: a stateful job-based HTTP/WS
// service exposing hide/extract/advance/status over the jobs a caller
// creates from an uploaded cover image, so a multi-level seed chain can be
// driven across several requests against the same in-memory engine.
package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/claudiu/gocron"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/steganon/steganon/cmd"
	"github.com/steganon/steganon/config"
	"github.com/steganon/steganon/coverstore"
	_ "github.com/steganon/steganon/coverstore/fs"
	_ "github.com/steganon/steganon/coverstore/memory"
	"github.com/steganon/steganon/daemon"
	"github.com/steganon/steganon/utils"
	"github.com/steganon/steganon/utils/security"
)

const version = "0.1.0"

func main() {
	app := cli.NewApp()
	app.Name = "stegod"
	app.Usage = "steganon daemon"
	app.Version = version

	app.Flags = []cli.Flag{
		&cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
		&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "config file name, looked up under the config dir"},
	}

	app.Before = func(c *cli.Context) error {
		if c.Bool("debug") {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
		log.Logger = log.Output(zerolog.New(os.Stdout).With().Timestamp().Logger())
		return nil
	}

	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("stegod failed to start")
	}
}

func run(c *cli.Context) error {
	configDir := cmd.GetConfigDir()
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return cli.Exit(err, 1)
	}

	cfg, err := config.Load(filepath.Join(configDir, c.String("config")))
	if err != nil {
		return cli.Exit(err, 1)
	}

	warden := utils.NewGracefulWarden(30)

	storeType := cfg.CoverStoreType
	if storeType == "" {
		storeType = "memory"
	}
	store, err := coverstore.Create(&coverstore.Config{
		Type:   storeType,
		Params: map[string]string{"root": cfg.CoverStoreRoot},
	})
	if err != nil {
		return cli.Exit(err, 1)
	}
	warden.CloseOnShutdown(store)

	ttl := time.Duration(cfg.Daemon.SweepMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	d := daemon.New(store, ttl)

	scheduler := gocron.NewScheduler()
	scheduler.Every(1).Minute().Do(d.Sweep)
	scheduler.Start()

	listenAddr := cfg.Daemon.ListenAddr
	if listenAddr == "" {
		listenAddr = ":9443"
	}

	router := daemon.InitRouter(d, []byte(cfg.Daemon.JWTSecret))

	if cfg.Daemon.HTTPS {
		certPath := path.Join(configDir, "cert.pem")
		keyPath := path.Join(configDir, "key.pem")
		if _, errCert := os.Stat(certPath); os.IsNotExist(errCert) {
			log.Info().Msg("stegod: no TLS certificate found, generating a self-signed one")
			if err := security.GenerateCertificate(2048, nil, time.Time{}, 0, configDir); err != nil {
				return cli.Exit(fmt.Errorf("generating self-signed certificate: %w", err), 1)
			}
		}
		log.Info().Str("addr", listenAddr).Msg("stegod: listening (TLS)")
		return router.RunTLS(listenAddr, certPath, keyPath)
	}

	log.Info().Str("addr", listenAddr).Msg("stegod: listening")
	return router.Run(listenAddr)
}
