// Copyright 2026 The macaddr Authors
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
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hwaddr/macaddr/pkg/config"
	"github.com/hwaddr/macaddr/pkg/mac"
	"github.com/hwaddr/macaddr/pkg/report"
)

const exitError = 1

func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: zerolog.TimeFieldFormat,
		NoColor:    true})
}

func main() {
	var debug, jsonOut bool
	var generate int
	flag.BoolVar(&debug, "debug", false, "Debug level logging")
	flag.BoolVar(&jsonOut, "json", false, "Emit reports as JSON")
	flag.IntVar(&generate, "generate", 0, "Generate N addresses from the configured pool instead of inspecting arguments")
	flag.Parse()

	setupLogging(debug)

	if generate > 0 {
		if err := generateAddresses(generate); err != nil {
			log.Error().Msgf("failed to generate addresses: %v", err)
			os.Exit(exitError)
		}
		return
	}

	if flag.NArg() == 0 {
		log.Error().Msg("no addresses given, see -h for usage")
		os.Exit(exitError)
	}

	for _, arg := range flag.Args() {
		if err := inspect(arg, jsonOut); err != nil {
			log.Error().Msgf("failed to inspect %q: %v", arg, err)
			os.Exit(exitError)
		}
	}
}

func inspect(addr string, jsonOut bool) error {
	m, err := mac.Parse(addr)
	if err != nil {
		return err
	}

	r := report.Build(m)
	if jsonOut {
		out, err := r.JSON()
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}
	fmt.Println(r.Text())
	return nil
}

func generateAddresses(count int) error {
	conf := &config.ToolConfig{}
	if err := conf.ReadConfig(); err != nil {
		return err
	}
	if err := conf.ValidateConfig(); err != nil {
		return err
	}

	pool, err := mac.NewPool(&conf.Pool)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		m, err := pool.GenerateMAC()
		if err != nil {
			return err
		}
		if err := pool.AllocateMAC(m.Hex()); err != nil {
			return err
		}
		fmt.Println(m.Hex())
	}
	return nil
}
