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

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

// ToolConfig holds the environment-driven configuration of the macaddr tool.
type ToolConfig struct {
	Pool PoolConfig
}

// PoolConfig bounds the address pool. Both ends are inclusive and must be
// locally administered unicast addresses; any notation accepted by mac.Parse
// is allowed here.
type PoolConfig struct {
	RangeStart string `env:"MAC_POOL_RANGE_START" envDefault:"02:00:00:00:00:01"` // First address in the pool
	RangeEnd   string `env:"MAC_POOL_RANGE_END"   envDefault:"02:ff:ff:ff:ff:ff"` // Last address in the pool
}

// ReadConfig populates the configuration from environment variables.
func (tc *ToolConfig) ReadConfig() error {
	log.Debug().Msg("reading configuration from environment")
	return env.Parse(tc)
}

// ValidateConfig checks the configuration fields are usable. Range bounds
// are only checked for presence here; mac.NewPool parses and validates them.
func (tc *ToolConfig) ValidateConfig() error {
	if tc.Pool.RangeStart == "" {
		return fmt.Errorf("validate config: no pool range start")
	}
	if tc.Pool.RangeEnd == "" {
		return fmt.Errorf("validate config: no pool range end")
	}
	return nil
}
