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
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Configuration", func() {
	Context("ReadConfig", func() {
		AfterEach(func() {
			Expect(os.Unsetenv("MAC_POOL_RANGE_START")).ToNot(HaveOccurred())
			Expect(os.Unsetenv("MAC_POOL_RANGE_END")).ToNot(HaveOccurred())
		})
		It("Read configuration from environment variables", func() {
			tc := &ToolConfig{}

			Expect(os.Setenv("MAC_POOL_RANGE_START", "02:00:00:00:00:00")).ToNot(HaveOccurred())
			Expect(os.Setenv("MAC_POOL_RANGE_END", "02:00:00:00:00:ff")).ToNot(HaveOccurred())

			err := tc.ReadConfig()
			Expect(err).ToNot(HaveOccurred())
			Expect(tc.Pool.RangeStart).To(Equal("02:00:00:00:00:00"))
			Expect(tc.Pool.RangeEnd).To(Equal("02:00:00:00:00:ff"))
		})
		It("Read configuration with default values", func() {
			tc := &ToolConfig{}

			err := tc.ReadConfig()
			Expect(err).ToNot(HaveOccurred())
			Expect(tc.Pool.RangeStart).To(Equal("02:00:00:00:00:01"))
			Expect(tc.Pool.RangeEnd).To(Equal("02:ff:ff:ff:ff:ff"))
		})
	})
	Context("ValidateConfig", func() {
		It("Validate valid configuration", func() {
			tc := &ToolConfig{Pool: PoolConfig{
				RangeStart: "02:00:00:00:00:10",
				RangeEnd:   "02:00:00:00:00:ff"}}

			err := tc.ValidateConfig()
			Expect(err).ToNot(HaveOccurred())
		})
		It("Validate configuration with missing range start", func() {
			tc := &ToolConfig{Pool: PoolConfig{RangeEnd: "02:00:00:00:00:ff"}}
			err := tc.ValidateConfig()
			Expect(err).To(HaveOccurred())
		})
		It("Validate configuration with missing range end", func() {
			tc := &ToolConfig{Pool: PoolConfig{RangeStart: "02:00:00:00:00:10"}}
			err := tc.ValidateConfig()
			Expect(err).To(HaveOccurred())
		})
	})
})
