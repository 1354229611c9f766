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

package mac

import (
	"fmt"
	"strings"
)

// eui64 derives the Modified EUI-64 identifier from the 48-bit address,
// per RFC 4291 section 2.5.1: the fixed pair 0xff 0xfe goes between the
// OUI and NIC halves and the universal/local bit of the first octet is
// inverted.
func (m MAC) eui64() [8]byte {
	return [8]byte{m[0] ^ 0x02, m[1], m[2], 0xff, 0xfe, m[3], m[4], m[5]}
}

// EUI64 returns the Modified EUI-64 form of the address as hyphen-delimited
// octet pairs, in the format `02-11-22-ff-fe-aa-bb-cc`.
func (m MAC) EUI64() string {
	e := m.eui64()
	return strings.Join(groups(e[:], 1), "-")
}

// IPv6LinkLocal returns the IPv6 link-local address derived from the
// Modified EUI-64 form, in the format `fe80::0211:22ff:feaa:bbcc`.
func (m MAC) IPv6LinkLocal() string {
	e := m.eui64()
	return fmt.Sprintf("fe80::%s", strings.Join(groups(e[:], 2), ":"))
}
