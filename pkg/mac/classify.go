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

var broadcast = MAC{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

// IsBroadcast reports whether the address is the all-ones broadcast
// address `ff:ff:ff:ff:ff:ff`.
func (m MAC) IsBroadcast() bool {
	return m == broadcast
}

// IsMulticast reports whether the address carries the IPv4 multicast
// OUI `01:00:5e`.
func (m MAC) IsMulticast() bool {
	return m[0] == 0x01 && m[1] == 0x00 && m[2] == 0x5e
}

// IsUnicast reports whether the address is neither broadcast nor multicast.
func (m MAC) IsUnicast() bool {
	return !(m.IsBroadcast() || m.IsMulticast())
}

// IsUniversal reports whether the universal/local bit (bit 1 of the first
// octet) is clear, meaning the address is universally administered.
func (m MAC) IsUniversal() bool {
	return m[0]&0x02 == 0
}

// IsLocal reports whether the universal/local bit is set, meaning the
// address is locally administered.
func (m MAC) IsLocal() bool {
	return m[0]&0x02 != 0
}
