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

// Package mac parses, formats, derives and classifies 48-bit hardware (MAC)
// addresses. Parse accepts every common textual notation; all other
// operations are total over a parsed value.
package mac

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hwaddr/macaddr/pkg/errcode"
)

const (
	octetLen  = 6
	nibbleLen = 12
)

// MAC is a 48-bit hardware address held as 6 octets. Every notation
// accepted by Parse normalizes to the same value, so two MACs compare
// equal with == exactly when they denote the same address.
// A MAC is immutable once parsed and safe to share across goroutines.
type MAC [octetLen]byte

// delimiters accepted anywhere in the input, not only at octet boundaries.
var delimiters = strings.NewReplacer(":", "", "-", "", ".", "", " ", "")

// Parse parses s as a MAC address. Addresses can be in any common format
// with mixed or no delimiters, ie:
//   - 00:11:22:aa:bb:cc
//   - 00-11-22-aa-bb-cc
//   - 0011.22aa.bbcc
//   - 001122aabbcc
//   - 00 11 22 AA BB CC
//   - 001122-AABBCC
//
// The normalized input must be exactly 12 hexadecimal digits. A wrong length
// reports errcode.ErrInvalidLength, a non-hex digit errcode.ErrInvalidMac;
// the length check always wins. Both errors carry the original input,
// recoverable through errcode.GetAddr.
func Parse(s string) (MAC, error) {
	raw := strings.ToLower(delimiters.Replace(strings.TrimSpace(s)))
	if utf8.RuneCountInString(raw) != nibbleLen {
		return MAC{}, errcode.AddrErrorf(errcode.ErrInvalidLength,
			s, "address: `%s` is not 12 characters long", s)
	}

	var m MAC
	idx := 0
	for _, r := range raw {
		v, ok := nibble(r)
		if !ok {
			return MAC{}, errcode.AddrErrorf(errcode.ErrInvalidMac,
				s, "address: `%s` is not a MAC address", s)
		}
		m[idx/2] = m[idx/2]<<4 | v
		idx++
	}
	return m, nil
}

func nibble(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	}
	return 0, false
}

// Raw returns the address in the format `001122aabbcc`.
func (m MAC) Raw() string {
	return hex.EncodeToString(m[:])
}

// EUI returns the address in the format `00-11-22-aa-bb-cc`.
func (m MAC) EUI() string {
	return strings.Join(groups(m[:], 1), "-")
}

// Hex returns the address in the format `00:11:22:aa:bb:cc`.
func (m MAC) Hex() string {
	return strings.Join(groups(m[:], 1), ":")
}

// Dot returns the address in the format `0011.22aa.bbcc`.
func (m MAC) Dot() string {
	return strings.Join(groups(m[:], 2), ".")
}

// Octets returns the six octets of the address in order,
// in the format `["00", "11", "22", "aa", "bb", "cc"]`.
func (m MAC) Octets() []string {
	return groups(m[:], 1)
}

// Bits returns the twelve nibbles of the address in order, each as a
// 4-character binary string, most significant nibble of every octet first,
// in the format `["0000", "0000", "0001", ...]`.
func (m MAC) Bits() []string {
	bits := make([]string, 0, nibbleLen)
	for _, b := range m {
		bits = append(bits, fmt.Sprintf("%04b", b>>4), fmt.Sprintf("%04b", b&0xf))
	}
	return bits
}

// Binary returns the address as a 48-character binary string,
// in the format `000000000001000100100010...`.
func (m MAC) Binary() string {
	return strings.Join(m.Bits(), "")
}

// OUI returns the Organizationally Unique Identifier portion of the
// address (first three octets) in the format `001122`.
func (m MAC) OUI() string {
	return hex.EncodeToString(m[:octetLen/2])
}

// NIC returns the Network Interface Controller portion of the
// address (last three octets) in the format `aabbcc`.
func (m MAC) NIC() string {
	return hex.EncodeToString(m[octetLen/2:])
}

// String returns a two-line diagnostic rendering of the EUI-48 and
// derived EUI-64 forms.
func (m MAC) String() string {
	return fmt.Sprintf("EUI-48: %s\nEUI-64: %s", m.EUI(), m.EUI64())
}

// groups renders b as lowercase hex strings of `width' octets each.
func groups(b []byte, width int) []string {
	out := make([]string, 0, len(b)/width)
	for i := 0; i < len(b); i += width {
		out = append(out, hex.EncodeToString(b[i:i+width]))
	}
	return out
}
