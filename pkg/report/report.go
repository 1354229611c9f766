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

// Package report assembles every representation and classification of a
// parsed MAC address into a single displayable value.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hwaddr/macaddr/pkg/mac"
)

// Report collects the derived representations and classification of one
// address.
type Report struct {
	Address       string   `json:"address"`
	Hex           string   `json:"hex"`
	EUI           string   `json:"eui"`
	Dot           string   `json:"dot"`
	Octets        []string `json:"octets"`
	Bits          []string `json:"bits"`
	Binary        string   `json:"binary"`
	OUI           string   `json:"oui"`
	NIC           string   `json:"nic"`
	EUI64         string   `json:"eui64"`
	IPv6LinkLocal string   `json:"ipv6_link_local"`
	Broadcast     bool     `json:"broadcast"`
	Multicast     bool     `json:"multicast"`
	Unicast       bool     `json:"unicast"`
	Universal     bool     `json:"universal"`
	Local         bool     `json:"local"`
}

// Build derives the full report for m.
func Build(m mac.MAC) Report {
	return Report{
		Address:       m.Raw(),
		Hex:           m.Hex(),
		EUI:           m.EUI(),
		Dot:           m.Dot(),
		Octets:        m.Octets(),
		Bits:          m.Bits(),
		Binary:        m.Binary(),
		OUI:           m.OUI(),
		NIC:           m.NIC(),
		EUI64:         m.EUI64(),
		IPv6LinkLocal: m.IPv6LinkLocal(),
		Broadcast:     m.IsBroadcast(),
		Multicast:     m.IsMulticast(),
		Unicast:       m.IsUnicast(),
		Universal:     m.IsUniversal(),
		Local:         m.IsLocal(),
	}
}

// Text renders the report for terminal display.
func (r Report) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "EUI-48:          %s\n", r.EUI)
	fmt.Fprintf(&b, "EUI-64:          %s\n", r.EUI64)
	fmt.Fprintf(&b, "Hex:             %s\n", r.Hex)
	fmt.Fprintf(&b, "Dot:             %s\n", r.Dot)
	fmt.Fprintf(&b, "Raw:             %s\n", r.Address)
	fmt.Fprintf(&b, "Binary:          %s\n", r.Binary)
	fmt.Fprintf(&b, "OUI / NIC:       %s / %s\n", r.OUI, r.NIC)
	fmt.Fprintf(&b, "IPv6 link-local: %s\n", r.IPv6LinkLocal)
	fmt.Fprintf(&b, "Class:           %s, %s administration", r.class(), r.admin())
	return b.String()
}

// JSON renders the report as indented JSON.
func (r Report) JSON() (string, error) {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (r Report) class() string {
	switch {
	case r.Broadcast:
		return "broadcast"
	case r.Multicast:
		return "multicast"
	default:
		return "unicast"
	}
}

func (r Report) admin() string {
	if r.Universal {
		return "universal"
	}
	return "local"
}
