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
	"github.com/rs/zerolog/log"

	"github.com/hwaddr/macaddr/pkg/config"
	"github.com/hwaddr/macaddr/pkg/errcode"
)

// ErrPoolExhausted is returned by GenerateMAC when every address in the
// configured range is allocated.
var ErrPoolExhausted = errcode.NewErr(errcode.ErrPoolExhausted, "the MAC pool range is exhausted")

// Pool hands out locally administered unicast addresses from an inclusive
// range. A Pool is not safe for concurrent use; callers serialize access.
type Pool interface {
	// GenerateMAC returns the next free address in the range.
	// It returns ErrPoolExhausted if every address is allocated.
	GenerateMAC() (MAC, error)

	// AllocateMAC reserves the given address.
	// It returns error if the address is not assignable from this pool
	// or is already allocated.
	AllocateMAC(string) error

	// ReleaseMAC releases the reservation of the given address.
	// It returns error if the address is not allocated.
	ReleaseMAC(string) error

	// Reset drops every reservation and seeds the pool from the given
	// addresses.
	Reset(allocated []string) error
}

type macPool struct {
	rangeStart MAC          // first address in range
	rangeEnd   MAC          // last address in range
	current    MAC          // next generation candidate
	macPoolMap map[MAC]bool // allocated addresses
}

// NewPool creates a Pool over the configured range. Both bounds must parse,
// must be locally administered unicast addresses, and the start must not
// order after the end.
func NewPool(conf *config.PoolConfig) (Pool, error) {
	log.Info().Msgf("creating MAC pool, rangeStart %s rangeEnd %s", conf.RangeStart, conf.RangeEnd)
	rangeStart, err := Parse(conf.RangeStart)
	if err != nil {
		return nil, errcode.Errorf(errcode.ErrUnknown, "failed to parse pool range start: %v", err)
	}
	rangeEnd, err := Parse(conf.RangeEnd)
	if err != nil {
		return nil, errcode.Errorf(errcode.ErrUnknown, "failed to parse pool range end: %v", err)
	}
	if !isAssignable(rangeStart) {
		return nil, errcode.Errorf(errcode.ErrOutOfRange,
			"pool range start %s is not a locally administered unicast address", rangeStart.Hex())
	}
	if !isAssignable(rangeEnd) {
		return nil, errcode.Errorf(errcode.ErrOutOfRange,
			"pool range end %s is not a locally administered unicast address", rangeEnd.Hex())
	}
	if less(rangeEnd, rangeStart) {
		return nil, errcode.Errorf(errcode.ErrOutOfRange,
			"invalid pool range, rangeStart: %s rangeEnd: %s", rangeStart.Hex(), rangeEnd.Hex())
	}

	return &macPool{
		rangeStart: rangeStart,
		rangeEnd:   rangeEnd,
		current:    rangeStart,
		macPoolMap: map[MAC]bool{},
	}, nil
}

// GenerateMAC scans the range from the current position, wrapping to the
// range start, and returns the first free address. The returned address is
// not reserved; call AllocateMAC to claim it.
func (p *macPool) GenerateMAC() (MAC, error) {
	// first pass covers current..end, second pass start..end after the wrap
	for pass := 0; pass <= 1; pass++ {
		for {
			if !p.macPoolMap[p.current] {
				free := p.current
				if p.current == p.rangeEnd {
					p.current = p.rangeStart
				} else {
					p.current = next(p.current)
				}
				log.Debug().Msgf("generated MAC %s", free.Hex())
				return free, nil
			}

			if p.current == p.rangeEnd {
				break
			}
			p.current = next(p.current)
		}

		p.current = p.rangeStart
	}
	return MAC{}, ErrPoolExhausted
}

// AllocateMAC reserves the given address in the pool.
func (p *macPool) AllocateMAC(addr string) error {
	log.Debug().Msgf("allocating MAC %s", addr)
	m, err := Parse(addr)
	if err != nil {
		return err
	}
	if !isAssignable(m) || less(m, p.rangeStart) || less(p.rangeEnd, m) {
		return errcode.AddrErrorf(errcode.ErrOutOfRange, addr,
			"failed to allocate %s, not assignable from this pool", m.Hex())
	}
	return p.reserve(m)
}

// ReleaseMAC releases a previously allocated address.
func (p *macPool) ReleaseMAC(addr string) error {
	log.Debug().Msgf("releasing MAC %s", addr)
	m, err := Parse(addr)
	if err != nil {
		return err
	}
	if !p.macPoolMap[m] {
		return errcode.AddrErrorf(errcode.ErrNotAllocated, addr,
			"failed to release %s, not allocated", m.Hex())
	}
	delete(p.macPoolMap, m)
	return nil
}

// Reset clears all reservations and seeds the pool from the given
// addresses. Seeded addresses are parsed and checked for duplicates only,
// so reservations observed outside the configured range can be carried in.
func (p *macPool) Reset(allocated []string) error {
	log.Info().Msgf("resetting MAC pool with %d addresses", len(allocated))
	p.macPoolMap = map[MAC]bool{}
	p.current = p.rangeStart
	for _, addr := range allocated {
		m, err := Parse(addr)
		if err != nil {
			return err
		}
		if err := p.reserve(m); err != nil {
			return err
		}
	}
	return nil
}

func (p *macPool) reserve(m MAC) error {
	if p.macPoolMap[m] {
		return errcode.Errorf(errcode.ErrAlreadyAllocated,
			"failed to allocate %s, already allocated", m.Hex())
	}
	p.macPoolMap[m] = true
	return nil
}

// isAssignable reports whether m may be handed out by a pool: only
// locally administered unicast addresses qualify.
func isAssignable(m MAC) bool {
	return m.IsUnicast() && m.IsLocal()
}

// next returns the address one above m, wrapping at the 48-bit boundary.
func next(m MAC) MAC {
	for idx := octetLen - 1; idx >= 0; idx-- {
		m[idx]++
		if m[idx] != 0 {
			break
		}
	}
	return m
}

// less orders two addresses bytewise.
func less(a, b MAC) bool {
	for idx := 0; idx < octetLen; idx++ {
		if a[idx] != b[idx] {
			return a[idx] < b[idx]
		}
	}
	return false
}
