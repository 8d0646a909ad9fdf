// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package st

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/Fantom-foundation/Hera/hera"
)

type slot struct {
	addr hera.Address
	key  hera.Key
}

// Storage is an in-memory implementation of the hera.Storage contract,
// scoped to a single transaction. Slots that were never written read as the
// zero word; writing the zero word removes the slot.
type Storage struct {
	current map[slot]hera.Word
}

func NewStorage() *Storage {
	return &Storage{
		current: make(map[slot]hera.Word),
	}
}

func (s *Storage) GetStorage(addr hera.Address, key hera.Key) hera.Word {
	return s.current[slot{addr, key}]
}

func (s *Storage) SetStorage(addr hera.Address, key hera.Key, value hera.Word) {
	if value.IsZero() {
		delete(s.current, slot{addr, key})
		return
	}
	s.current[slot{addr, key}] = value
}

// Clone creates an independent copy of the storage.
func (s *Storage) Clone() *Storage {
	return &Storage{
		current: maps.Clone(s.current),
	}
}

// SlotsInUse returns the number of non-zero slots currently stored.
func (s *Storage) SlotsInUse() int {
	return len(s.current)
}

// Entries returns a copy of all non-zero slots of the given account.
func (s *Storage) Entries(addr hera.Address) map[hera.Key]hera.Word {
	res := make(map[hera.Key]hera.Word)
	for cur, value := range s.current {
		if cur.addr == addr {
			res[cur.key] = value
		}
	}
	return res
}

// Eq returns true if the two storages hold the same content. Slots holding
// an explicit zero are treated like absent slots.
func (a *Storage) Eq(b *Storage) bool {
	return mapEqualIgnoringZeroValues(a.current, b.current) &&
		mapEqualIgnoringZeroValues(b.current, a.current)
}

func mapEqualIgnoringZeroValues(a map[slot]hera.Word, b map[slot]hera.Word) bool {
	for key, valueA := range a {
		valueB, contained := b[key]
		if !contained && !valueA.IsZero() {
			return false
		} else if contained && valueA != valueB {
			return false
		}
	}
	return true
}

func (s *Storage) String() string {
	lines := make([]string, 0, len(s.current))
	for cur, value := range s.current {
		lines = append(lines, fmt.Sprintf("    %v/%v: %v\n", cur.addr, cur.key, value))
	}
	sort.Strings(lines)
	return strings.Join(lines, "")
}
