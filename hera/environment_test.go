// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package hera

import "testing"

func TestNewEnvironment_SnapshotsAllFields(t *testing.T) {
	env := NewEnvironment(BlockParameters{
		BlockNumber: 300,
		Timestamp:   1234,
		Difficulty:  NewWord(5678),
		GasLimit:    8_000_000,
		Coinbase:    Address{0x42},
		BlockHashes: []Hash{{1}, {2}},
	})

	if want, got := uint64(300), env.BlockNumber(); want != got {
		t.Errorf("unexpected block number, wanted %d, got %d", want, got)
	}
	if want, got := uint64(1234), env.Timestamp(); want != got {
		t.Errorf("unexpected timestamp, wanted %d, got %d", want, got)
	}
	if want, got := NewWord(5678), env.Difficulty(); want != got {
		t.Errorf("unexpected difficulty, wanted %v, got %v", want, got)
	}
	if want, got := uint64(8_000_000), env.GasLimit(); want != got {
		t.Errorf("unexpected gas limit, wanted %d, got %d", want, got)
	}
	if want, got := (Address{0x42}), env.Coinbase(); want != got {
		t.Errorf("unexpected coinbase, wanted %v, got %v", want, got)
	}
}

func TestEnvironment_AncestorHashIsIndexedByDepth(t *testing.T) {
	env := NewEnvironment(BlockParameters{
		BlockNumber: 10,
		BlockHashes: []Hash{{1}, {2}, {3}},
	})

	hash, found := env.AncestorHash(0)
	if !found || hash != (Hash{1}) {
		t.Errorf("expected parent hash {1}, got %v (found: %t)", hash, found)
	}
	hash, found = env.AncestorHash(2)
	if !found || hash != (Hash{3}) {
		t.Errorf("expected hash {3} at depth 2, got %v (found: %t)", hash, found)
	}
	if _, found := env.AncestorHash(3); found {
		t.Errorf("depth 3 should not be recorded")
	}
}

func TestEnvironment_AncestorHashListIsTruncatedToTheWindow(t *testing.T) {
	hashes := make([]Hash, AncestorHashWindow+10)
	env := NewEnvironment(BlockParameters{BlockHashes: hashes})
	if _, found := env.AncestorHash(AncestorHashWindow); found {
		t.Errorf("hashes beyond the window should be dropped")
	}
	if _, found := env.AncestorHash(AncestorHashWindow - 1); !found {
		t.Errorf("the deepest in-window hash should be retained")
	}
}

func TestEnvironment_IsNotAffectedByLaterInputChanges(t *testing.T) {
	hashes := []Hash{{1}}
	env := NewEnvironment(BlockParameters{BlockHashes: hashes})
	hashes[0] = Hash{0xff}
	if hash, _ := env.AncestorHash(0); hash != (Hash{1}) {
		t.Errorf("snapshot should not see later input changes, got %v", hash)
	}
}
