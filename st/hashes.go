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
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/Fantom-foundation/Hera/hera"
)

var keccakHasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

type keccakHasher interface {
	Reset()
	Write(in []byte) (int, error)
	Read(out []byte) (int, error)
}

func keccak256(data []byte) hera.Hash {
	hasher := keccakHasherPool.Get().(keccakHasher)
	hasher.Reset()
	hasher.Write(data)
	var res hera.Hash
	hasher.Read(res[:])
	keccakHasherPool.Put(hasher)
	return res
}

// BlockHash derives a deterministic synthetic hash for the block with the
// given number, the keccak-256 of its big-endian encoding. Tools and tests
// use these hashes to populate ancestor-hash windows without a chain.
func BlockHash(number uint64) hera.Hash {
	var encoded [8]byte
	binary.BigEndian.PutUint64(encoded[:], number)
	return keccak256(encoded[:])
}

// AncestorHashes produces the synthetic ancestor-hash list for a block with
// the given number: entry d holds BlockHash of block number-d-1, so index 0
// is the immediate parent. The list is capped at the window size and at the
// number of existing ancestors.
func AncestorHashes(blockNumber uint64, count int) []hera.Hash {
	if count > hera.AncestorHashWindow {
		count = hera.AncestorHashWindow
	}
	if uint64(count) > blockNumber {
		count = int(blockNumber)
	}
	hashes := make([]hera.Hash, count)
	for d := range hashes {
		hashes[d] = BlockHash(blockNumber - uint64(d) - 1)
	}
	return hashes
}
