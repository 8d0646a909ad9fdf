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

// AncestorHashWindow is the number of the most recent ancestor block hashes
// an Environment retains for the blockhash instruction.
const AncestorHashWindow = 256

// BlockParameters contains the information about the current block required
// to set up an Environment.
type BlockParameters struct {
	BlockNumber uint64
	Timestamp   uint64
	Difficulty  Word
	GasLimit    uint64
	Coinbase    Address

	// BlockHashes lists the hashes of the most recent ancestor blocks,
	// ordered by depth: index 0 is the immediate parent. Entries beyond
	// AncestorHashWindow are ignored.
	BlockHashes []Hash
}

// Environment is an immutable snapshot of the block context a transaction
// executes in. It is created once per block/transaction context, read by
// many frames, and written by none.
type Environment struct {
	blockNumber uint64
	timestamp   uint64
	difficulty  Word
	gasLimit    uint64
	coinbase    Address
	blockHashes []Hash
}

// NewEnvironment creates an immutable snapshot of the given block
// parameters. The ancestor-hash list is copied and truncated to
// AncestorHashWindow entries, so later modifications of the input slice do
// not leak into the snapshot.
func NewEnvironment(params BlockParameters) *Environment {
	hashes := params.BlockHashes
	if len(hashes) > AncestorHashWindow {
		hashes = hashes[:AncestorHashWindow]
	}
	copied := make([]Hash, len(hashes))
	copy(copied, hashes)
	return &Environment{
		blockNumber: params.BlockNumber,
		timestamp:   params.Timestamp,
		difficulty:  params.Difficulty,
		gasLimit:    params.GasLimit,
		coinbase:    params.Coinbase,
		blockHashes: copied,
	}
}

// BlockNumber returns the number of the block currently being executed.
func (e *Environment) BlockNumber() uint64 {
	return e.blockNumber
}

// Timestamp returns the unix timestamp in seconds of the current block.
func (e *Environment) Timestamp() uint64 {
	return e.timestamp
}

// Difficulty returns the difficulty of the current block.
func (e *Environment) Difficulty() Word {
	return e.difficulty
}

// GasLimit returns the gas limit of the current block.
func (e *Environment) GasLimit() uint64 {
	return e.gasLimit
}

// Coinbase returns the address of the current block's beneficiary.
func (e *Environment) Coinbase() Address {
	return e.coinbase
}

// AncestorHash returns the recorded hash of the ancestor block at the given
// depth, where depth 0 is the immediate parent. The second return value is
// false if no hash is recorded for that depth.
func (e *Environment) AncestorHash(depth uint64) (Hash, bool) {
	if depth >= uint64(len(e.blockHashes)) {
		return Hash{}, false
	}
	return e.blockHashes[depth], true
}
