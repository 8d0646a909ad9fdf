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

//go:generate mockgen -source storage.go -destination storage_mock.go -package hera

// Storage is an interface to access and manipulate the persistent storage
// of accounts. All frames of one transaction share a single Storage
// instance; its content outlives individual frames and is finalized by the
// enclosing transaction processing.
type Storage interface {
	// GetStorage returns the value stored for the given account and key.
	// Slots that were never written read as the zero word.
	GetStorage(Address, Key) Word

	// SetStorage updates the value stored for the given account and key,
	// replacing any prior value. Writing the zero word is equivalent to
	// removing the slot.
	SetStorage(Address, Key, Word)
}
