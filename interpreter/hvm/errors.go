// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package hvm

import "github.com/Fantom-foundation/Hera/hera"

// The faults an instruction handler can signal. Each is fatal to the frame
// it occurred in; the enclosing execution harness decides any revert
// policy. Handlers construct them precisely at the point of violation and
// propagate them unchanged.
const (
	ErrOutOfGas       = hera.ConstError("out of gas")
	ErrStackOverflow  = hera.ConstError("stack overflow")
	ErrStackUnderflow = hera.ConstError("stack underflow")
)
