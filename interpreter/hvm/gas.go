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

// The gas schedule of the implemented instruction families. Positions of
// the charges relative to stack and state accesses are instruction-specific
// and documented on the individual handlers.
const (
	GasVeryLow hera.Gas = 3 // Paid for ADD and SUB.
	GasLow     hera.Gas = 5 // Paid for MUL, DIV, SDIV, MOD, SMOD and SIGNEXTEND.
	GasMid     hera.Gas = 8 // Paid for ADDMOD and MULMOD.

	// GasExponentiation is both the base cost of EXP and the additional
	// cost charged per byte of the exponent's minimal big-endian encoding.
	GasExponentiation hera.Gas = 10

	GasBase     hera.Gas = 2  // Paid for the block-context accessors.
	GasExternal hera.Gas = 20 // Paid for BLOCKHASH.

	GasSload hera.Gas = 50 // Paid for SLOAD.

	GasStorageSet    hera.Gas = 20000 // Paid for SSTORE when a zero slot becomes non-zero.
	GasStorageUpdate hera.Gas = 5000  // Paid for SSTORE on any other transition.

	// GasStorageClearRefund is added to the frame's refund counter each
	// time SSTORE turns a non-zero slot into a zero one. The refund is
	// applied to the transaction's total gas accounting at finalization,
	// not to the running budget.
	GasStorageClearRefund hera.Gas = 15000
)
