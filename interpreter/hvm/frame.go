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

// FrameParameters summarizes the inputs required to set up an execution
// frame for one call.
type FrameParameters struct {
	// Recipient is the account whose code is being executed; storage
	// instructions operate on its storage.
	Recipient hera.Address

	// Gas is the initial gas budget of the frame.
	Gas hera.Gas

	// Environment is the immutable block context the frame executes in.
	Environment *hera.Environment

	// Storage is the transaction-scoped account storage.
	Storage hera.Storage
}

// Frame is the execution context of a single call. It owns a stack, a gas
// budget, a refund accumulator, and a program counter, and references the
// executing account's address, the block environment, and the transaction's
// storage. A frame is created when a call begins execution, is owned
// exclusively by that call, and must not be used after a handler returned a
// fault.
type Frame struct {
	recipient hera.Address
	env       *hera.Environment
	storage   hera.Storage

	pc     int32
	gas    hera.Gas
	refund hera.Gas
	stack  *Stack
}

// NewFrame creates a frame with an empty stack, a zero refund counter, and
// the program counter at zero.
func NewFrame(params FrameParameters) *Frame {
	return &Frame{
		recipient: params.Recipient,
		env:       params.Environment,
		storage:   params.Storage,
		gas:       params.Gas,
		stack:     NewStack(),
	}
}

// PC returns the current program counter. Every successful instruction
// advances it by exactly one.
func (f *Frame) PC() int32 {
	return f.pc
}

// GasLeft returns the remaining gas budget.
func (f *Frame) GasLeft() hera.Gas {
	return f.gas
}

// Refund returns the gas refund accrued by storage-clearing operations so
// far. It is applied to the transaction's gas accounting by the enclosing
// harness, not by this frame.
func (f *Frame) Refund() hera.Gas {
	return f.refund
}

// Stack grants access to the frame's stack, mainly for operand setup and
// result inspection by the surrounding harness.
func (f *Frame) Stack() *Stack {
	return f.stack
}

// UseGas reduces the gas budget by the given amount, or signals OutOfGas if
// the charge would drive the budget negative. On a fault the budget is left
// untouched and the frame's execution must stop.
func (f *Frame) UseGas(amount hera.Gas) error {
	if f.gas < 0 || amount < 0 || f.gas < amount {
		return ErrOutOfGas
	}
	f.gas -= amount
	return nil
}
