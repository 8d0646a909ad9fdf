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

// The instruction handlers of the arithmetic, block-context, and storage
// families. Each handler charges gas, pops its operands, consults the
// environment or storage as needed, pushes its result, and advances the
// program counter by one. On a fault the handler returns one of the errors
// of errors.go and the frame must not be used further.
//
// The order in which operands are popped and the position of the gas charge
// relative to stack and state accesses are part of the consensus contract
// and must not be rearranged.

// OpAdd pushes x+y mod 2^256 for the two topmost stack values.
func OpAdd(f *Frame) error {
	if err := f.UseGas(GasVeryLow); err != nil {
		return err
	}
	x, err := f.stack.Pop()
	if err != nil {
		return err
	}
	y, err := f.stack.Pop()
	if err != nil {
		return err
	}
	if err := f.stack.Push(x.Add(y)); err != nil {
		return err
	}
	f.pc++
	return nil
}

// OpSub pushes x-y mod 2^256, the first-popped value being the minuend.
func OpSub(f *Frame) error {
	if err := f.UseGas(GasVeryLow); err != nil {
		return err
	}
	x, err := f.stack.Pop()
	if err != nil {
		return err
	}
	y, err := f.stack.Pop()
	if err != nil {
		return err
	}
	if err := f.stack.Push(x.Sub(y)); err != nil {
		return err
	}
	f.pc++
	return nil
}

// OpMul pushes x*y mod 2^256.
func OpMul(f *Frame) error {
	if err := f.UseGas(GasLow); err != nil {
		return err
	}
	x, err := f.stack.Pop()
	if err != nil {
		return err
	}
	y, err := f.stack.Pop()
	if err != nil {
		return err
	}
	if err := f.stack.Push(x.Mul(y)); err != nil {
		return err
	}
	f.pc++
	return nil
}

// OpDiv pushes the unsigned quotient of the first-popped value by the
// second-popped one, or zero if the divisor is zero.
func OpDiv(f *Frame) error {
	if err := f.UseGas(GasLow); err != nil {
		return err
	}
	dividend, err := f.stack.Pop()
	if err != nil {
		return err
	}
	divisor, err := f.stack.Pop()
	if err != nil {
		return err
	}
	if err := f.stack.Push(dividend.Div(divisor)); err != nil {
		return err
	}
	f.pc++
	return nil
}

// OpSDiv is OpDiv on the two's-complement interpretation of the operands.
// Dividing the minimum signed value by -1 wraps and yields the dividend.
func OpSDiv(f *Frame) error {
	if err := f.UseGas(GasLow); err != nil {
		return err
	}
	dividend, err := f.stack.Pop()
	if err != nil {
		return err
	}
	divisor, err := f.stack.Pop()
	if err != nil {
		return err
	}
	if err := f.stack.Push(dividend.SDiv(divisor)); err != nil {
		return err
	}
	f.pc++
	return nil
}

// OpMod pushes the unsigned remainder x%y, or zero if y is zero.
func OpMod(f *Frame) error {
	if err := f.UseGas(GasLow); err != nil {
		return err
	}
	x, err := f.stack.Pop()
	if err != nil {
		return err
	}
	y, err := f.stack.Pop()
	if err != nil {
		return err
	}
	if err := f.stack.Push(x.Mod(y)); err != nil {
		return err
	}
	f.pc++
	return nil
}

// OpSMod pushes the signed remainder x%y carrying the sign of x, or zero if
// y is zero.
func OpSMod(f *Frame) error {
	if err := f.UseGas(GasLow); err != nil {
		return err
	}
	x, err := f.stack.Pop()
	if err != nil {
		return err
	}
	y, err := f.stack.Pop()
	if err != nil {
		return err
	}
	if err := f.stack.Push(x.SMod(y)); err != nil {
		return err
	}
	f.pc++
	return nil
}

// OpAddMod pushes (x+y)%m over the unbounded integers, or zero if m is
// zero. The intermediate sum does not wrap at 2^256.
func OpAddMod(f *Frame) error {
	if err := f.UseGas(GasMid); err != nil {
		return err
	}
	x, err := f.stack.Pop()
	if err != nil {
		return err
	}
	y, err := f.stack.Pop()
	if err != nil {
		return err
	}
	m, err := f.stack.Pop()
	if err != nil {
		return err
	}
	if err := f.stack.Push(x.AddMod(y, m)); err != nil {
		return err
	}
	f.pc++
	return nil
}

// OpMulMod pushes (x*y)%m over the unbounded integers, or zero if m is
// zero. The intermediate product does not wrap at 2^256.
func OpMulMod(f *Frame) error {
	if err := f.UseGas(GasMid); err != nil {
		return err
	}
	x, err := f.stack.Pop()
	if err != nil {
		return err
	}
	y, err := f.stack.Pop()
	if err != nil {
		return err
	}
	m, err := f.stack.Pop()
	if err != nil {
		return err
	}
	if err := f.stack.Push(x.MulMod(y, m)); err != nil {
		return err
	}
	f.pc++
	return nil
}

// OpExp pushes base^exponent mod 2^256. The gas cost is dynamic: the base
// cost, plus the per-byte cost times the byte length of the exponent when
// the exponent is non-zero. The operands are consumed first to size the
// charge, the charge is taken next, and only then is the exponentiation
// performed.
func OpExp(f *Frame) error {
	base, err := f.stack.Pop()
	if err != nil {
		return err
	}
	exponent, err := f.stack.Pop()
	if err != nil {
		return err
	}
	cost := GasExponentiation
	if !exponent.IsZero() {
		cost += GasExponentiation * hera.Gas(exponent.ByteLen())
	}
	if err := f.UseGas(cost); err != nil {
		return err
	}
	if err := f.stack.Push(base.Exp(exponent)); err != nil {
		return err
	}
	f.pc++
	return nil
}

// OpSignExtend extends a signed number fitting in bits+1 bytes to the full
// word. The first-popped value is the byte index of the sign bit; indices
// beyond 31 leave the value unchanged.
func OpSignExtend(f *Frame) error {
	if err := f.UseGas(GasLow); err != nil {
		return err
	}
	bits, err := f.stack.Pop()
	if err != nil {
		return err
	}
	value, err := f.stack.Pop()
	if err != nil {
		return err
	}
	if err := f.stack.Push(value.SignExtend(bits)); err != nil {
		return err
	}
	f.pc++
	return nil
}

// OpSload pushes the value stored for the popped key in the executing
// account's storage, the zero word for slots never written.
func OpSload(f *Frame) error {
	if err := f.UseGas(GasSload); err != nil {
		return err
	}
	key, err := f.stack.Pop()
	if err != nil {
		return err
	}
	value := f.storage.GetStorage(f.recipient, hera.Key(key.Bytes32be()))
	if err := f.stack.Push(value); err != nil {
		return err
	}
	f.pc++
	return nil
}

// OpSstore stores a value for a key in the executing account's storage. The
// key is popped first, the new value second. The current value must be read
// before the charge can be computed: turning a zero slot non-zero costs
// GasStorageSet, every other transition costs GasStorageUpdate. Turning a
// non-zero slot zero accrues GasStorageClearRefund on the refund counter.
// The write happens last, so a frame running out of gas has read but not
// modified the slot.
func OpSstore(f *Frame) error {
	key, err := f.stack.Pop()
	if err != nil {
		return err
	}
	value, err := f.stack.Pop()
	if err != nil {
		return err
	}
	storageKey := hera.Key(key.Bytes32be())
	current := f.storage.GetStorage(f.recipient, storageKey)

	cost := GasStorageUpdate
	if current.IsZero() && !value.IsZero() {
		cost = GasStorageSet
	}
	if err := f.UseGas(cost); err != nil {
		return err
	}

	if !current.IsZero() && value.IsZero() {
		f.refund += GasStorageClearRefund
	}

	f.storage.SetStorage(f.recipient, storageKey, value)
	f.pc++
	return nil
}

// OpBlockhash pushes the hash of one of the 256 most recent complete
// blocks, selected by the popped block number. Numbers outside the window,
// at or beyond the current block, or without a recorded ancestor hash yield
// the all-zero hash.
func OpBlockhash(f *Frame) error {
	if err := f.UseGas(GasExternal); err != nil {
		return err
	}
	number, err := f.stack.Pop()
	if err != nil {
		return err
	}
	var hash hera.Hash
	current := f.env.BlockNumber()
	if number.IsUint64() {
		requested := number.Uint64()
		if requested < current && current-requested-1 < hera.AncestorHashWindow {
			if recorded, ok := f.env.AncestorHash(current - requested - 1); ok {
				hash = recorded
			}
		}
	}
	if err := f.stack.Push(hera.NewWordFromBytes(hash[:]...)); err != nil {
		return err
	}
	f.pc++
	return nil
}

// OpCoinbase pushes the current block's beneficiary address as a
// big-endian word.
func OpCoinbase(f *Frame) error {
	if err := f.UseGas(GasBase); err != nil {
		return err
	}
	coinbase := f.env.Coinbase()
	if err := f.stack.Push(hera.NewWordFromBytes(coinbase[:]...)); err != nil {
		return err
	}
	f.pc++
	return nil
}

// OpTimestamp pushes the current block's unix timestamp.
func OpTimestamp(f *Frame) error {
	if err := f.UseGas(GasBase); err != nil {
		return err
	}
	if err := f.stack.Push(hera.NewWord(f.env.Timestamp())); err != nil {
		return err
	}
	f.pc++
	return nil
}

// OpNumber pushes the current block's number.
func OpNumber(f *Frame) error {
	if err := f.UseGas(GasBase); err != nil {
		return err
	}
	if err := f.stack.Push(hera.NewWord(f.env.BlockNumber())); err != nil {
		return err
	}
	f.pc++
	return nil
}

// OpDifficulty pushes the current block's difficulty.
func OpDifficulty(f *Frame) error {
	if err := f.UseGas(GasBase); err != nil {
		return err
	}
	if err := f.stack.Push(f.env.Difficulty()); err != nil {
		return err
	}
	f.pc++
	return nil
}

// OpGasLimit pushes the current block's gas limit.
func OpGasLimit(f *Frame) error {
	if err := f.UseGas(GasBase); err != nil {
		return err
	}
	if err := f.stack.Push(hera.NewWord(f.env.GasLimit())); err != nil {
		return err
	}
	f.pc++
	return nil
}
