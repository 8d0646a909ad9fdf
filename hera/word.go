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

import (
	"fmt"
	"math/big"

	"pgregory.net/rand"

	"github.com/holiman/uint256"
)

// Word is the 256-bit integer type all stack values and storage slots are
// made of. Arithmetic is closed over [0, 2^256): additions, subtractions,
// and multiplications wrap around, divisions by zero yield zero, and the
// signed operations interpret their operands as two's-complement 256-bit
// integers. Contrary to holiman/uint256.Int the API operates on values
// rather than pointers.
type Word struct {
	internal uint256.Int
}

// NewWord creates a new Word instance from up to 4 uint64 arguments. The
// arguments are given in the order from most significant to least
// significant by padding leading zeros as needed. No argument results in a
// value of zero.
func NewWord(args ...uint64) (result Word) {
	if len(args) > 4 {
		panic("Too many arguments")
	}
	offset := 4 - len(args)
	for i := 0; i < len(args) && i < len(result.internal); i++ {
		result.internal[3-i-offset] = args[i]
	}
	return
}

// NewWordFromBytes creates a new Word instance from up to 32 byte arguments.
// The arguments are given in the order from most significant to least
// significant by padding leading zeros as needed. No argument results in a
// value of zero.
func NewWordFromBytes(bytes ...byte) (result Word) {
	if len(bytes) > 32 {
		panic("Too many arguments")
	}
	result.internal.SetBytes(bytes)
	return
}

// RandWord produces a uniformly random Word using the given source.
func RandWord(rnd *rand.Rand) Word {
	var value Word
	value.internal[0] = rnd.Uint64()
	value.internal[1] = rnd.Uint64()
	value.internal[2] = rnd.Uint64()
	value.internal[3] = rnd.Uint64()
	return value
}

func MaxWord() (result Word) {
	result.internal.SetAllOne()
	return
}

// MinSignedWord is the smallest value representable in the two's-complement
// interpretation of a Word, 2^255 or -2^255 depending on the view.
func MinSignedWord() Word {
	return NewWord(1 << 63, 0, 0, 0)
}

func (w Word) IsZero() bool {
	return w.internal.IsZero()
}

func (w Word) IsUint64() bool {
	return w.internal.IsUint64()
}

func (w Word) Uint64() uint64 {
	return w.internal.Uint64()
}

// ByteLen returns the number of bytes required to represent the value,
// ceil(bit_length/8). The length of zero is zero.
func (w Word) ByteLen() int {
	return w.internal.ByteLen()
}

// Sign returns -1, 0, or 1 for the two's-complement interpretation of the
// word being negative, zero, or positive.
func (w Word) Sign() int {
	return w.internal.Sign()
}

func (w Word) Bytes32be() [32]byte {
	return w.internal.Bytes32()
}

func (w Word) Bytes20be() [20]byte {
	return w.internal.Bytes20()
}

func (a Word) Eq(b Word) bool {
	return a.internal.Eq(&b.internal)
}

func (a Word) Ne(b Word) bool {
	return !a.internal.Eq(&b.internal)
}

func (a Word) Lt(b Word) bool {
	return a.internal.Lt(&b.internal)
}

func (a Word) Gt(b Word) bool {
	return a.internal.Gt(&b.internal)
}

func (a Word) Slt(b Word) bool {
	return a.internal.Slt(&b.internal)
}

func (a Word) Sgt(b Word) bool {
	return a.internal.Sgt(&b.internal)
}

func (a Word) Add(b Word) (z Word) {
	z.internal.Add(&a.internal, &b.internal)
	return
}

func (a Word) Sub(b Word) (z Word) {
	z.internal.Sub(&a.internal, &b.internal)
	return
}

func (a Word) Mul(b Word) (z Word) {
	z.internal.Mul(&a.internal, &b.internal)
	return
}

// Div computes the unsigned quotient a/b, zero if b is zero.
func (a Word) Div(b Word) (z Word) {
	z.internal.Div(&a.internal, &b.internal)
	return
}

// SDiv computes the signed quotient a/b, zero if b is zero. Dividing the
// minimum signed value by -1 wraps and yields the dividend unchanged.
func (a Word) SDiv(b Word) (z Word) {
	z.internal.SDiv(&a.internal, &b.internal)
	return
}

// Mod computes the unsigned remainder a%b, zero if b is zero.
func (a Word) Mod(b Word) (z Word) {
	z.internal.Mod(&a.internal, &b.internal)
	return
}

// SMod computes the signed remainder a%b carrying the sign of a, zero if b
// is zero.
func (a Word) SMod(b Word) (z Word) {
	z.internal.SMod(&a.internal, &b.internal)
	return
}

// AddMod computes (a+b)%m over the unbounded integers, zero if m is zero.
// The intermediate sum does not wrap at 2^256.
func (a Word) AddMod(b, m Word) (z Word) {
	z.internal.AddMod(&a.internal, &b.internal, &m.internal)
	return
}

// MulMod computes (a*b)%m over the unbounded integers, zero if m is zero.
// The intermediate product does not wrap at 2^256.
func (a Word) MulMod(b, m Word) (z Word) {
	z.internal.MulMod(&a.internal, &b.internal, &m.internal)
	return
}

// Exp computes a^b mod 2^256, treating b as unsigned.
func (a Word) Exp(b Word) (z Word) {
	z.internal.Exp(&a.internal, &b.internal)
	return
}

// SignExtend interprets a as a signed integer of b+1 bytes and extends its
// sign bit to the full word. Byte indices beyond 31 leave a unchanged.
func (a Word) SignExtend(b Word) (z Word) {
	z.internal.ExtendSign(&a.internal, &b.internal)
	return
}

func (w Word) String() string {
	return fmt.Sprintf("%016x %016x %016x %016x", w.internal[3], w.internal[2], w.internal[1], w.internal[0])
}

func (w Word) MarshalText() ([]byte, error) {
	return []byte(w.internal.Hex()), nil
}

func (w *Word) UnmarshalText(data []byte) error {
	return w.internal.SetFromHex(string(data))
}

// ToBig returns a big.Int version of w.
func (w Word) ToBig() *big.Int {
	return w.internal.ToBig()
}

// WordFromBig returns a Word version of b. Negative values map to zero;
// values beyond 256 bits cause a panic.
func WordFromBig(b *big.Int) Word {
	var result Word
	if b.Sign() < 0 {
		return result
	}
	internal, overflow := uint256.FromBig(b)
	if overflow {
		panic("big.Int has more than 256 bits")
	}
	result.internal = *internal
	return result
}
