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

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/Fantom-foundation/Hera/hera"
)

// MaxStackSize is the maximum number of words a stack can hold.
const MaxStackSize = 1024

// Stack is the bounded word stack of a single execution frame. Push and Pop
// check the capacity and emptiness bounds and signal the corresponding
// fault. Each stack is owned by exactly one frame and is destroyed, or
// returned to the reuse pool, with it.
//
// The stack is not thread-safe. NewStack() and ReturnStack() are
// thread-safe.
type Stack struct {
	data []hera.Word
}

var stackPool = sync.Pool{
	New: func() interface{} {
		return &Stack{data: make([]hera.Word, 0, MaxStackSize)}
	},
}

// NewStack returns an empty stack instance from a reuse pool. Heavy stack
// users should use this function to prevent memory reallocation overhead.
func NewStack() *Stack {
	stack := stackPool.Get().(*Stack)
	stack.data = stack.data[:0]
	return stack
}

// NewStackWithValues returns a stack holding the given values, the last
// argument being the topmost element.
func NewStackWithValues(values ...hera.Word) *Stack {
	stack := NewStack()
	stack.data = append(stack.data, values...)
	return stack
}

// ReturnStack returns the stack to the reuse pool. Any stack may only be
// returned once to avoid concurrent re-use. This is not checked internally.
func ReturnStack(s *Stack) {
	stackPool.Put(s)
}

// Size returns the number of elements on the stack.
func (s *Stack) Size() int {
	return len(s.data)
}

// Get returns the value located at the given index, counted from the top of
// the stack: Get(0) is the topmost element. The index must not be
// out-of-bounds.
func (s *Stack) Get(index int) hera.Word {
	return s.data[s.Size()-index-1]
}

// Push adds the given value to the top of the stack, or signals
// StackOverflow if the stack already holds MaxStackSize elements.
func (s *Stack) Push(value hera.Word) error {
	if len(s.data) >= MaxStackSize {
		return ErrStackOverflow
	}
	s.data = append(s.data, value)
	return nil
}

// Pop removes the topmost value from the stack and returns it, or signals
// StackUnderflow if the stack is empty.
func (s *Stack) Pop() (hera.Word, error) {
	if len(s.data) == 0 {
		return hera.Word{}, ErrStackUnderflow
	}
	value := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return value, nil
}

// Eq returns true if the two stacks are equal.
func (a *Stack) Eq(b *Stack) bool {
	return slices.Equal(a.data, b.data)
}

func (s *Stack) String() string {
	b := strings.Builder{}
	for i := 0; i < s.Size(); i++ {
		b.WriteString(fmt.Sprintf("    [%4d] %v\n", s.Size()-i-1, s.Get(i)))
	}
	return b.String()
}
