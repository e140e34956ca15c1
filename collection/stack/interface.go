/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package stack

import (
	"iter"

	"github.com/samber/mo"
)

// IStack specifies the behaviour of a last-in, first-out (LIFO) collection.
// it is inspired by the work of https://github.com/golang-collections/collections
type IStack[T any] interface {
	// Push adds elements to the stack. The last value provided ends up on top.
	Push(value ...T)
	// PushSequence adds all the elements of a sequence to the stack.
	PushSequence(seq iter.Seq[T])
	// Pop removes and returns the element at the top of the stack.
	// It returns an error of type commonerrors.ErrEmpty if the stack has no elements.
	Pop() (T, error)
	// MustPop is similar to Pop but panics if the stack is empty.
	MustPop() T
	// Peek returns the element at the top of the stack without removing it. ok is false if the stack is empty.
	Peek() (element T, ok bool)
	// PeekTop returns the element at the top of the stack without removing it, or None if the stack is empty.
	PeekTop() mo.Option[T]
	// IsEmpty states whether the stack is empty.
	IsEmpty() bool
	// Clear clears all elements from the stack.
	Clear()
	// All iterates over the elements from top to bottom without modifying the stack.
	All() iter.Seq[T]
	// Items returns a copy of the elements from bottom to top i.e. in insertion order.
	Items() []T
	// Values returns all the elements in the stack from top to bottom. The stack will be empty as a result.
	Values() iter.Seq[T]
	// Len returns the number of elements in the stack.
	Len() int
}
