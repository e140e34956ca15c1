/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package container

import (
	"slices"

	"github.com/gogenerics/playground/collection"
	"github.com/gogenerics/playground/collection/stack"
	"github.com/gogenerics/playground/commonerrors"
)

var (
	_ IContainer[int] = &StackContainer[int]{}
	_ IContainer[int] = &SliceContainer[int]{}
)

// StackContainer exposes a stack as an IContainer without changing the stack itself.
// Appending pushes onto the stack and index 0 refers to the bottom of the stack.
type StackContainer[T any] struct {
	s *stack.Stack[T]
}

// NewStackContainer returns a container backed by s. If s is nil, a new empty stack is used.
func NewStackContainer[T any](s *stack.Stack[T]) *StackContainer[T] {
	if s == nil {
		s = stack.NewStack[T]()
	}
	return &StackContainer[T]{s: s}
}

// Stack returns the underlying stack.
func (c *StackContainer[T]) Stack() *stack.Stack[T] {
	return c.s
}

func (c *StackContainer[T]) Append(element T) {
	c.s.Push(element)
}

func (c *StackContainer[T]) Count() int {
	return c.s.Len()
}

func (c *StackContainer[T]) At(index int) (element T, err error) {
	err = checkIndex(index, c.Count())
	if err != nil {
		return
	}
	// the stack is walked from the top so the bottom element is the last one yielded.
	fromTop := c.Count() - 1 - index
	i := 0
	for v := range c.s.All() {
		if i == fromTop {
			element = v
			return
		}
		i++
	}
	err = commonerrors.Newf(commonerrors.ErrUnexpected, "element [%v] could not be reached", index)
	return
}

// Items returns a copy of the elements from the bottom of the stack to its top.
func (c *StackContainer[T]) Items() []T {
	return c.s.Items()
}

// SliceContainer is an IContainer backed by a slice.
type SliceContainer[T any] struct {
	items []T
}

// NewSliceContainer returns a container holding a copy of values.
func NewSliceContainer[T any](values ...T) *SliceContainer[T] {
	return &SliceContainer[T]{items: slices.Clone(values)}
}

func (c *SliceContainer[T]) Append(element T) {
	c.items = append(c.items, element)
}

func (c *SliceContainer[T]) Count() int {
	return len(c.items)
}

func (c *SliceContainer[T]) At(index int) (element T, err error) {
	err = checkIndex(index, c.Count())
	if err != nil {
		return
	}
	element = c.items[index]
	return
}

// Items returns a copy of the elements in index order.
func (c *SliceContainer[T]) Items() []T {
	return slices.Clone(c.items)
}

func checkIndex(index, count int) error {
	if index < 0 || index >= count {
		return commonerrors.Newf(commonerrors.ErrOutOfRange, "index [%v] is not in [0, %v)", index, count)
	}
	return nil
}

type itemLister[E any] interface {
	Items() []E
}

// Collect returns all the elements of a container in index order.
func Collect[E any](c IContainer[E]) (elements []E) {
	if c == nil {
		return
	}
	if l, ok := c.(itemLister[E]); ok {
		elements = l.Items()
		return
	}
	elements = make([]E, 0, c.Count())
	for i := 0; i < c.Count(); i++ {
		e, err := c.At(i)
		if err != nil {
			return
		}
		elements = append(elements, e)
	}
	return
}

// FindIndexIn looks for target in any container and returns the index of its first occurrence.
func FindIndexIn[E comparable](target E, c IContainer[E]) (int, bool) {
	return collection.FindIndex(target, Collect(c))
}
