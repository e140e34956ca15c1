/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package stack

import (
	"fmt"
	"iter"
	"slices"

	"github.com/samber/mo"

	"github.com/gogenerics/playground/commonerrors"
)

var _ IStack[int] = &Stack[int]{}

// NewStack returns an empty stack. It is not thread safe.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{top: nil, length: 0}
}

// Stack is a LIFO collection of elements of type T.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	top    *node[T]
	length int
}

type node[T any] struct {
	value T
	prev  *node[T]
}

func (s *Stack[T]) IsEmpty() bool {
	return s.length == 0
}

func (s *Stack[T]) Len() int {
	return s.length
}

func (s *Stack[T]) Clear() {
	s.top = nil
	s.length = 0
}

func (s *Stack[T]) Peek() (element T, ok bool) {
	if s.length == 0 {
		return
	}
	ok = true
	element = s.top.value
	return
}

func (s *Stack[T]) PeekTop() mo.Option[T] {
	return mo.TupleToOption(s.Peek())
}

// Pop the top item of the stack and return it
func (s *Stack[T]) Pop() (element T, err error) {
	if s.length == 0 {
		err = commonerrors.New(commonerrors.ErrEmpty, "cannot pop an element from an empty stack")
		return
	}
	n := s.top
	s.top = n.prev
	s.length--
	element = n.value
	return
}

func (s *Stack[T]) MustPop() T {
	v, err := s.Pop()
	if err != nil {
		panic(err)
	}
	return v
}

func (s *Stack[T]) Push(value ...T) {
	s.PushSequence(slices.Values(value))
}

func (s *Stack[T]) PushSequence(seq iter.Seq[T]) {
	if seq == nil {
		return
	}
	for v := range seq {
		s.push(v)
	}
}

func (s *Stack[T]) push(value T) {
	n := &node[T]{value, s.top}
	s.top = n
	s.length++
}

func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.top; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (s *Stack[T]) Items() []T {
	items := make([]T, s.length)
	i := s.length - 1
	for v := range s.All() {
		items[i] = v
		i--
	}
	return items
}

func (s *Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for !s.IsEmpty() {
			v, err := s.Pop()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

func (s *Stack[T]) String() string {
	return fmt.Sprint(s.Items())
}
