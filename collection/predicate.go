/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package collection provides various utilities working on slices or sequences
package collection

//
// Predicates
//

// Predicate expresses a boolean test on an element.
type Predicate[E any] func(E) bool

// Equatable describes element types able to compare themselves to another value of the same type.
// It is used for types which are not comparable using `==` (e.g. structures holding slices) or
// for which equality has a different meaning than identity.
type Equatable[T any] interface {
	Equal(other T) bool
}

// EqualTo returns a predicate matching elements equal to target.
func EqualTo[T comparable](target T) Predicate[T] {
	return func(e T) bool {
		return e == target
	}
}

// EquivalentTo returns a predicate matching elements which consider themselves equal to target.
func EquivalentTo[T Equatable[T]](target T) Predicate[T] {
	return func(e T) bool {
		return e.Equal(target)
	}
}

// Not negates a predicate.
func Not[E any](p Predicate[E]) Predicate[E] {
	return func(e E) bool {
		return !p(e)
	}
}
