/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection

import (
	"iter"
	"slices"
	"strings"

	"github.com/samber/mo"
	"go.uber.org/atomic"
)

//
// Search utilities
//

// FindIndex looks for target in a slice, scanning from left to right.
// If found, it returns the index of its first occurrence and true; otherwise it returns -1 and false.
func FindIndex[T comparable](target T, s []T) (int, bool) {
	idx := slices.Index(s, target)
	return idx, idx >= 0
}

// FindIndexOption is similar to FindIndex but returns None when target is not present.
func FindIndexOption[T comparable](target T, s []T) mo.Option[int] {
	return mo.TupleToOption(FindIndex(target, s))
}

// FindIndexInSequence looks for target in a sequence and returns the zero-based position of its first occurrence.
func FindIndexInSequence[T comparable](target T, elements iter.Seq[T]) (int, bool) {
	return FindInSequence(elements, EqualTo(target))
}

// FindEquatable is similar to FindIndex but relies on the elements' own notion of equality.
func FindEquatable[T Equatable[T]](target T, s []T) (int, bool) {
	return FindFunc(s, EquivalentTo(target))
}

// FindFunc returns the index of the first element of s satisfying predicate, or -1 and false.
func FindFunc[S ~[]E, E any](s S, predicate Predicate[E]) (int, bool) {
	if predicate == nil {
		return -1, false
	}
	idx := slices.IndexFunc(s, predicate)
	return idx, idx >= 0
}

// FindInSequence searches elements (a sequence) for the first item that
// satisfies predicate. It returns the zero-based index of the matching
// element and true when a match is found. If elements is nil or no
// match exists, it returns -1 and false.
func FindInSequence[E any](elements iter.Seq[E], predicate Predicate[E]) (int, bool) {
	if elements == nil || predicate == nil {
		return -1, false
	}
	idx := atomic.NewInt64(0)
	for e := range elements {
		if predicate(e) {
			return int(idx.Load()), true
		}
		idx.Inc()
	}
	return -1, false
}

// FindString looks for val in a slice of strings.
// If strict, it checks for an exact match; otherwise it discards surrounding whitespaces and case.
func FindString(strict bool, s []string, val string) (int, bool) {
	if strict {
		return FindIndex(val, s)
	}
	cleansed := strings.TrimSpace(val)
	return FindFunc(s, func(e string) bool {
		return strings.EqualFold(strings.TrimSpace(e), cleansed)
	})
}

// Contains states whether target is present in s.
func Contains[T comparable](target T, s []T) bool {
	_, found := FindIndex(target, s)
	return found
}
