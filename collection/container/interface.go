/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package container defines an indexed container abstraction which can be attached to existing collections via adapters.
package container

// IContainer specifies an ordered collection of elements of type E which can be appended to and accessed by index.
// Indices start at 0 for the first element appended.
type IContainer[E any] interface {
	// Append adds an element at the end of the container.
	Append(element E)
	// Count returns the number of elements in the container.
	Count() int
	// At retrieves the element at the given index. It returns an error of type commonerrors.ErrOutOfRange if
	// the index is not in [0, Count()).
	At(index int) (E, error)
}
