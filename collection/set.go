/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// UniqueEntries returns the distinct values of a slice, in order of first occurrence.
func UniqueEntries[T comparable](slice []T) []T {
	seen := mapset.NewThreadUnsafeSetWithSize[T](len(slice))
	unique := make([]T, 0, len(slice))
	for i := range slice {
		if seen.Add(slice[i]) {
			unique = append(unique, slice[i])
		}
	}
	return unique
}
