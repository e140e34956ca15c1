/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package value

// Swap exchanges the values a and b point to.
// Nothing happens if either pointer is nil.
func Swap[T any](a, b *T) {
	if a == nil || b == nil || a == b {
		return
	}
	*a, *b = *b, *a
}
