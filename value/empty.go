/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package value provides helpers working on single values of any type.
package value

import (
	"reflect"
	"strings"
)

// IsZero states whether v is the zero value of its type.
func IsZero[T comparable](v T) bool {
	var zero T
	return v == zero
}

// IsEmpty checks whether a value is empty i.e. "", nil, 0, [], {}, false, etc.
// A string is considered empty if it is "" or if it only contains whitespaces.
// Pointers are dereferenced.
func IsEmpty(v any) bool {
	switch typed := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(typed) == ""
	case bool:
		return !typed
	}
	r := reflect.ValueOf(v)
	switch r.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice:
		return r.Len() == 0
	case reflect.Pointer, reflect.Interface:
		if r.IsNil() {
			return true
		}
		return IsEmpty(r.Elem().Interface())
	default:
		return r.IsZero()
	}
}
