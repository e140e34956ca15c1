/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package container

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogenerics/playground/collection/stack"
	"github.com/gogenerics/playground/commonerrors"
)

func TestContainer(t *testing.T) {
	tests := []struct {
		details     string
		constructor func() IContainer[string]
	}{
		{
			details:     "stack container",
			constructor: func() IContainer[string] { return NewStackContainer[string](nil) },
		},
		{
			details:     "slice container",
			constructor: func() IContainer[string] { return NewSliceContainer[string]() },
		},
	}

	for i := range tests {
		test := tests[i]
		t.Run(test.details, func(t *testing.T) {
			t.Run("empty container", func(t *testing.T) {
				c := test.constructor()
				assert.Zero(t, c.Count())
				_, err := c.At(0)
				require.Error(t, err)
				assert.True(t, commonerrors.Any(err, commonerrors.ErrOutOfRange))
				assert.Empty(t, Collect(c))
			})

			t.Run("append and access", func(t *testing.T) {
				c := test.constructor()
				names := []string{faker.Name(), faker.Name(), faker.Name()}
				for j := range names {
					c.Append(names[j])
					assert.Equal(t, j+1, c.Count())
				}
				for j := range names {
					v, err := c.At(j)
					require.NoError(t, err)
					assert.Equal(t, names[j], v)
				}
				assert.Equal(t, names, Collect(c))

				_, err := c.At(-1)
				assert.True(t, commonerrors.Any(err, commonerrors.ErrOutOfRange))
				_, err = c.At(len(names))
				assert.True(t, commonerrors.Any(err, commonerrors.ErrOutOfRange))
			})

			t.Run("find in container", func(t *testing.T) {
				c := test.constructor()
				for _, country := range []string{"INDIA", "USA", "JAPAN", "CANADA", "CHINA", "RUSSIA", "MEXICO"} {
					c.Append(country)
				}
				index, found := FindIndexIn("CANADA", c)
				assert.True(t, found)
				assert.Equal(t, 3, index)
				_, found = FindIndexIn("FRANCE", c)
				assert.False(t, found)
			})
		})
	}
}

func TestStackContainer_SharesStack(t *testing.T) {
	s := stack.NewStack[int]()
	s.Push(1, 2)
	c := NewStackContainer(s)
	assert.Equal(t, 2, c.Count())
	c.Append(3)
	assert.Same(t, s, c.Stack())
	assert.Equal(t, []int{1, 2, 3}, s.Items())
	top, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 3, top)
	assert.Equal(t, 2, c.Count())
	v, err := c.At(1)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestSliceContainer_CopiesValues(t *testing.T) {
	values := []float64{3.14159, 0.1, 0.25}
	c := NewSliceContainer(values...)
	values[0] = 0
	v, err := c.At(0)
	require.NoError(t, err)
	assert.Equal(t, 3.14159, v)
	_, found := FindIndexIn(9.3, IContainer[float64](c))
	assert.False(t, found)
}

func TestCollect_Nil(t *testing.T) {
	assert.Empty(t, Collect[int](nil))
	_, found := FindIndexIn[int](1, nil)
	assert.False(t, found)
}

type indexedOnly[E any] struct {
	c IContainer[E]
}

func (o *indexedOnly[E]) Append(element E)        { o.c.Append(element) }
func (o *indexedOnly[E]) Count() int              { return o.c.Count() }
func (o *indexedOnly[E]) At(index int) (E, error) { return o.c.At(index) }

func TestCollect_ListsItems(t *testing.T) {
	s := stack.NewStack[string]()
	s.Push("one", "two", "three")
	c := NewStackContainer(s)

	items := Collect[string](c)
	assert.Equal(t, []string{"one", "two", "three"}, items)
	assert.Equal(t, items, Collect[string](&indexedOnly[string]{c: c}))

	items[0] = faker.Word()
	assert.Equal(t, []string{"one", "two", "three"}, s.Items())

	slice := NewSliceContainer("a", "b")
	listed := Collect[string](slice)
	listed[1] = "c"
	assert.Equal(t, []string{"a", "b"}, Collect[string](&indexedOnly[string]{c: slice}))
}
