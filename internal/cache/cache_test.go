// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemory(t *testing.T) *Memory {
	t.Helper()
	c := NewMemory(Options{DefaultTTL: time.Minute})
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestMemory_GetSet(t *testing.T) {
	c := newTestMemory(t)
	ctx := context.Background()

	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestMemory_Expiration(t *testing.T) {
	c := newTestMemory(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemory_DeleteByPrefix(t *testing.T) {
	c := newTestMemory(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "list:article:1", []byte("a"), 0))
	require.NoError(t, c.Set(ctx, "list:article:2", []byte("b"), 0))
	require.NoError(t, c.Set(ctx, "list:news:1", []byte("c"), 0))

	require.NoError(t, c.DeleteByPrefix(ctx, "list:article:"))

	_, err := c.Get(ctx, "list:article:1")
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = c.Get(ctx, "list:article:2")
	assert.ErrorIs(t, err, ErrCacheMiss)

	got, err := c.Get(ctx, "list:news:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), got)
}

func TestMemory_CopyOnGet(t *testing.T) {
	c := newTestMemory(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("abc"), 0))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	got[0] = 'z'

	again, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestMemory_Closed(t *testing.T) {
	c := NewMemory(Options{DefaultTTL: time.Minute})
	require.NoError(t, c.Close())

	_, err := c.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrCacheClosed)
	assert.ErrorIs(t, c.Set(context.Background(), "k", nil, 0), ErrCacheClosed)
}

type testItem struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func TestTyped_GetOrSet(t *testing.T) {
	c := newTestMemory(t)
	typed := NewTyped[[]testItem](c, time.Minute)
	ctx := context.Background()

	calls := 0
	load := func() (*[]testItem, error) {
		calls++
		return &[]testItem{{ID: 1, Title: "a"}}, nil
	}

	first, err := typed.GetOrSet(ctx, "items", load)
	require.NoError(t, err)
	require.Len(t, *first, 1)

	second, err := typed.GetOrSet(ctx, "items", load)
	require.NoError(t, err)
	assert.Equal(t, *first, *second)
	assert.Equal(t, 1, calls, "second call must be served from cache")
}

func TestTyped_GetOrSet_Error(t *testing.T) {
	c := newTestMemory(t)
	typed := NewTyped[testItem](c, time.Minute)

	wantErr := errors.New("load failed")
	_, err := typed.GetOrSet(context.Background(), "k", func() (*testItem, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestTyped_DecodeFailureIsMiss(t *testing.T) {
	c := newTestMemory(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("not-json"), 0))

	typed := NewTyped[testItem](c, time.Minute)
	_, ok := typed.Get(ctx, "k")
	assert.False(t, ok)
}

func TestNew_DefaultsToMemory(t *testing.T) {
	c, err := New(Options{DefaultTTL: time.Minute})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	_, isMemory := c.(*Memory)
	assert.True(t, isMemory)
}
