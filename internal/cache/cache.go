// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cache provides the caching layer for public content listings.
// Two backends implement the Cache interface: an in-process memory cache and
// Redis for multi-instance deployments.
package cache

import (
	"context"
	"time"
)

// Cache is the byte-oriented cache contract. Implementations must be safe
// for concurrent use.
type Cache interface {
	// Get returns the stored value, or ErrCacheMiss when absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value. A zero ttl means the backend's default TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteByPrefix removes every key starting with prefix. Content writes
	// use this to invalidate all cached pages of a listing at once.
	DeleteByPrefix(ctx context.Context, prefix string) error

	// Close releases backend resources.
	Close() error
}

// Error is a sentinel error type for cache operations.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrCacheMiss indicates the key was not found or has expired.
	ErrCacheMiss Error = "cache miss"

	// ErrCacheClosed indicates the cache has been closed.
	ErrCacheClosed Error = "cache closed"
)

// Options configures cache construction.
type Options struct {
	// RedisURL selects the Redis backend when non-empty.
	RedisURL string

	// Prefix is prepended to every key on the Redis backend.
	Prefix string

	// DefaultTTL applies when Set is called with a zero ttl.
	DefaultTTL time.Duration

	// MaxSize bounds the memory backend's entry count (0 = unlimited).
	MaxSize int
}

// New builds a cache from options: Redis when a URL is configured, the
// in-process memory backend otherwise.
func New(opts Options) (Cache, error) {
	if opts.RedisURL != "" {
		return NewRedis(opts)
	}
	return NewMemory(opts), nil
}
