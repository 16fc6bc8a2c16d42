// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// FakeStore is an in-memory ObjectStore for tests and storage-less
// development setups.
type FakeStore struct {
	mu      sync.Mutex
	objects map[string]fakeObject

	// UploadErr, when set, is returned by Upload. Lets tests exercise
	// failure paths.
	UploadErr error

	// Now is the clock for LastModified stamps. Defaults to time.Now.
	Now func() time.Time
}

type fakeObject struct {
	data     []byte
	modified time.Time
}

// NewFake creates an empty in-memory store.
func NewFake() *FakeStore {
	return &FakeStore{objects: make(map[string]fakeObject)}
}

func (f *FakeStore) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

func (f *FakeStore) Upload(_ context.Context, key, _ string, body io.Reader) error {
	if f.UploadErr != nil {
		return f.UploadErr
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = fakeObject{data: data, modified: f.now()}
	return nil
}

func (f *FakeStore) List(_ context.Context, prefix string) ([]Object, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var objects []Object
	for key, obj := range f.objects {
		if strings.HasPrefix(key, prefix) {
			objects = append(objects, Object{
				Key:          key,
				Size:         int64(len(obj.data)),
				LastModified: obj.modified,
			})
		}
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	return objects, nil
}

func (f *FakeStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *FakeStore) PublicURL(key string) string {
	return "https://storage.test/" + key
}

// Has reports whether a key exists. Test helper.
func (f *FakeStore) Has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok
}

// SetModified backdates an object's timestamp. Test helper for the orphan
// sweep's grace window.
func (f *FakeStore) SetModified(key string, t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if obj, ok := f.objects[key]; ok {
		obj.modified = t
		f.objects[key] = obj
	}
}

var _ ObjectStore = (*FakeStore)(nil)
