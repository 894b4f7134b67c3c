// Copyright (c) Arista Networks, Inc. 2026
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainmap

import "sync"

// Locked guards a Table with a single lock held for the whole of
// every operation, growth included. Readers share the lock.
type Locked[K, E any] struct {
	mu sync.RWMutex
	m  *Table[K, E]
}

// NewLocked wraps m. m must not be used directly afterwards.
func NewLocked[K, E any](m *Table[K, E]) *Locked[K, E] {
	return &Locked[K, E]{m: m}
}

// Set is [Table.Set] under the write lock.
func (l *Locked[K, E]) Set(key K, elem E) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m.Set(key, elem)
}

// Update is [Table.Update] under the write lock. fn must not call
// back into l.
func (l *Locked[K, E]) Update(key K, fn func(cur E) E) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m.Update(key, fn)
}

// Delete is [Table.Delete] under the write lock.
func (l *Locked[K, E]) Delete(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Delete(key)
}

// Clear is [Table.Clear] under the write lock.
func (l *Locked[K, E]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m.Clear()
}

func (l *Locked[K, E]) Get(key K) (E, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.m.Get(key)
}

func (l *Locked[K, E]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.m.Len()
}

func (l *Locked[K, E]) Cap() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.m.Cap()
}

// Dump is [Table.Dump] under the read lock.
func (l *Locked[K, E]) Dump() []BucketDump[K, E] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.m.Dump()
}
