// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chainmap provides the Table type, a hash table that resolves
// collisions by chaining and doubles its bucket array whenever it gets
// too full. Users provide an equal and a hash function.
//
// The following requirements are the user's responsibility to follow:
//   - equal(a, b) => hash(a) == hash(b)
//   - equal(a, a) must be true for all values of a. Be careful around NaN
//     float values.
//   - hash must be deterministic for the lifetime of the Table. It may
//     return negative values.
//   - If a key in a Table contains references -- such as pointers, maps,
//     or slices -- modifying the referenced data in a way that effects
//     the result of the equal or hash functions will result in undefined
//     behavior.
//
// A Table is not safe for concurrent use. Wrap it in a [Locked] when it
// has to be shared between goroutines.
package chainmap

// The table is an array of buckets, each an ordered slice of
// key/elem entries. A key lives in bucket hash(key) mod len(buckets),
// using a non-negative modulo so that negative hashes still land in
// range. Entries within a bucket are kept in insertion order and
// lookups scan them front to back.
//
// After a new key is added, if count/len(buckets) exceeds 0.7 the
// table grows: a bucket array twice as big is allocated and every
// entry is re-indexed into it, walking the old buckets in order. The
// old array is replaced in one step, so there is never a
// half-migrated state. Updating the value of an existing key never
// grows the table, and deleting never shrinks it.

import (
	"errors"
	"fmt"
)

const (
	// DefaultCapacity is the number of buckets used by New.
	DefaultCapacity = 10

	// Maximum load that a table may be left at after an insert is 0.7.
	// Represent as loadFactorNum/loadFactorDen, to allow integer math.
	loadFactorNum = 7
	loadFactorDen = 10

	// flags
	hashWriting = 4 // a goroutine is writing to the table
)

// ErrInvalidCapacity is returned by NewCapacity when asked for fewer
// than one bucket.
var ErrInvalidCapacity = errors.New("chainmap: capacity must be a positive integer")

// Table implements a hash table with separate chaining.
type Table[K, E any] struct {
	count int // # live entries == size of table
	flags uint32

	// array of buckets. len(buckets) is the table's capacity and is
	// always at least 1.
	buckets []bucket[K, E]

	hash  func(K) int
	equal func(K, K) bool
}

type entry[K, E any] struct {
	key  K
	elem E
}

// bucket holds the entries whose key maps to it, oldest first.
type bucket[K, E any] []entry[K, E]

// KeyElem contains a Key and Elem.
type KeyElem[K, E any] struct {
	Key  K
	Elem E
}

// New instantiates a new Table with DefaultCapacity buckets,
// initialized with any KeyElems passed. The equal func must return
// true for two values of K that are equal and false otherwise. The
// hash func must return the same value for equal keys; its result
// may be any int, including negative ones. [StringHash] is provided
// for string keys.
func New[K, E any](
	equal func(a, b K) bool,
	hash func(K) int,
	kes ...KeyElem[K, E]) *Table[K, E] {

	m := newTable[K, E](DefaultCapacity, equal, hash)
	for _, ke := range kes {
		m.Set(ke.Key, ke.Elem)
	}
	return m
}

// NewCapacity instantiates a new, empty Table with capacity buckets.
// See [New] for discussion of the equal and hash arguments. A
// capacity below 1 is rejected with an error wrapping
// [ErrInvalidCapacity].
func NewCapacity[K, E any](
	capacity int,
	equal func(a, b K) bool,
	hash func(K) int) (*Table[K, E], error) {

	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return newTable[K, E](capacity, equal, hash), nil
}

func newTable[K, E any](capacity int, equal func(a, b K) bool, hash func(K) int) *Table[K, E] {
	return &Table[K, E]{
		buckets: make([]bucket[K, E], capacity),
		hash:    hash,
		equal:   equal,
	}
}

// Len returns the count of occupied elements in m.
func (m *Table[K, E]) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// Cap returns the number of buckets in m.
func (m *Table[K, E]) Cap() int {
	if m == nil {
		return 0
	}
	return len(m.buckets)
}

// index returns the bucket key belongs in under the current
// capacity. It must not be cached across a grow.
func (m *Table[K, E]) index(key K) int {
	return Modulo(m.hash(key), len(m.buckets))
}

// find returns the position of key within b, or -1.
func (m *Table[K, E]) find(b bucket[K, E], key K) int {
	for i := range b {
		if m.equal(key, b[i].key) {
			return i
		}
	}
	return -1
}

// Get returns the element associated with key and true if that key is
// in the Table, otherwise it returns the zero value of E and false.
func (m *Table[K, E]) Get(key K) (E, bool) {
	var zeroE E
	if m == nil || m.count == 0 {
		return zeroE, false
	}
	b := m.buckets[m.index(key)]
	if i := m.find(b, key); i >= 0 {
		return b[i].elem, true
	}
	return zeroE, false
}

// Set associates key with elem in m. If key is already present its
// elem is overwritten in place. Otherwise the entry is added and, if
// that pushes the load factor over 0.7, m grows before Set returns.
func (m *Table[K, E]) Set(key K, elem E) {
	m.Update(key, func(E) E { return elem })
}

// Update calls fn with the current elem of key, or the zero value of
// E if key is absent, and stores the result. It follows the same
// growth rules as Set.
func (m *Table[K, E]) Update(key K, fn func(cur E) E) {
	if m == nil {
		// We have to panic here rather than initialize an empty table
		// because we need the user to pass in hash and equal
		// functions
		panic("Set called on nil map")
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	idx := m.index(key)
	// Set hashWriting after calling m.hash, since m.hash may panic,
	// in which case we have not actually done a write.
	m.flags ^= hashWriting

	b := &m.buckets[idx]
	if i := m.find(*b, key); i >= 0 {
		// already have a mapping for key. Update it.
		(*b)[i].elem = fn((*b)[i].elem)
		goto done
	}

	{
		var zeroE E
		*b = append(*b, entry[K, E]{key: key, elem: fn(zeroE)})
		m.count++
	}

	// Only a new key can push us over the load factor.
	if overLoadFactor(m.count, len(m.buckets)) {
		m.grow()
	}

done:
	if m.flags&hashWriting == 0 {
		panic("concurrent map writes")
	}
	m.flags &^= hashWriting
}

// Delete removes key and its associated value from the table. It
// reports whether key was present. The table never shrinks.
func (m *Table[K, E]) Delete(key K) bool {
	if m == nil || m.count == 0 {
		return false
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	idx := m.index(key)
	m.flags ^= hashWriting

	b := &m.buckets[idx]
	i := m.find(*b, key)
	if i >= 0 {
		n := len(*b)
		copy((*b)[i:], (*b)[i+1:])
		// Clear the vacated slot in case it has pointers
		(*b)[n-1] = entry[K, E]{}
		*b = (*b)[:n-1]
		m.count--
	}

	if m.flags&hashWriting == 0 {
		panic("concurrent map writes")
	}
	m.flags &^= hashWriting
	return i >= 0
}

// Clear deletes all keys from m. The capacity is left unchanged.
func (m *Table[K, E]) Clear() {
	if m == nil || m.count == 0 {
		return
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	m.flags ^= hashWriting

	m.count = 0
	for i := range m.buckets {
		m.buckets[i] = nil
	}

	if m.flags&hashWriting == 0 {
		panic("concurrent map writes")
	}
	m.flags &^= hashWriting
}

// grow doubles the number of buckets and re-indexes every entry,
// keeping the old bucket order and each bucket's internal order.
// count is unchanged.
func (m *Table[K, E]) grow() {
	newsize := len(m.buckets) * 2
	newbuckets := make([]bucket[K, E], newsize)
	for _, b := range m.buckets {
		for _, e := range b {
			i := Modulo(m.hash(e.key), newsize)
			newbuckets[i] = append(newbuckets[i], e)
		}
	}
	// commit the grow
	m.buckets = newbuckets
}

// overLoadFactor reports whether count items placed in nbuckets
// buckets is over loadFactor.
func overLoadFactor(count int, nbuckets int) bool {
	return uint64(count)*loadFactorDen > loadFactorNum*uint64(nbuckets)
}
