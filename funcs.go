// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainmap

import (
	"fmt"
	"strconv"
	"strings"
)

// BucketDump is a copy of one bucket's contents, oldest entry first.
type BucketDump[K, E any] struct {
	Index   int
	Entries []KeyElem[K, E]
}

// Dump returns a copy of every bucket of m, in bucket order. It is
// meant for diagnostics; the layout depends on the hash function and
// the current capacity.
func (m *Table[K, E]) Dump() []BucketDump[K, E] {
	if m == nil {
		return nil
	}
	dump := make([]BucketDump[K, E], len(m.buckets))
	for i, b := range m.buckets {
		dump[i].Index = i
		if len(b) == 0 {
			continue
		}
		kes := make([]KeyElem[K, E], len(b))
		for j, e := range b {
			kes[j] = KeyElem[K, E]{Key: e.key, Elem: e.elem}
		}
		dump[i].Entries = kes
	}
	return dump
}

// String renders m with fmt's default formatting of keys and elems.
// See [StringFunc] for the layout.
func (m *Table[K, E]) String() string {
	return StringFunc(m,
		func(key K) string { return fmt.Sprint(key) },
		func(elem E) string { return fmt.Sprint(elem) },
	)
}

// String converts m to a string representation using K's and E's
// String functions.
func String[K fmt.Stringer, E fmt.Stringer](m *Table[K, E]) string {
	return StringFunc(m,
		func(key K) string { return key.String() },
		func(elem E) string { return elem.String() },
	)
}

// StringFunc converts m to a string representation with the help of
// strK and strE functions to stringify m's keys and elems. There is
// one line per bucket:
//
//	Bucket 0: []
//	Bucket 1: [[apple, 1], [fig, 6]]
func StringFunc[K any, E any](m *Table[K, E],
	strK func(key K) string,
	strE func(elem E) string) string {
	var b strings.Builder
	for i, bd := range m.Dump() {
		if i != 0 {
			b.WriteByte('\n')
		}
		b.WriteString("Bucket ")
		b.WriteString(strconv.Itoa(bd.Index))
		b.WriteString(": [")
		for j, ke := range bd.Entries {
			if j != 0 {
				b.WriteString(", ")
			}
			b.WriteByte('[')
			b.WriteString(strK(ke.Key))
			b.WriteString(", ")
			b.WriteString(strE(ke.Elem))
			b.WriteByte(']')
		}
		b.WriteByte(']')
	}
	return b.String()
}

// Equal returns true if the same set of keys and elems are in m1 and
// m2, regardless of capacity. Elements are compared using ==.
func Equal[K any, E comparable](m1, m2 *Table[K, E]) bool {
	return EqualFunc(m1, m2, func(a, b E) bool { return a == b })
}

// EqualFunc returns true if the same set of keys and elems are in m1
// and m2, regardless of capacity. Elements are compared using eq.
func EqualFunc[K, E any](m1, m2 *Table[K, E], eq func(E, E) bool) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	if m1.Len() == 0 {
		return true
	}
	for _, b := range m1.buckets {
		for _, e := range b {
			e2, ok := m2.Get(e.key)
			if !ok || !eq(e.elem, e2) {
				return false
			}
		}
	}
	return true
}
