// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainmap

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/exp/slices"
)

func (m *Table[K, E]) debugString() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "count: %d, buckets: %d, writing: %t\n",
		m.count, len(m.buckets), m.flags&hashWriting != 0)
	for i, b := range m.buckets {
		fmt.Fprintf(&buf, "bucket: %d len: %d\n", i, len(b))
		for _, e := range b {
			fmt.Fprintf(&buf, "  %v (hash %d)\n", e.key, m.hash(e.key))
		}
	}
	return buf.String()
}

// checkInvariants verifies count, placement and load factor of m.
func (m *Table[K, E]) checkInvariants(t *testing.T) {
	t.Helper()
	if len(m.buckets) < 1 {
		t.Fatalf("capacity below 1: %s", m.debugString())
	}
	n := 0
	for i, b := range m.buckets {
		for _, e := range b {
			if idx := Modulo(m.hash(e.key), len(m.buckets)); idx != i {
				t.Errorf("key %v in bucket %d, expected bucket %d", e.key, i, idx)
			}
			n++
		}
	}
	if n != m.count {
		t.Errorf("count: %d but found %d entries: %s", m.count, n, m.debugString())
	}
	if overLoadFactor(m.count, len(m.buckets)) {
		t.Errorf("load factor over 0.7: %s", m.debugString())
	}
}

func intEqual(a, b int) bool { return a == b }

// intHash is the identity, which makes bucket placement predictable.
func intHash(a int) int { return a }

// badIntHash sends every key to the same bucket.
func badIntHash(a int) int { return 0 }

func strEqual(a, b string) bool { return a == b }

var fruits = []KeyElem[string, int]{
	{"apple", 1},
	{"banana", 2},
	{"cherry", 3},
	{"date", 4},
	{"elderberry", 5},
	{"fig", 6},
	{"grape", 7},
	{"honeydew", 8},
}

func TestSetGetDelete(t *testing.T) {
	const count = 1000
	for name, hash := range map[string]func(int) int{
		"identity": intHash,
		"negative": func(a int) int { return -a*7919 - 1 },
		"collide":  badIntHash,
	} {
		t.Run(name, func(t *testing.T) {
			m := New[int, int](intEqual, hash)
			for i := 0; i < count; i++ {
				m.Set(i, i)
				if v, ok := m.Get(i); !ok {
					t.Errorf("got not ok for %d", i)
				} else if v != i {
					t.Errorf("unexpected value for %d: %d", i, v)
				}
				if m.Len() != i+1 {
					t.Errorf("expected len: %d got: %d", i+1, m.Len())
				}
				if overLoadFactor(m.Len(), m.Cap()) {
					t.Fatalf("load factor over 0.7 after Set(%d): %s", i, m.debugString())
				}
			}
			m.checkInvariants(t)
			for i := 0; i < count; i++ {
				if v, ok := m.Get(i); !ok {
					t.Errorf("got not ok for %d", i)
				} else if v != i {
					t.Errorf("unexpected value for %d: %d", i, v)
				}
			}
			capacity := m.Cap()
			for i := 0; i < count; i++ {
				if !m.Delete(i) {
					t.Errorf("Delete(%d) reported missing key", i)
				}
				if v, ok := m.Get(i); ok {
					t.Errorf("found %d: %d, but it should have been deleted", i, v)
				}
				if m.Len() != count-i-1 {
					t.Errorf("expected len: %d got: %d", count-i-1, m.Len())
				}
			}
			if m.Cap() != capacity {
				t.Errorf("Delete changed capacity from %d to %d", capacity, m.Cap())
			}
			m.checkInvariants(t)
		})
	}
}

func TestGrowBoundary(t *testing.T) {
	m := New[string, int](strEqual, StringHash)
	for i, ke := range fruits {
		m.Set(ke.Key, ke.Elem)
		n := i + 1
		expectedCap := 10
		if n >= 8 {
			// 8/10 is the first load over 0.7
			expectedCap = 20
		}
		if m.Len() != n || m.Cap() != expectedCap {
			t.Errorf("after %d inserts: Got: len %d cap %d Expected: len %d cap %d",
				n, m.Len(), m.Cap(), n, expectedCap)
		}
	}
	for _, ke := range fruits {
		if v, ok := m.Get(ke.Key); !ok || v != ke.Elem {
			t.Errorf("Get(%q) Got: %d, %t Expected: %d, true", ke.Key, v, ok, ke.Elem)
		}
	}
	if v, ok := m.Get("kiwi"); ok {
		t.Errorf("unexpected value for kiwi: %d", v)
	}
	m.checkInvariants(t)
}

func TestCapacityOne(t *testing.T) {
	m, err := NewCapacity[string, int](1, strEqual, StringHash)
	if err != nil {
		t.Fatal(err)
	}
	m.Set("apple", 1)
	// 1/1 is already over the load factor
	if m.Cap() != 2 {
		t.Errorf("Got cap: %d Expected: 2", m.Cap())
	}
	m.Set("banana", 2)
	if m.Cap() != 4 {
		t.Errorf("Got cap: %d Expected: 4", m.Cap())
	}
	for _, ke := range fruits[:2] {
		if v, ok := m.Get(ke.Key); !ok || v != ke.Elem {
			t.Errorf("Get(%q) Got: %d, %t Expected: %d, true", ke.Key, v, ok, ke.Elem)
		}
	}
	m.checkInvariants(t)
}

func TestNewCapacityInvalid(t *testing.T) {
	for _, c := range []int{0, -1, -10} {
		m, err := NewCapacity[int, int](c, intEqual, intHash)
		if !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("NewCapacity(%d) Got err: %v Expected: %v", c, err, ErrInvalidCapacity)
		}
		if m != nil {
			t.Errorf("NewCapacity(%d) returned a table: %s", c, m.debugString())
		}
	}
}

func TestUpdateExistingDoesNotGrow(t *testing.T) {
	m, err := NewCapacity[int, int](10, intEqual, intHash)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 7; i++ {
		m.Set(i, i)
	}
	// Sitting exactly at 0.7; overwriting must not trigger a grow.
	for i := 0; i < 7; i++ {
		m.Set(i, i*10)
		m.Update(i, func(cur int) int { return cur + 1 })
	}
	if m.Cap() != 10 || m.Len() != 7 {
		t.Errorf("Got: len %d cap %d Expected: len 7 cap 10", m.Len(), m.Cap())
	}
	for i := 0; i < 7; i++ {
		if v, _ := m.Get(i); v != i*10+1 {
			t.Errorf("Get(%d) Got: %d Expected: %d", i, v, i*10+1)
		}
	}
	m.Set(7, 7)
	if m.Cap() != 20 {
		t.Errorf("Got cap: %d Expected: 20", m.Cap())
	}
}

func TestSetIdempotent(t *testing.T) {
	m := New[string, int](strEqual, StringHash)
	m.Set("apple", 1)
	before := m.String()
	m.Set("apple", 1)
	if m.Len() != 1 {
		t.Errorf("Got len: %d Expected: 1", m.Len())
	}
	if v, ok := m.Get("apple"); !ok || v != 1 {
		t.Errorf("Got: %d, %t Expected: 1, true", v, ok)
	}
	if after := m.String(); after != before {
		t.Errorf("state changed:\n%s\nvs\n%s", before, after)
	}
}

func TestGrowKeepsBucketOrder(t *testing.T) {
	m, err := NewCapacity[int, string](4, intEqual, intHash)
	if err != nil {
		t.Fatal(err)
	}
	m.Set(1, "a")
	m.Set(5, "b")
	before := m.Dump()[1].Entries
	expected := []KeyElem[int, string]{{1, "a"}, {5, "b"}}
	if !slices.Equal(before, expected) {
		t.Errorf("Got: %v Expected: %v", before, expected)
	}
	// 3/4 > 0.7: grow to 8 buckets. 1 and 9 share bucket 1 and must
	// keep their relative order.
	m.Set(9, "c")
	if m.Cap() != 8 {
		t.Fatalf("Got cap: %d Expected: 8", m.Cap())
	}
	dump := m.Dump()
	expected = []KeyElem[int, string]{{1, "a"}, {9, "c"}}
	if !slices.Equal(dump[1].Entries, expected) {
		t.Errorf("Got: %v Expected: %v", dump[1].Entries, expected)
	}
	expected = []KeyElem[int, string]{{5, "b"}}
	if !slices.Equal(dump[5].Entries, expected) {
		t.Errorf("Got: %v Expected: %v", dump[5].Entries, expected)
	}
}

func TestGrowPreservesEntries(t *testing.T) {
	ref, err := NewCapacity[int, int](1<<12, intEqual, intHash)
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewCapacity[int, int](1, intEqual, func(a int) int { return a * 31 })
	if err != nil {
		t.Fatal(err)
	}
	for i := -500; i < 500; i++ {
		capacity := m.Cap()
		m.Set(i, i*i)
		ref.Set(i, i*i)
		if m.Cap() != capacity && m.Cap() != 2*capacity {
			t.Fatalf("capacity jumped from %d to %d", capacity, m.Cap())
		}
		if !Equal(m, ref) {
			t.Fatalf("tables diverged after Set(%d): %s", i, m.debugString())
		}
	}
	m.checkInvariants(t)
}

func TestDeleteMissing(t *testing.T) {
	m := New(strEqual, StringHash, fruits[:3]...)
	if m.Delete("grape") {
		t.Error("Delete(grape) reported a key that was never inserted")
	}
	if m.Len() != 3 {
		t.Errorf("Got len: %d Expected: 3", m.Len())
	}
	if !m.Delete("banana") {
		t.Error("Delete(banana) reported missing key")
	}
	if v, ok := m.Get("banana"); ok {
		t.Errorf("found banana: %d, but it should have been deleted", v)
	}
	if m.Delete("banana") {
		t.Error("second Delete(banana) reported a key")
	}
	if m.Len() != 2 {
		t.Errorf("Got len: %d Expected: 2", m.Len())
	}
}

func TestClear(t *testing.T) {
	m := New(strEqual, StringHash, fruits...)
	if m.Len() != len(fruits) {
		t.Fatalf("Unexpected size after New (%d): %s", m.Len(), m.debugString())
	}
	capacity := m.Cap()
	m.Clear()
	if m.Len() != 0 {
		t.Errorf("expected empty map: %s", m.debugString())
	}
	if m.Cap() != capacity {
		t.Errorf("Clear changed capacity from %d to %d", capacity, m.Cap())
	}
	for _, ke := range fruits {
		if v, ok := m.Get(ke.Key); ok {
			t.Errorf("unexpected entry in map: [%s: %d]", ke.Key, v)
		}
	}
	m.Set("apple", 1)
	m.checkInvariants(t)
}

func TestNilTable(t *testing.T) {
	var m *Table[string, int]
	if m.Len() != 0 || m.Cap() != 0 {
		t.Errorf("Got: len %d cap %d Expected: 0, 0", m.Len(), m.Cap())
	}
	if _, ok := m.Get("apple"); ok {
		t.Error("Get on nil table found a key")
	}
	if m.Delete("apple") {
		t.Error("Delete on nil table found a key")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Set on nil table to panic")
		}
	}()
	m.Set("apple", 1)
}

func TestConcurrentWriteDetected(t *testing.T) {
	m := New[int, int](intEqual, intHash)
	defer func() {
		r := recover()
		if r != "concurrent map writes" {
			t.Errorf("Got panic: %v Expected: concurrent map writes", r)
		}
	}()
	m.Update(1, func(cur int) int {
		m.Set(2, 2)
		return cur
	})
}

func TestUpdate(t *testing.T) {
	m := New[int, []int](intEqual, intHash)
	for key := 0; key < 10; key++ {
		var expected []int
		for i := 0; i < 3; i++ {
			m.Update(key, func(cur []int) []int { return append(cur, 1) })
			expected = append(expected, 1)
			got, ok := m.Get(key)
			if !ok {
				t.Errorf("m missing key: %v", key)
			} else if !slices.Equal(got, expected) {
				t.Errorf("Got: %v Expected: %v", got, expected)
			}
		}
	}
	if m.Len() != 10 {
		t.Errorf("Got len: %d Expected: 10", m.Len())
	}
}

func BenchmarkGrow(b *testing.B) {
	b.Run("default", func(b *testing.B) {
		b.ReportAllocs()
		m := New[int, int](intEqual, intHash)
		for i := 0; i < b.N; i++ {
			m.Set(i, i)
		}
	})
	b.Run("capacity", func(b *testing.B) {
		b.ReportAllocs()
		m, _ := NewCapacity[int, int](2*b.N+1, intEqual, intHash)
		for i := 0; i < b.N; i++ {
			m.Set(i, i)
		}
	})
	b.Run("std:nohint", func(b *testing.B) {
		b.ReportAllocs()
		m := map[int]int{}
		for i := 0; i < b.N; i++ {
			m[i] = i
		}
	})
}

func BenchmarkGet(b *testing.B) {
	m := New(strEqual, StringHash, fruits...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(fruits[i%len(fruits)].Key)
	}
}
