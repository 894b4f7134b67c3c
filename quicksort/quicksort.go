// Copyright (c) Arista Networks, Inc. 2026
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quicksort implements in-place quicksort with two pivot
// strategies: always the first element, or a uniformly random one.
// The first-element variant degrades to quadratic time on sorted and
// uniform input, which is what the random variant avoids.
package quicksort

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

// Classic sorts s in ascending order using the first element of each
// range as the pivot.
func Classic[T constraints.Ordered](s []T) {
	classic(s, 0, len(s)-1)
}

func classic[T constraints.Ordered](s []T, start, end int) {
	if start < end {
		p := partition(s, start, end)
		classic(s, start, p-1)
		classic(s, p+1, end)
	}
}

// Random sorts s in ascending order, picking each pivot uniformly at
// random with r. A nil r uses the package-level source of
// golang.org/x/exp/rand.
func Random[T constraints.Ordered](s []T, r *rand.Rand) {
	intn := rand.Intn
	if r != nil {
		intn = r.Intn
	}
	random(s, 0, len(s)-1, intn)
}

func random[T constraints.Ordered](s []T, start, end int, intn func(int) int) {
	if start < end {
		i := start + intn(end-start+1)
		s[start], s[i] = s[i], s[start]
		p := partition(s, start, end)
		random(s, start, p-1, intn)
		random(s, p+1, end, intn)
	}
}

// partition splits s[start:end+1] around s[start] and returns the
// pivot's final index. Elements equal to the pivot go left.
func partition[T constraints.Ordered](s []T, start, end int) int {
	pivot := s[start]
	l, r := start+1, end
	for {
		for l <= r && s[l] <= pivot {
			l++
		}
		for l <= r && s[r] > pivot {
			r--
		}
		if l > r {
			break
		}
		s[l], s[r] = s[r], s[l]
	}
	s[start], s[r] = s[r], s[start]
	return r
}
