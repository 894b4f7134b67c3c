// Copyright (c) Arista Networks, Inc. 2026
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainmap

import "github.com/spaolacci/murmur3"

// Modulo is the mathematically correct modulo (% as done in Python),
// for n > 0 the result is always in [0, n).
//
//	Modulo(-1, 5) = 4
func Modulo(x, n int) int {
	return (x%n + n) % n
}

// StringHash hashes s with 64-bit murmur3. The result is stable
// across processes and spans the full int range, negative values
// included.
func StringHash(s string) int {
	return int(murmur3.Sum64([]byte(s)))
}
