// Copyright (c) Arista Networks, Inc. 2026
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qsortbench times the two quicksort variants against each
// other on a fixed set of inputs and checks that both sort correctly.
package qsortbench

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aristanetworks/chainmap/quicksort"
	"github.com/aybabtme/uniplot/histogram"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

var (
	ErrRandomFailed  = errors.New("random version failed")
	ErrClassicFailed = errors.New("classic version failed")
)

// Case is one named input. Data is never modified.
type Case struct {
	Name string
	Data []int
}

// Cases returns the standard inputs of the given size: random values
// in [0, 1000], ascending, descending, uniform, a singleton and an
// empty sequence. r must not be nil.
func Cases(size int, r *rand.Rand) []Case {
	var (
		random = make([]int, size)
		asc    = make([]int, size)
		desc   = make([]int, size)
		same   = make([]int, size)
	)
	for i := 0; i < size; i++ {
		random[i] = r.Intn(1001)
		asc[i] = i
		desc[i] = size - i
		same[i] = 42
	}
	return []Case{
		{"Random Sequence", random},
		{"Ascending Sequence", asc},
		{"Descending Sequence", desc},
		{"Uniform Sequence", same},
		{"Singleton Sequence", []int{1}},
		{"Empty Sequence", []int{}},
	}
}

// Result holds the per-run durations of both variants for one case.
type Result struct {
	Case    string
	Random  []time.Duration
	Classic []time.Duration
}

// Compare sorts separate copies of c.Data with both variants, runs
// times each, and checks every result against a reference sort.
func Compare(c Case, runs int, r *rand.Rand) (Result, error) {
	if runs < 1 {
		return Result{}, fmt.Errorf("runs must be positive, got %d", runs)
	}
	expected := append([]int(nil), c.Data...)
	slices.Sort(expected)

	res := Result{
		Case:    c.Name,
		Random:  make([]time.Duration, 0, runs),
		Classic: make([]time.Duration, 0, runs),
	}
	buf := make([]int, len(c.Data))
	for i := 0; i < runs; i++ {
		copy(buf, c.Data)
		start := time.Now()
		quicksort.Random(buf, r)
		res.Random = append(res.Random, time.Since(start))
		if !slices.Equal(buf, expected) {
			return res, fmt.Errorf("%s: %w", c.Name, ErrRandomFailed)
		}

		copy(buf, c.Data)
		start = time.Now()
		quicksort.Classic(buf)
		res.Classic = append(res.Classic, time.Since(start))
		if !slices.Equal(buf, expected) {
			return res, fmt.Errorf("%s: %w", c.Name, ErrClassicFailed)
		}
	}
	return res, nil
}

// Mean returns the average of ds, or 0 for no durations.
func Mean(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range ds {
		sum += d
	}
	return sum / time.Duration(len(ds))
}

// Report writes res in the classic comparison layout. With hist set
// and more than one distinct run time, a histogram of run times (in
// nanoseconds) follows each variant.
func Report(w io.Writer, res Result, hist bool) error {
	fmt.Fprintf(w, "Test Case: %s\n", res.Case)
	fmt.Fprintf(w, "  Random Version: %.6f seconds\n", Mean(res.Random).Seconds())
	fmt.Fprintf(w, "  Classic Version: %.6f seconds\n", Mean(res.Classic).Seconds())
	if hist && len(res.Random) > 1 {
		for _, v := range []struct {
			name string
			ds   []time.Duration
		}{{"Random", res.Random}, {"Classic", res.Classic}} {
			fs := nanos(v.ds)
			if !spread(fs) {
				continue
			}
			fmt.Fprintf(w, "  %s run times (ns):\n", v.name)
			if err := histogram.Fprint(w, histogram.Hist(5, fs), histogram.Linear(5)); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprint(w, "  Status: Both implementations sorted correctly!\n\n")
	return err
}

func nanos(ds []time.Duration) []float64 {
	fs := make([]float64, len(ds))
	for i, d := range ds {
		fs[i] = float64(d.Nanoseconds())
	}
	return fs
}

// spread reports whether fs holds at least two distinct values.
func spread(fs []float64) bool {
	for _, f := range fs {
		if f != fs[0] {
			return true
		}
	}
	return false
}
