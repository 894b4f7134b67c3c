// Copyright (c) Arista Networks, Inc. 2026
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/aristanetworks/chainmap"
	"github.com/aristanetworks/chainmap/internal/cli"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.0.1"

type config struct {
	Capacity int
	Loglevel string
}

var (
	cfg     config
	rootCmd = &cobra.Command{
		Use:     "chaindemo",
		Short:   "Walk through the chained hash table",
		Long:    "Fills a chained hash table with fruit, looks some up, removes some and prints the buckets along the way.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cli.SetLogLevel(cfg.Loglevel)
			return run(cmd.OutOrStdout(), cfg.Capacity)
		},
	}
)

var fruits = []chainmap.KeyElem[string, int]{
	{Key: "apple", Elem: 1},
	{Key: "banana", Elem: 2},
	{Key: "cherry", Elem: 3},
	{Key: "date", Elem: 4},
	{Key: "elderberry", Elem: 5},
	{Key: "fig", Elem: 6},
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&cfg.Capacity, "capacity", "c", chainmap.DefaultCapacity, "Initial number of buckets, must be positive")
	rootCmd.PersistentFlags().StringVarP(&cfg.Loglevel, "loglevel", "o", "info", "Loglevel, e.g., INFO, ALL, . . .")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, capacity int) error {
	m, err := chainmap.NewCapacity[string, int](capacity,
		func(a, b string) bool { return a == b }, chainmap.StringHash)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	log.WithField("capacity", m.Cap()).Debug("created table")

	for _, ke := range fruits {
		before := m.Cap()
		m.Set(ke.Key, ke.Elem)
		if m.Cap() != before {
			log.WithFields(log.Fields{
				"key":  ke.Key,
				"from": before,
				"to":   m.Cap(),
				"len":  m.Len(),
			}).Debug("table grew")
		}
	}

	fmt.Fprintln(w, "Initial table state:")
	fmt.Fprintln(w, dump(m))

	fmt.Fprintln(w, "\nLookup results:")
	for _, k := range []string{"apple", "fig", "grape"} {
		v := "None"
		if e, ok := m.Get(k); ok {
			v = strconv.Itoa(e)
		}
		fmt.Fprintf(w, "Looking up '%s': %s\n", k, v)
	}

	fmt.Fprintln(w, "\nRemoving items:")
	for _, k := range []string{"banana", "grape"} {
		res := "False"
		if m.Delete(k) {
			res = "True"
		}
		fmt.Fprintf(w, "Removing '%s': %s\n", k, res)
	}

	fmt.Fprintln(w, "\nFinal table state:")
	fmt.Fprintln(w, dump(m))

	log.WithFields(log.Fields{"len": m.Len(), "capacity": m.Cap()}).Info("done")

	return nil
}

// dump renders m with quoted keys, e.g. Bucket 3: [['apple', 1]].
func dump(m *chainmap.Table[string, int]) string {
	return chainmap.StringFunc(m,
		func(k string) string { return "'" + k + "'" },
		strconv.Itoa)
}
