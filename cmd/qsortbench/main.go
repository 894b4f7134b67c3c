// Copyright (c) Arista Networks, Inc. 2026
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aristanetworks/chainmap/internal/cli"
	"github.com/aristanetworks/chainmap/internal/qsortbench"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

const version = "0.0.1"

type config struct {
	Size      int
	Runs      int
	Seed      uint64
	Histogram bool
	Loglevel  string
}

var (
	cfg     config
	rootCmd = &cobra.Command{
		Use:     "qsortbench",
		Short:   "Compare first-element and random pivot quicksort",
		Long:    "Times first-element pivot quicksort against random pivot quicksort on random, sorted, reversed, uniform, singleton and empty input.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cli.SetLogLevel(cfg.Loglevel)
			return run(cmd.OutOrStdout(), cfg)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().IntVarP(&cfg.Size, "size", "n", 100, "Length of the generated sequences")
	rootCmd.PersistentFlags().IntVarP(&cfg.Runs, "runs", "r", 1, "Number of timed runs per variant and case")
	rootCmd.PersistentFlags().Uint64VarP(&cfg.Seed, "seed", "s", 0, "Random seed, 0 picks one from the clock")
	rootCmd.PersistentFlags().BoolVar(&cfg.Histogram, "histogram", false, "Print a histogram of run times when runs > 1")
	rootCmd.PersistentFlags().StringVarP(&cfg.Loglevel, "loglevel", "o", "info", "Loglevel, e.g., INFO, ALL, . . .")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, cfg config) error {
	if cfg.Size < 0 {
		return fmt.Errorf("size must not be negative, got %d", cfg.Size)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r := rand.New(rand.NewSource(seed))

	log.WithFields(log.Fields{
		"size": cfg.Size,
		"runs": cfg.Runs,
		"seed": seed,
	}).Debug("starting comparison")

	fmt.Fprint(w, "Performance Analysis: Random vs Classic QuickSort\n\n")

	for _, c := range qsortbench.Cases(cfg.Size, r) {
		res, err := qsortbench.Compare(c, cfg.Runs, r)
		if err != nil {
			return fmt.Errorf("failed to compare quicksorts: %w", err)
		}
		if err := qsortbench.Report(w, res, cfg.Histogram); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		log.WithFields(log.Fields{
			"case":    c.Name,
			"random":  qsortbench.Mean(res.Random),
			"classic": qsortbench.Mean(res.Classic),
		}).Debug("case finished")
	}

	return nil
}
