// Package cmd wires the cobra CLI driver spec §6 specifies around the
// domain core: argument parsing, JSON I/O, and logging are strictly a
// driver concern (spec §1's "out of core scope"), never imported back by
// problem/solution/omp/constructive/neighborhood/heuristic/feedback.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "upmsp",
	Short: "Iron-ore stockyard blending and scheduling optimizer",
}

// Execute runs the root command, matching the teacher's main.go entrypoint
// shape (cmd.Execute() called from package main).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(generateCmd)
}

func setLogLevel() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}
