// Package main is a small command-line front end over package pebble:
// build a synthetic network, run the bound controller over it, and print
// the resulting schedule. It exists to exercise the library end to end,
// not as a supported interchange format for real circuit descriptions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-peb/peb/logger"
)

var rootCmd = &cobra.Command{
	Use:   "pebble",
	Short: "search for reversible pebbling schedules over synthetic logic networks",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if fQuiet {
			logger.Disable()
		}
	},
}

var fQuiet bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&fQuiet, "quiet", false, "disable logging")
}

// Execute runs the CLI, exiting the process with a nonzero status on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
