package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aframe",
		Short: "DOM utilities for server-side HTML work",
		Long: `aframe is a small toolbox around the aframe DOM utility library.

It interpolates template strings, queries parsed HTML documents with
CSS-style selectors, and serves a live-reloading preview of an HTML file:

  • fmt      — substitute {name} / {name=default} placeholders
  • query    — run a selector against an HTML file
  • preview  — serve a file with live reload, metrics and tracing`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		fmtCmd(),
		queryCmd(),
		previewCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("\033[36m→\033[0m %s\n", fmt.Sprintf(format, args...))
}
