// Command scical evaluates the library's special functions from the
// command line. One subcommand per function family; numeric results are
// printed one per line to stdout.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "scical:", err)
		os.Exit(1)
	}
}

// newLogger builds the command logger. Verbose selects zap's development
// config with debug level; otherwise only warnings and errors surface.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
