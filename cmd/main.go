// File: lixenwraith/getarg/cmd/main.go
// Demo program: parses its own command line and dumps the resolved store
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/getarg"
	"go.uber.org/zap"
)

func main() {
	args := getarg.Quick()

	logger, err := newLogger(args.GetBool("-debug", false))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(args, logger); err != nil {
		logger.Error("getarg failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// newLogger returns a development logger in debug mode, otherwise a production
// logger that still reports errors on stderr
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func run(args *getarg.Args, logger *zap.Logger) error {
	format, err := getarg.ParseFormat(args.GetString("-format", string(getarg.FormatTOML)))
	if err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}

	if args.GetBool("-debug", false) {
		logger.Debug("arguments resolved", zap.Int("keys", args.Len()))
		fmt.Fprint(os.Stderr, args.Debug())
	}

	if err := args.Dump(os.Stdout, format); err != nil {
		return fmt.Errorf("failed to dump arguments: %w", err)
	}

	if path := args.GetString("-save", ""); path != "" {
		if err := args.Save(path); err != nil {
			return fmt.Errorf("failed to save arguments: %w", err)
		}
	}

	return nil
}
