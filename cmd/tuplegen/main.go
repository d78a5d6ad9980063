package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/tuplekit/tuple/internal/gen"
)

const usage = `tuplegen -- regenerate the tuple and split specializations

# Usage

tuplegen [flags]

Writes tuple_gen.go and split/split_gen.go under --dir: the tuple types up
to the chosen maximum arity, their Concat family, and one split function
per (arity, split point) pair. The number of generated specializations,
and with it the compile time of the generated packages, grows
quadratically with the maximum arity; the tiers above 64 must be confirmed
with --allow-large.

# Flags

`

func main() {
	fs := pflag.NewFlagSet("main", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}

	var (
		maxArity   = fs.Int("max-arity", 16, fmt.Sprintf("maximum tuple arity; one of %v", gen.Tiers))
		allowLarge = fs.Bool("allow-large", false, "confirm generation of the tiers above 64")
		dir        = fs.StringP("dir", "d", ".", "module root to write the generated files under")
		debug      = fs.Bool("debug", false, "enable debug logs")
	)
	err := fs.Parse(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	fail(err)
	setupLogger(os.Stderr, *debug)

	c := gen.Config{
		MaxArity:   *maxArity,
		AllowLarge: *allowLarge,
	}
	fail(c.Validate())
	slog.Debug("generate",
		slog.Int("max_arity", c.MaxArity),
		slog.Int("specializations", gen.Count(c.MaxArity)),
	)

	var eg errgroup.Group
	eg.Go(func() error {
		return write(filepath.Join(*dir, "tuple_gen.go"), c, gen.Tuples)
	})
	eg.Go(func() error {
		return write(filepath.Join(*dir, "split", "split_gen.go"), c, gen.Splits)
	})
	fail(eg.Wait())
}

func write(path string, c gen.Config, render func(gen.Config) ([]byte, error)) error {
	src, err := render(c)
	if err != nil {
		return fmt.Errorf("%w: render %s", err, path)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("%w: write %s", err, path)
	}
	slog.Debug("wrote", slog.String("path", path), slog.Int("bytes", len(src)))
	return nil
}

func setupLogger(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}

func fail(err error) {
	if err != nil {
		slog.Error("exit", slog.Any("err", err))
		os.Exit(1)
	}
}
