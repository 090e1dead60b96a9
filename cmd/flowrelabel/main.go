// Command flowrelabel canonicalizes DIMACS "max" files: it drops
// zero-capacity edges and renumbers the surviving vertices densely while
// keeping the source/sink roles intact.
//
// Usage:
//
//	flowrelabel [flags] <source-file> <destination-file>
//	flowrelabel --watch <source-dir> <destination-dir>
//
// In watch mode every *.dimacs or *.max file created or rewritten in the
// source directory is relabeled into the destination directory under the
// same base name.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/flowbench/cli"
	"github.com/katalvlaran/flowbench/relabel"
)

func main() {
	f := pflag.NewFlagSet("flowrelabel", pflag.ExitOnError)
	f.BoolP("verbose", "v", false, "enable debug logging")
	f.BoolP("watch", "w", false, "watch a directory and relabel each instance file into the destination directory")
	_ = f.Parse(os.Args[1:])

	cfg, err := cli.Load(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := cli.NewLogger(cfg.Verbose)
	if f.NArg() != 2 {
		logger.Fatal("usage: flowrelabel [flags] <source> <destination>")
	}
	src, dst := f.Arg(0), f.Arg(1)

	if !cfg.Watch {
		if err = relabel.File(src, dst); err != nil {
			logger.Fatal("relabel failed", "src", src, "err", err)
		}
		logger.Info("instance relabeled", "src", src, "dst", dst)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = cli.Watch(ctx, src, logger, func(path string) error {
		out := filepath.Join(dst, filepath.Base(path))
		if err := relabel.File(path, out); err != nil {
			return err
		}
		logger.Info("instance relabeled", "src", path, "dst", out)
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("watch failed", "err", err)
	}
}
