// Package main is the entrypoint for the utctime command.
// It converts between RFC 3339 timestamps, epoch offsets and tick counts.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aelexs/utctime/internal/cli"
	"github.com/aelexs/utctime/internal/errmap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	err := cli.Run(ctx, os.Args[1:], cli.Options{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	stop()

	if err != nil {
		e := errmap.ToCLIError(err)
		fmt.Fprintf(os.Stderr, "utctime: %s: %v\n", e.Code, err)
		if errors.Is(err, cli.ErrUsage) {
			cli.PrintUsage(os.Stderr)
		}
		os.Exit(e.ExitCode)
	}
}
