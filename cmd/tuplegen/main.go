// Command tuplegen generates Go code for tuple declarations.
//
// Usage:
//
//	tuplegen gen [-o file] [--watch] [-j n] file...
//	tuplegen check file...
//	tuplegen graph file
//
// See package github.com/rogpeppe/tuplekit/internal/config for the
// declaration file format.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rogpeppe/tuplekit/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCommand(nil).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
