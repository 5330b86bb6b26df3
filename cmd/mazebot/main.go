// mazebot solves grid mazes: race the remote judge, solve local maze
// documents, serve a solve API or generate test mazes.
//
// Usage:
//
//	mazebot race     [--login=<github login>] [--max-mazes=N]
//	mazebot solve    [--render] [--jobs=N] FILE...
//	mazebot serve    [--listen=:8080]
//	mazebot generate [--cells=N] [--seed=N] [--loops=P]
//
// Every command accepts --config, --mode, --log-level and --log-format.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
