// Command slotswapper runs the SlotSwapper HTTP API and its maintenance tasks.
//
// Usage:
//
//	slotswapper serve
//	slotswapper migrate up|down|status
//	slotswapper cleanup-tokens
//
// Configuration comes from CONFIG_PATH (YAML), the environment and an
// optional .env file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
