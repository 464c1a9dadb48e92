package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"intervaltimer/internal/platform"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Execute(ctx); err != nil {
		if !errors.Is(err, platform.ErrAlreadyRunning) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
