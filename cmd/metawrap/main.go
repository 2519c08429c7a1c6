package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/meta-wrappers/pkg/wrapper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error kind to the process exit status.
func exitCode(err error) int {
	switch wrapper.Classify(err) {
	case wrapper.KindNone:
		return 0
	case wrapper.KindValidation:
		return 2
	case wrapper.KindAPI:
		return 3
	case wrapper.KindNotImplemented:
		return 4
	default:
		return 1
	}
}
