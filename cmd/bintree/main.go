package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.lepak.sg/bintree/cmd/bintree/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.New().Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
