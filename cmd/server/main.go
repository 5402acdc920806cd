package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bjarke-xyz/applications-api/internal/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.ServerCmd(ctx); err != nil {
		log.Fatal(err)
	}
}
