package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const (
	serviceName    = "depthsheets"
	serviceVersion = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:     serviceName,
	Short:   "depthsheets builds weekly NFL matchup sheets from the schedule and depth charts.",
	Version: serviceVersion,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
