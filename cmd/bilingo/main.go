package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/bilingo/internal/app"
	"codeberg.org/snonux/bilingo/internal/cli"
	"codeberg.org/snonux/bilingo/internal/logging"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command, the runner is built once config is loaded
	rootCmd := cli.CreateRootCommand(flags, newRunner)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRunner(ctx context.Context) (cli.Runner, error) {
	cfg, err := cli.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Env, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	return app.New(ctx, cfg, os.Stdin, os.Stdout, logger)
}
