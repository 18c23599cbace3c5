package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "hilom",
		Short:         "Mental wellness companion: book appointments, track moods and journal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (HILOM_* environment variables take precedence)")

	root.AddCommand(bookCmd(&configFile))
	root.AddCommand(historyCmd(&configFile))
	root.AddCommand(recommendCmd(&configFile))
	root.AddCommand(playCmd(&configFile))
	root.AddCommand(favoritesCmd(&configFile))
	root.AddCommand(journalCmd(&configFile))
	root.AddCommand(quoteCmd(&configFile))
	root.AddCommand(registerCmd(&configFile))
	root.AddCommand(loginCmd(&configFile))
	root.AddCommand(adminCmd(&configFile))

	return root
}
