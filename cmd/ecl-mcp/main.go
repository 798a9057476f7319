package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/averycrespi/ecl-mcp/internal/config"
	"github.com/averycrespi/ecl-mcp/internal/server"
	"github.com/averycrespi/ecl-mcp/pkg/project"
	"github.com/averycrespi/ecl-mcp/pkg/types"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   project.Name,
	Short: "MCP server for navigating ECL source code",
	Long: `ecl-mcp serves lexical code intelligence for ECL workspaces over the
Model Context Protocol on stdio: symbol definitions across direct imports,
references, file symbols, hover documentation and completion.`,
	Version:       project.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          run,
}

func init() {
	config.RegisterFlags(rootCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", project.Name, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// stdout carries the MCP protocol, logs go to stderr
	logLevel := new(slog.LevelVar)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	cfg, err := config.Watch(cmd.Flags(), func(updated types.Config) {
		if level, err := config.ParseLogLevel(updated.LogLevel); err == nil {
			logLevel.Set(level)
		}
	})
	if err != nil {
		return err
	}

	level, _ := config.ParseLogLevel(cfg.LogLevel)
	logLevel.Set(level)

	slog.Debug("Loaded configuration", "config", cfg)

	eclServer, err := server.NewEclServer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return eclServer.Serve(ctx)
}
