// Package main provides the ccgen CLI tool for generating controller
// cloud-init configurations.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/controller-cloud-init/pkg/tui"
)

// version is set via -ldflags during build
var version = "dev"

func main() {
	setupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", tui.ErrorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command for ccgen
func newRootCmd() *cobra.Command {
	var inputPath string

	rootCmd := &cobra.Command{
		Use:   "ccgen --input <template>",
		Short: "Controller cloud-init generator",
		Long: `ccgen asks a few questions about a controller and fills them into a
cloud-init template.

Optional blocks (SSO, SSH key, initial admin user, cluster join) are dropped
when not wanted, comments and blank lines are stripped, and the result is
written to generated-cloud-init.yaml next to the template.

Settings are read from ~/.config/ccgen/config.yaml when present:
  hash_script  script that hashes the initial user password (default ./generate-hash.sh)
  log_level    debug, info, warn or error (default warn)

CCGEN_HASH_SCRIPT and CCGEN_LOG_LEVEL override the file.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, inputPath)
		},
	}

	rootCmd.Flags().StringVar(&inputPath, "input", "", "Path to the input cloud-init template (required)")
	if err := rootCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}

	return rootCmd
}

// setupLogger sends structured logs to stderr so stdout carries only the
// prompts and the generated document.
func setupLogger() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}
