package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ifc2frag/internal/config"
	appErrors "ifc2frag/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		exitWithError(err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ifc2frag",
		Short: "Convert a directory of IFC models into fragments files",
		Long: "ifc2frag converts every .ifc file in the source directory into a .frag file in the\n" +
			"target directory, one file at a time, using an external converter. Files that were\n" +
			"already converted are skipped, so interrupted runs can simply be restarted.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
	os.Exit(appErrors.ExitCode(err))
}
