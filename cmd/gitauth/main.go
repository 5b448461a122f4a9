// Command gitauth runs an interactive OAuth login against a Git-hosting
// provider from the terminal: it opens the authorize URL in the default
// browser, waits for the loopback callback, exchanges the code, and prints
// the resulting tokens.
//
// Provider credentials come from a YAML config file (--config) or, when no
// file is given, from GITAUTH_* environment variables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "gitauth",
		Short:         "OAuth logins for Git-hosting providers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to YAML config (default: GITAUTH_* env vars)")
	cmd.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "log flow progress to stdout")

	cmd.AddCommand(newLoginCmd(&flags))
	cmd.AddCommand(newRefreshCmd(&flags))
	return cmd
}

type rootFlags struct {
	configPath string
	verbose    bool
}
