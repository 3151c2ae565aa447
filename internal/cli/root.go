package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/clippings/internal/config"
	"github.com/mrlokans/clippings/internal/entrypoint"
)

type rootOptions struct {
	envFile string
}

// NewRootCommand builds the clippings command tree.
func NewRootCommand(version, commit string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "clippings",
		Short:         "Parse Kindle clippings exports",
		Long:          `clippings turns a Kindle 'My Clippings.txt' export into structured highlights, notes and bookmarks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")

	cmd.AddCommand(newParseCommand(opts))
	cmd.AddCommand(newServeCommand(opts, version))
	cmd.AddCommand(newVersionCommand(version, commit))

	return cmd
}

func newServeCommand(opts *rootOptions, version string) *cobra.Command {
	var (
		host string
		port int32
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server exposing POST /api/clippings/parse and GET /health.

Environment variables:
  HOST                          Server host to bind to (default: 0.0.0.0)
  PORT                          Server port to listen on (default: 8188)
  SHUTDOWN_TIMEOUT_IN_SECONDS   Graceful shutdown timeout (default: 2)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.HTTP.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.HTTP.Port = port
			}
			if err := cfg.HTTP.Validate(); err != nil {
				return fmt.Errorf("invalid options: %w", err)
			}
			return entrypoint.Run(cfg, version)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to")
	cmd.Flags().Int32Var(&port, "port", 0, "Server port to listen on")

	return cmd
}

func newVersionCommand(version, commit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "clippings version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
		},
	}
}
