package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lvillar/dqfile/mcp"
)

func newMCPCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the application tools over MCP on stdin/stdout",
		Long:  `Run a Model Context Protocol server on stdin/stdout exposing generate, validate, fill, flatten and extract as tools and the field registry as resources. Logs go to stderr.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			opts, err := generateOptions(configPath, "", logger)
			if err != nil {
				return err
			}
			s := mcp.NewServerWithIO(os.Stdin, os.Stdout)
			s.SetLogger(logger)
			mcp.RegisterDefaultTools(s, opts...)
			mcp.RegisterDefaultResources(s)
			logger.Info("MCP server ready", "name", mcp.ServerName, "version", mcp.Version)
			return s.Serve(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "carrier config file (TOML)")
	return cmd
}
