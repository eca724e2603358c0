package server

import (
	"context"
	"fmt"

	"github.com/mwantia/gomemo/internal/agent"
	"github.com/spf13/cobra"

	config "github.com/mwantia/gomemo/internal/config/server"
)

func NewAgentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Start the GoMemo agent",
		Long: `Start the GoMemo agent.

The agent opens the metadata store, applies pending migrations and keeps
the session of the configured user loaded until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return fmt.Errorf("failed to load server configuration: %w", err)
			}

			a := agent.NewAgent(cfg)
			if err := a.Serve(context.Background()); err != nil {
				a.Logger().Error("Agent stopped: %v", err)
				return err
			}

			return nil
		},
	}

	return cmd
}
