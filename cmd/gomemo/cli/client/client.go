package client

import (
	"context"
	"fmt"

	"github.com/mwantia/gomemo/internal/agent"
	"github.com/spf13/cobra"

	config "github.com/mwantia/gomemo/internal/config/server"
)

// runWithAgent loads the configuration, opens the agent for the duration of
// fn and closes it afterwards.
func runWithAgent(cmd *cobra.Command, fn func(ctx context.Context, a *agent.GoMemoAgent) error) error {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load server configuration: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a := agent.NewAgent(cfg)
	if err := a.Open(ctx); err != nil {
		return err
	}
	defer a.Close(context.Background())

	return fn(ctx, a)
}
