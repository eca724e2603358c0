package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mwantia/gomemo/internal/agent"
	"github.com/mwantia/gomemo/pkg/filter"
	"github.com/spf13/cobra"
)

func NewShortcutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shortcut",
		Aliases: []string{"sc"},
		Short:   "Manage shortcuts",
		Long:    "Manage shortcuts, the named filter clause lists that can be reapplied to the memo list or pinned to the top.",
	}

	cmd.AddCommand(NewShortcutListCommand())
	cmd.AddCommand(NewShortcutShowCommand())
	cmd.AddCommand(NewShortcutCreateCommand())
	cmd.AddCommand(NewShortcutEditCommand())
	cmd.AddCommand(NewShortcutPinCommand())
	cmd.AddCommand(NewShortcutRemoveCommand())

	return cmd
}

func NewShortcutListCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List shortcuts",
		Long:  "List all shortcuts of the user, pinned shortcuts first and newest first within each group.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithAgent(cmd, func(ctx context.Context, a *agent.GoMemoAgent) error {
				shortcuts := a.Session().Shortcuts()
				out := cmd.OutOrStdout()

				if asJSON {
					enc := json.NewEncoder(out)
					enc.SetIndent("", "  ")
					return enc.Encode(shortcuts)
				}

				for _, s := range shortcuts {
					marker := " "
					if s.Pinned {
						marker = "*"
					}
					fmt.Fprintf(out, "%s %s  %-24s %d clause(s)\n", marker, s.ID, s.Title, len(s.Clauses()))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print shortcuts as JSON")

	return cmd
}

func NewShortcutShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the clauses of a shortcut",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithAgent(cmd, func(ctx context.Context, a *agent.GoMemoAgent) error {
				s, ok := a.Session().Shortcut(args[0])
				if !ok {
					return fmt.Errorf("shortcut '%s' not found", args[0])
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (%s, %s)\n", s.Title, s.ID, s.RowStatus())
				for _, line := range describeClauses(s.Clauses()) {
					fmt.Fprintf(out, "  %s\n", line)
				}
				return nil
			})
		},
	}

	return cmd
}

func NewShortcutCreateCommand() *cobra.Command {
	var clauses []string

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a shortcut",
		Long: `Create a shortcut from one or more clauses.

Clauses are written as [AND|OR:]DIMENSION:OPERATOR:VALUE, e.g.
  --clause TAG:CONTAIN:work --clause OR:TEXT:CONTAIN:meeting`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithAgent(cmd, func(ctx context.Context, a *agent.GoMemoAgent) error {
				opts, err := a.EditorOptions()
				if err != nil {
					return err
				}

				e := filter.NewEditor(opts...)
				e.Title = args[0]
				if err := applyClauses(e, clauses); err != nil {
					return err
				}

				s, err := a.Session().SaveShortcut(ctx, e)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Created shortcut '%s' (%s)\n", s.Title, s.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVarP(&clauses, "clause", "c", nil, "Clause as [AND|OR:]DIMENSION:OPERATOR:VALUE (repeatable)")

	return cmd
}

func NewShortcutEditCommand() *cobra.Command {
	var title string
	var clauses []string
	var remove []int

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a shortcut",
		Long:  "Rename a shortcut, remove clauses by index and append new clauses. The whole clause list is saved at once.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithAgent(cmd, func(ctx context.Context, a *agent.GoMemoAgent) error {
				s, ok := a.Session().Shortcut(args[0])
				if !ok {
					return fmt.Errorf("shortcut '%s' not found", args[0])
				}

				opts, err := a.EditorOptions()
				if err != nil {
					return err
				}

				e := filter.EditExisting(s.ID, s.Title, s.Payload, opts...)
				if cmd.Flags().Changed("title") {
					e.Title = title
				}

				if err := removeClauses(e, remove); err != nil {
					return err
				}
				if err := applyClauses(e, clauses); err != nil {
					return err
				}

				updated, err := a.Session().SaveShortcut(ctx, e)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Updated shortcut '%s' (%s)\n", updated.Title, strings.Join(describeClauses(updated.Clauses()), " "))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringArrayVarP(&clauses, "clause", "c", nil, "Clause to append as [AND|OR:]DIMENSION:OPERATOR:VALUE (repeatable)")
	cmd.Flags().IntSliceVar(&remove, "remove", nil, "Indexes of clauses to remove")

	return cmd
}

func NewShortcutPinCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin <id>",
		Short: "Pin or unpin a shortcut",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithAgent(cmd, func(ctx context.Context, a *agent.GoMemoAgent) error {
				s, err := a.Session().TogglePin(ctx, args[0])
				if err != nil {
					return err
				}

				state := "Unpinned"
				if s.Pinned {
					state = "Pinned"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s shortcut '%s'\n", state, s.Title)
				return nil
			})
		},
	}

	return cmd
}

func NewShortcutRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a shortcut",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithAgent(cmd, func(ctx context.Context, a *agent.GoMemoAgent) error {
				if err := a.Session().DeleteShortcut(ctx, args[0]); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Deleted shortcut '%s'\n", args[0])
				return nil
			})
		},
	}

	return cmd
}
