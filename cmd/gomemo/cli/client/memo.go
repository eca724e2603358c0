package client

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/mwantia/gomemo/internal/agent"
	"github.com/mwantia/gomemo/pkg/filter"
	"github.com/spf13/cobra"
)

func NewMemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memo",
		Short: "Create and list memos",
	}

	cmd.AddCommand(NewMemoAddCommand())
	cmd.AddCommand(NewMemoListCommand())

	return cmd
}

func NewMemoAddCommand() *cobra.Command {
	var visibility string
	var at string

	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Add a memo",
		Long:  "Add a memo. Every #tag in the content is added to the tag list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			displayAt := time.Now()
			if at != "" {
				parsed, err := time.ParseInLocation(filter.TimeLayout, at, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --at '%s': %w", at, err)
				}
				displayAt = parsed
			}

			visibility = strings.ToUpper(visibility)
			if !slices.Contains(filter.DimensionVisibility.Domain(nil), visibility) {
				return fmt.Errorf("invalid visibility '%s'", visibility)
			}

			return runWithAgent(cmd, func(ctx context.Context, a *agent.GoMemoAgent) error {
				memo, err := a.Session().CreateMemo(ctx, args[0], visibility, displayAt)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Created memo %d\n", memo.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&visibility, "visibility", filter.VisibilityPrivate, "Memo visibility (PUBLIC, PROTECTED, PRIVATE)")
	cmd.Flags().StringVar(&at, "at", "", "Display time as "+filter.TimeLayout+" (default now)")

	return cmd
}

func NewMemoListCommand() *cobra.Command {
	var tag, text, memoType, visibility, from, to, shortcutID string

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List memos matching the given filter",
		Long:  "List memos. The flags build the active filter; a shortcut adds its clauses on top of the other criteria.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var duration *filter.Duration
			if from != "" || to != "" {
				d, err := parseDuration(from, to)
				if err != nil {
					return err
				}
				duration = d
			}

			return runWithAgent(cmd, func(ctx context.Context, a *agent.GoMemoAgent) error {
				sess := a.Session()
				sess.UpdateFilter(func(f filter.ActiveFilter) filter.ActiveFilter {
					return f.
						WithTag(tag).
						WithText(text).
						WithMemoType(strings.ToUpper(memoType)).
						WithVisibility(strings.ToUpper(visibility)).
						WithDuration(duration)
				})

				if shortcutID != "" {
					if _, err := sess.SelectShortcut(shortcutID); err != nil {
						return fmt.Errorf("shortcut '%s': %w", shortcutID, err)
					}
				}

				memos, err := sess.ListMemos(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if chips := sess.Filter().Chips(); len(chips) > 0 {
					names := make([]string, 0, len(chips))
					for _, c := range chips {
						names = append(names, string(c))
					}
					fmt.Fprintf(out, "Filter: %s\n", strings.Join(names, ", "))
				}
				for _, m := range memos {
					fmt.Fprintf(out, "%d  %s  %-9s  %s\n", m.ID, m.DisplayAt.Local().Format(filter.TimeLayout), m.Visibility, firstLine(m.Content))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "Only memos with this tag")
	cmd.Flags().StringVar(&text, "text", "", "Only memos containing this text")
	cmd.Flags().StringVar(&memoType, "type", "", "Only memos of this type (NOT_TAGGED, LINKED, HAS_ATTACHMENT)")
	cmd.Flags().StringVar(&visibility, "visibility", "", "Only memos with this visibility")
	cmd.Flags().StringVar(&from, "from", "", "Only memos displayed at or after "+filter.TimeLayout)
	cmd.Flags().StringVar(&to, "to", "", "Only memos displayed before "+filter.TimeLayout)
	cmd.Flags().StringVarP(&shortcutID, "shortcut", "s", "", "Apply the clauses of this shortcut")

	return cmd
}

func parseDuration(from, to string) (*filter.Duration, error) {
	d := &filter.Duration{}
	if from != "" {
		t, err := time.ParseInLocation(filter.TimeLayout, from, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid --from '%s': %w", from, err)
		}
		d.From = t
	}
	if to != "" {
		t, err := time.ParseInLocation(filter.TimeLayout, to, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid --to '%s': %w", to, err)
		}
		d.To = t
	} else {
		d.To = time.Now().Add(time.Minute)
	}

	if !d.Valid() {
		return nil, fmt.Errorf("--from must be before --to")
	}
	return d, nil
}

func firstLine(content string) string {
	line, _, _ := strings.Cut(content, "\n")
	return line
}
