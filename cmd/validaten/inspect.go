package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validaten/pkg/inspect"
	"github.com/dmitrymomot/validaten/pkg/logger"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect VALUE...",
		Short: "Run every classifier and report all categories that match",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := a.inspectAll(cmd, args)
			if err := a.writeReports(cmd.OutOrStdout(), reports); err != nil {
				return err
			}
			invalid := 0
			for _, r := range reports {
				if !r.Valid() {
					invalid++
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", ErrInvalidInput, invalid, len(args))
			}
			return nil
		},
	}
}

func (a *app) inspectAll(cmd *cobra.Command, values []string) []inspect.Report {
	ctx := cmd.Context()
	reports := make([]inspect.Report, 0, len(values))
	for _, v := range values {
		r := inspect.Inspect(v)
		r.Input = a.display(v, hasCard(r))
		a.log.DebugContext(ctx, "inspected",
			logger.Input(r.Input),
			slog.Int("matches", len(r.Matches)),
			logger.Valid(r.Valid()),
		)
		reports = append(reports, r)
	}
	return reports
}

func hasCard(r inspect.Report) bool {
	for _, m := range r.Matches {
		if m.Category == inspect.CategoryCard {
			return true
		}
	}
	return false
}
