package cmd

import (
	"fmt"

	planadapter "github.com/gigamonkey/scheduler/internal/adapters/render/plan"
	"github.com/gigamonkey/scheduler/internal/application"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *app) *cobra.Command {
	var limit int
	var all bool
	var showParticipants bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Search for complete schedules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if all {
				limit = 0
			} else if limit < 1 {
				return fmt.Errorf("limit must be at least 1, got %d", limit)
			}

			var solutions []application.Solution
			err := runSearchSpinner(cmd.Context(), cmd.ErrOrStderr(), func() error {
				var planErr error
				solutions, planErr = app.service.Plan(cmd.Context(), limit)
				return planErr
			})
			if err != nil {
				return err
			}

			rendered, err := app.planRenderer(solutions, planadapter.RenderOptions{
				ShowParticipants: showParticipants,
			})
			if err != nil {
				return fmt.Errorf("render schedules: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 1, "Maximum number of schedules to produce")
	cmd.Flags().BoolVar(&all, "all", false, "Produce every schedule (may be combinatorially many)")
	cmd.Flags().BoolVar(&showParticipants, "participants", false, "Show each meeting's participants")

	return cmd
}

func newCheckCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check whether any complete schedule exists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			feasible, err := app.service.Feasible(cmd.Context())
			if err != nil {
				return err
			}
			if !feasible {
				return fmt.Errorf("no feasible schedule exists")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "feasible")
			return err
		},
	}
}
