package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sched",
		Short:         "Constraint-propagation meeting scheduler",
		Long:          "sched reads a schedule definition, expands each meeting's recurrence cadence into candidate time slots, and searches for complete schedules in which no participant is double-booked.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newPlanCmd(app),
		newCheckCmd(app),
		newAuthCmd(app),
	)

	return rootCmd
}
