package cli

import (
	"fmt"

	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/cli/formatter"
	"github.com/alexanderramin/crewshift/internal/domain"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newManpowerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manpower",
		Short: "Edit the day-by-day crew schedule",
	}
	cmd.AddCommand(newManpowerSetCmd(app), newManpowerListCmd(app), newManpowerRemoveCmd(app))
	return cmd
}

func newManpowerSetCmd(app *App) *cobra.Command {
	var project, activity, date, through string
	var crew int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the crew size of an activity on a date (or every working day through --through)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			activityID, err := resolveActivityID(ctx, app, projectID, activity)
			if err != nil {
				return err
			}

			from, err := calendar.Parse(date)
			if err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}
			days := []calendar.Date{from}
			if through != "" {
				last, err := calendar.Parse(through)
				if err != nil {
					return fmt.Errorf("invalid --through date: %w", err)
				}
				if last.Before(from) {
					return fmt.Errorf("--through %s is before --date %s", last, from)
				}
				days = days[:0]
				for d := from; !d.After(last); d = d.AddDays(1) {
					if app.Calendar.IsWorkingDay(d) {
						days = append(days, d)
					}
				}
			}

			for _, d := range days {
				if _, err := app.Manpower.Set(ctx, activityID, d, crew); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set crew %d on %d day(s)\n", crew, len(days))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (job number, UUID or prefix)")
	cmd.Flags().StringVar(&activity, "activity", "", "Activity name or ID")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&through, "through", "", "Fill every working day up to this date")
	cmd.Flags().IntVar(&crew, "crew", 0, "Headcount")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("activity")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("crew")

	return cmd
}

func newManpowerListCmd(app *App) *cobra.Command {
	var project, activity string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List manpower records of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			activities, err := app.Activities.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			names := lo.SliceToMap(activities, func(a *domain.Activity) (string, string) {
				return a.ID, a.Name
			})

			var records []*domain.ManpowerRecord
			if activity != "" {
				activityID, err := resolveActivityID(ctx, app, projectID, activity)
				if err != nil {
					return err
				}
				records, err = app.Manpower.ListByActivity(ctx, activityID)
				if err != nil {
					return err
				}
			} else {
				records, err = app.Manpower.ListByProject(ctx, projectID)
				if err != nil {
					return err
				}
			}

			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No manpower records found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatManpowerList(records, names))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (job number, UUID or prefix)")
	cmd.Flags().StringVar(&activity, "activity", "", "Only this activity (name or ID)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newManpowerRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a manpower record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Manpower.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed manpower record %s\n", args[0])
			return nil
		},
	}
}
