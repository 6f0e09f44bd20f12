package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/cli/formatter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Inspect the working-day calendar",
	}
	cmd.AddCommand(
		newCalendarCheckCmd(app),
		newCalendarDistanceCmd(app),
		newCalendarShiftCmd(app),
		newCalendarHolidaysCmd(app),
		newCalendarSuggestCmd(),
	)
	return cmd
}

func newCalendarCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check DATE",
		Short: "Report whether a date is a working day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := calendar.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDayCheck(app.Calendar, d))
			return nil
		},
	}
}

func newCalendarDistanceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "distance FROM TO",
		Short: "Count signed working days from FROM to TO",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := calendar.Parse(args[0])
			if err != nil {
				return fmt.Errorf("from: %w", err)
			}
			to, err := calendar.Parse(args[1])
			if err != nil {
				return fmt.Errorf("to: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", app.Calendar.WorkingDaysBetween(from, to))
			return nil
		},
	}
}

func newCalendarShiftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shift DATE N",
		Short:   "Move DATE by N working days (negative moves back)",
		Example: "  crewshift calendar shift 2025-01-10 -5",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := calendar.Parse(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid working-day count %q", args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.Calendar.Shift(d, n))
			return nil
		},
	}
	// Flags stop at DATE so a negative N is read as an argument.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newCalendarHolidaysCmd(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List the configured holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			holidays := app.Calendar.Holidays()
			if year != 0 {
				holidays = lo.Filter(holidays, func(h calendar.Holiday, _ int) bool {
					return h.Date.Year == year
				})
			}
			if len(holidays) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No holidays configured; only weekends are skipped.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHolidays("Holidays", holidays))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Only this year")

	return cmd
}

func newCalendarSuggestCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest observed US federal holidays for a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 {
				year = time.Now().Year()
			}
			holidays := calendar.SuggestFederalHolidays(year)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHolidays(fmt.Sprintf("Federal holidays %d", year), holidays))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Add these under calendar.holidays in crewshift.yaml."))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current year)")

	return cmd
}
