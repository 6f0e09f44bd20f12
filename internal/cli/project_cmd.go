package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/crewshift/internal/app"
	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/cli/formatter"
	"github.com/alexanderramin/crewshift/internal/domain"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectShiftCmd(app),
		newProjectRemoveCmd(app),
		newProjectImportCmd(app),
		newProjectExportCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, job, start, end, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := calendar.Parse(start)
			if err != nil {
				return fmt.Errorf("invalid start date: %w", err)
			}

			p := &domain.Project{
				Name:        name,
				JobNumber:   strings.ToUpper(job),
				Description: description,
				StartDate:   startDate,
				Status:      domain.ProjectActive,
			}
			if end != "" {
				endDate, err := calendar.Parse(end)
				if err != nil {
					return fmt.Errorf("invalid end date: %w", err)
				}
				p.EndDate = &endDate
			}

			if err := app.Projects.Create(cmd.Context(), p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&job, "job", "", "Job number (e.g. J-2041)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context(), all)
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived projects")

	return cmd
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show project details and its schedule breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			categories, err := app.Categories.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			data := formatter.ProjectInspectData{
				Project:    p,
				Categories: categories,
				Activities: make(map[string][]*domain.Activity),
				Manpower:   make(map[string][]*domain.ManpowerRecord),
			}
			for _, c := range categories {
				acts, err := app.Activities.ListByCategory(ctx, c.ID)
				if err != nil {
					return err
				}
				data.Activities[c.ID] = acts
				for _, a := range acts {
					records, err := app.Manpower.ListByActivity(ctx, a.ID)
					if err != nil {
						return err
					}
					data.Manpower[a.ID] = records
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectInspect(data))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, job, end, description, status string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a project (use 'project shift' to move the start date)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			p.Name = lo.CoalesceOrEmpty(name, p.Name)
			p.JobNumber = lo.CoalesceOrEmpty(strings.ToUpper(job), p.JobNumber)
			p.Status = lo.CoalesceOrEmpty(domain.ProjectStatus(status), p.Status)
			if cmd.Flags().Changed("description") {
				p.Description = description
			}
			if cmd.Flags().Changed("end") {
				if end == "" {
					p.EndDate = nil
				} else {
					endDate, err := calendar.Parse(end)
					if err != nil {
						return fmt.Errorf("invalid end date: %w", err)
					}
					p.EndDate = &endDate
				}
			}

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated project %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&job, "job", "", "Job number")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, empty to clear)")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&status, "status", "", "Project status (active|on_hold|completed|archived)")

	return cmd
}

func newProjectShiftCmd(a *App) *cobra.Command {
	var to string
	var dryRun, yes bool

	cmd := &cobra.Command{
		Use:   "shift ID --to DATE",
		Short: "Move the start date and shift every manpower record by the same working days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, a, args[0])
			if err != nil {
				return err
			}
			req := app.NewShiftStartDateRequest(projectID, to)

			if !dryRun && !yes && a.interactive() {
				preview := req
				preview.DryRun = true
				plan, err := a.Shifter.ShiftStartDate(ctx, preview)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatShiftResult(plan))
				ok, err := a.confirm(
					fmt.Sprintf("Shift start date to %s?", plan.NewStartDate),
					fmt.Sprintf("%d manpower records move %+d working days.", plan.Moved(), plan.WorkingDays),
				)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Shift cancelled.")
					return nil
				}
			}

			req.DryRun = dryRun
			resp, err := a.Shifter.ShiftStartDate(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatShiftResult(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "New start date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the shift without writing it")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a project with its categories, activities and manpower",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, projectID, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed project %s\n", projectID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove even if the project is not archived")

	return cmd
}
