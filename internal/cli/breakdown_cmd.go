package cli

import (
	"fmt"

	"github.com/alexanderramin/crewshift/internal/cli/formatter"
	"github.com/alexanderramin/crewshift/internal/domain"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage a project's categories",
	}
	cmd.AddCommand(newCategoryAddCmd(app), newCategoryListCmd(app))
	return cmd
}

func newCategoryAddCmd(app *App) *cobra.Command {
	var project, name string
	var sortOrder int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a category to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			c := &domain.Category{ProjectID: projectID, Name: name, SortOrder: sortOrder}
			if err := app.Categories.Create(ctx, c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created category %s (%s)\n", c.Name, formatter.TruncID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (job number, UUID or prefix)")
	cmd.Flags().StringVar(&name, "name", "", "Category name")
	cmd.Flags().IntVar(&sortOrder, "sort", 0, "Sort order")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCategoryListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			categories, err := app.Categories.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			if len(categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No categories found.")
				return nil
			}
			rows := make([][]string, 0, len(categories))
			for _, c := range categories {
				rows = append(rows, []string{formatter.TruncID(c.ID), c.Name, fmt.Sprintf("%d", c.SortOrder)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderTable([]string{"ID", "NAME", "SORT"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (job number, UUID or prefix)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage activities within categories",
	}
	cmd.AddCommand(newActivityAddCmd(app), newActivityListCmd(app), newActivityUpdateCmd(app))
	return cmd
}

func newActivityAddCmd(app *App) *cobra.Command {
	var project, category, name, costCode, notes string
	var hours, sortOrder int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an activity to a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}
			categoryID, err := resolveCategoryID(ctx, app, projectID, category)
			if err != nil {
				return err
			}

			a := &domain.Activity{
				CategoryID: categoryID,
				Name:       name,
				CostCode:   costCode,
				SortOrder:  sortOrder,
				Notes:      notes,
			}
			if cmd.Flags().Changed("hours") {
				a.EstimatedHours = &hours
			}
			if err := app.Activities.Create(ctx, a); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created activity %s (%s)\n", a.Name, formatter.TruncID(a.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (job number, UUID or prefix)")
	cmd.Flags().StringVar(&category, "category", "", "Category name or ID")
	cmd.Flags().StringVar(&name, "name", "", "Activity name")
	cmd.Flags().StringVar(&costCode, "cost-code", "", "Cost code")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().IntVar(&hours, "hours", 0, "Estimated hours")
	cmd.Flags().IntVar(&sortOrder, "sort", 0, "Sort order")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	var project, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			var activities []*domain.Activity
			if category != "" {
				categoryID, err := resolveCategoryID(ctx, app, projectID, category)
				if err != nil {
					return err
				}
				activities, err = app.Activities.ListByCategory(ctx, categoryID)
				if err != nil {
					return err
				}
			} else {
				activities, err = app.Activities.ListByProject(ctx, projectID)
				if err != nil {
					return err
				}
			}

			if len(activities) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No activities found.")
				return nil
			}
			rows := make([][]string, 0, len(activities))
			for _, a := range activities {
				hours := "--"
				if a.EstimatedHours != nil {
					hours = fmt.Sprintf("%d", *a.EstimatedHours)
				}
				done := ""
				if a.Completed {
					done = "✔"
				}
				rows = append(rows, []string{formatter.TruncID(a.ID), a.Name, formatter.CoalesceDash(a.CostCode), hours, done})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderTable([]string{"ID", "NAME", "COST CODE", "HOURS", "DONE"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project (job number, UUID or prefix)")
	cmd.Flags().StringVar(&category, "category", "", "Only this category (name or ID)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newActivityUpdateCmd(app *App) *cobra.Command {
	var project, name, costCode, notes string
	var hours, sortOrder int
	var completed bool

	cmd := &cobra.Command{
		Use:   "update ACTIVITY",
		Short: "Update an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var projectID string
			if project != "" {
				var err error
				if projectID, err = resolveProjectID(ctx, app, project); err != nil {
					return err
				}
			}
			activityID, err := resolveActivityID(ctx, app, projectID, args[0])
			if err != nil {
				return err
			}
			a, err := app.Activities.GetByID(ctx, activityID)
			if err != nil {
				return err
			}

			var hoursPtr, sortPtr *int
			if cmd.Flags().Changed("hours") {
				hoursPtr = &hours
			}
			if cmd.Flags().Changed("sort") {
				sortPtr = &sortOrder
			}

			a.Name = lo.CoalesceOrEmpty(name, a.Name)
			a.CostCode = lo.CoalesceOrEmpty(costCode, a.CostCode)
			a.Notes = lo.CoalesceOrEmpty(notes, a.Notes)
			a.SortOrder = lo.FromPtrOr(sortPtr, a.SortOrder)
			if hoursPtr != nil {
				a.EstimatedHours = hoursPtr
			}
			if cmd.Flags().Changed("completed") {
				a.Completed = completed
			}

			if err := app.Activities.Update(ctx, a); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated activity %s (%s)\n", a.Name, formatter.TruncID(a.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project, enables lookup by activity name")
	cmd.Flags().StringVar(&name, "name", "", "Activity name")
	cmd.Flags().StringVar(&costCode, "cost-code", "", "Cost code")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().IntVar(&hours, "hours", 0, "Estimated hours")
	cmd.Flags().IntVar(&sortOrder, "sort", 0, "Sort order")
	cmd.Flags().BoolVar(&completed, "completed", false, "Mark the activity completed")

	return cmd
}
