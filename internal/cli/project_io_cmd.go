package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newProjectImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a project schedule from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported project %s [%s]: %d categories, %d activities, %d manpower records\n",
				result.Project.Name, result.Project.DisplayID(),
				result.CategoryCount, result.ActivityCount, result.ManpowerCount)
			return nil
		},
	}
}

func newProjectExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Export a project schedule as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}

			schema, err := app.Import.ExportProject(cmd.Context(), projectID)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding export: %w", err)
			}
			data = append(data, '\n')

			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", schema.Project.Name, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to FILE instead of stdout")

	return cmd
}
