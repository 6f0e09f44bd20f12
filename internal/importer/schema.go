// Package importer reads and writes the JSON exchange format for a whole
// project schedule: the project, its categories and activities, and the
// day-by-day manpower of each activity.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for project import/export.
type ImportSchema struct {
	Project    ProjectImport    `json:"project"`
	Categories []CategoryImport `json:"categories"`
	Activities []ActivityImport `json:"activities"`
	Manpower   []ManpowerImport `json:"manpower,omitempty"`
}

// ProjectImport defines the project-level fields in the import file.
type ProjectImport struct {
	JobNumber   string  `json:"job_number,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// CategoryImport defines a category. Ref is local to the file.
type CategoryImport struct {
	Ref   string `json:"ref"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// ActivityImport defines an activity inside the category named by CategoryRef.
type ActivityImport struct {
	Ref            string `json:"ref"`
	CategoryRef    string `json:"category_ref"`
	Name           string `json:"name"`
	CostCode       string `json:"cost_code,omitempty"`
	Order          int    `json:"order"`
	EstimatedHours *int   `json:"estimated_hours,omitempty"`
	Notes          string `json:"notes,omitempty"`
	Completed      bool   `json:"completed,omitempty"`
}

// ManpowerImport is one day of crew on an activity.
type ManpowerImport struct {
	ActivityRef string `json:"activity_ref"`
	Date        string `json:"date"`
	Crew        int    `json:"crew"`
}

// LoadImportSchema reads and parses a JSON import file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	return ParseImportSchema(data)
}

// ParseImportSchema parses JSON bytes into an ImportSchema.
func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import JSON: %w", err)
	}
	return &schema, nil
}
