package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/alexanderramin/crewshift/internal/db"
	"github.com/alexanderramin/crewshift/internal/domain"
	"github.com/alexanderramin/crewshift/internal/repository"
	"github.com/alexanderramin/crewshift/internal/service"
	"github.com/alexanderramin/crewshift/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB and a weekends-only
// calendar.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	projRepo := repository.NewSQLiteProjectRepo(database)
	catRepo := repository.NewSQLiteCategoryRepo(database)
	actRepo := repository.NewSQLiteActivityRepo(database)
	mpRepo := repository.NewSQLiteManpowerRepo(database)
	cal := calendar.New(nil)

	return &App{
		Projects:   service.NewProjectService(projRepo),
		Categories: service.NewCategoryService(catRepo),
		Activities: service.NewActivityService(actRepo),
		Manpower:   service.NewManpowerService(mpRepo, actRepo),
		Import:     service.NewImportService(testutil.NewTestUoW(database), database),
		Shifter:    service.NewStartDateService(db.NewUnitOfWork(database, true), service.SQLiteStoreBinder, cal),
		Calendar:   cal,
		Listen:     "127.0.0.1:0",
	}
}

type seeded struct {
	project  *domain.Project
	activity *domain.Activity
	record   *domain.ManpowerRecord
}

// seedSchedule creates J-100 starting 2025-01-01 with one activity staffed
// on Friday 2025-01-03.
func seedSchedule(t *testing.T, app *App) seeded {
	t.Helper()
	ctx := context.Background()

	proj := testutil.NewTestProject("Harbor Pier", testutil.WithStartDate("2025-01-01"), testutil.WithJobNumber("J-100"))
	require.NoError(t, app.Projects.Create(ctx, proj))
	cat := testutil.NewTestCategory(proj.ID, "Piles")
	require.NoError(t, app.Categories.Create(ctx, cat))
	act := testutil.NewTestActivity(cat.ID, "Drive piles", testutil.WithCostCode("31-62"))
	require.NoError(t, app.Activities.Create(ctx, act))
	rec, err := app.Manpower.Set(ctx, act.ID, calendar.MustParse("2025-01-03"), 6)
	require.NoError(t, err)

	return seeded{project: proj, activity: act, record: rec}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func recordDate(t *testing.T, app *App, activityID string) calendar.Date {
	t.Helper()
	records, err := app.Manpower.ListByActivity(context.Background(), activityID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	return records[0].Date
}

// --- root ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "crewshift")
	assert.Contains(t, output, "project")
}

func TestRootCmd_AcceptsConfigFlag(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "--config", "/nonexistent.yaml", "calendar", "distance", "2025-01-01", "2025-01-02")
	require.NoError(t, err)
}

// --- project ---

func TestProjectAdd_AndList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "project", "add", "--name", "Depot", "--job", "j-2041", "--start", "2025-02-03", "--end", "2025-06-30")
	require.NoError(t, err)
	assert.Contains(t, out, "Created project Depot [J-2041]")

	out, err = executeCmd(t, app, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "J-2041")
	assert.Contains(t, out, "2025-02-03")
}

func TestProjectAdd_Invalid(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "project", "add", "--name", "Depot", "--start", "next week")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start date")

	_, err = executeCmd(t, app, "project", "add", "--name", "Depot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start")

	_, err = executeCmd(t, app, "project", "add", "--name", "Depot", "--start", "2025-02-03", "--end", "2025-01-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before start date")
}

func TestProjectList_Empty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No projects found.")
}

func TestProjectInspect_ShowsBreakdown(t *testing.T) {
	app := testApp(t)
	seedSchedule(t, app)

	out, err := executeCmd(t, app, "project", "inspect", "j-100")
	require.NoError(t, err)
	assert.Contains(t, out, "Harbor Pier")
	assert.Contains(t, out, "Piles")
	assert.Contains(t, out, "Drive piles")
	assert.Contains(t, out, "6 crew-days")
}

func TestProjectUpdate_KeepsUnchangedFields(t *testing.T) {
	app := testApp(t)
	s := seedSchedule(t, app)

	_, err := executeCmd(t, app, "project", "update", "J-100", "--status", "on_hold")
	require.NoError(t, err)

	p, err := app.Projects.GetByID(context.Background(), s.project.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectOnHold, p.Status)
	assert.Equal(t, "Harbor Pier", p.Name)
	assert.Equal(t, "J-100", p.JobNumber)
	assert.Equal(t, calendar.MustParse("2025-01-01"), p.StartDate)
}

func TestProjectShift_Yes(t *testing.T) {
	app := testApp(t)
	s := seedSchedule(t, app)

	out, err := executeCmd(t, app, "project", "shift", "J-100", "--to", "2025-01-08", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "START DATE SHIFTED")
	assert.Contains(t, out, "2025-01-10")

	assert.Equal(t, calendar.MustParse("2025-01-10"), recordDate(t, app, s.activity.ID))
	p, err := app.Projects.GetByID(context.Background(), s.project.ID)
	require.NoError(t, err)
	assert.Equal(t, calendar.MustParse("2025-01-08"), p.StartDate)
}

func TestProjectShift_DryRunWritesNothing(t *testing.T) {
	app := testApp(t)
	s := seedSchedule(t, app)

	out, err := executeCmd(t, app, "project", "shift", s.project.ID[:8], "--to", "2025-01-08", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "DRY RUN")
	assert.Equal(t, calendar.MustParse("2025-01-03"), recordDate(t, app, s.activity.ID))
}

func TestProjectShift_InteractiveDeclined(t *testing.T) {
	app := testApp(t)
	s := seedSchedule(t, app)

	var asked string
	app.IsInteractive = func() bool { return true }
	app.Confirm = func(title, _ string) (bool, error) {
		asked = title
		return false, nil
	}

	out, err := executeCmd(t, app, "project", "shift", "J-100", "--to", "2025-01-08")
	require.NoError(t, err)
	assert.Equal(t, "Shift start date to 2025-01-08?", asked)
	assert.Contains(t, out, "Shift cancelled.")
	assert.Equal(t, calendar.MustParse("2025-01-03"), recordDate(t, app, s.activity.ID))
}

func TestProjectShift_InteractiveConfirmed(t *testing.T) {
	app := testApp(t)
	s := seedSchedule(t, app)

	app.IsInteractive = func() bool { return true }
	app.Confirm = func(string, string) (bool, error) { return true, nil }

	_, err := executeCmd(t, app, "project", "shift", "J-100", "--to", "2025-01-08")
	require.NoError(t, err)
	assert.Equal(t, calendar.MustParse("2025-01-10"), recordDate(t, app, s.activity.ID))
}

func TestProjectShift_Errors(t *testing.T) {
	app := testApp(t)
	seedSchedule(t, app)

	_, err := executeCmd(t, app, "project", "shift", "NOPE-1", "--to", "2025-01-08", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project not found")

	_, err = executeCmd(t, app, "project", "shift", "J-100", "--to", "someday", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_INPUT")

	_, err = executeCmd(t, app, "project", "shift", "J-100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "to")
}

func TestProjectRemove_RequiresArchiveOrForce(t *testing.T) {
	app := testApp(t)
	s := seedSchedule(t, app)

	_, err := executeCmd(t, app, "project", "remove", "J-100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "J-100 is active; archive it first")

	out, err := executeCmd(t, app, "project", "remove", "J-100", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed project")

	records, err := app.Manpower.ListByProject(context.Background(), s.project.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

// --- project references ---

func TestResolveProjectID(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	a := testutil.NewTestProject("A", testutil.WithJobNumber("J-7"))
	a.ID = "aaaa1111-0000-0000-0000-000000000001"
	b := testutil.NewTestProject("B", testutil.WithJobNumber("J-8"))
	b.ID = "aaaa2222-0000-0000-0000-000000000002"
	require.NoError(t, app.Projects.Create(ctx, a))
	require.NoError(t, app.Projects.Create(ctx, b))

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{"job number", "j-7", a.ID, ""},
		{"full uuid", b.ID, b.ID, ""},
		{"unique prefix", "aaaa2", b.ID, ""},
		{"ambiguous prefix", "aaaa", "", "ambiguous"},
		{"unknown", "zzzz", "", "project not found"},
		{"empty", " ", "", "required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveProjectID(ctx, app, tc.input)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// --- category / activity ---

func TestCategoryAndActivityCommands(t *testing.T) {
	app := testApp(t)
	s := seedSchedule(t, app)

	out, err := executeCmd(t, app, "category", "add", "--project", "J-100", "--name", "Deck", "--sort", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Created category Deck")

	out, err = executeCmd(t, app, "category", "list", "--project", "J-100")
	require.NoError(t, err)
	assert.Contains(t, out, "Piles")
	assert.Contains(t, out, "Deck")

	out, err = executeCmd(t, app, "activity", "add", "--project", "J-100", "--category", "deck", "--name", "Pour deck", "--hours", "120")
	require.NoError(t, err)
	assert.Contains(t, out, "Created activity Pour deck")

	out, err = executeCmd(t, app, "activity", "list", "--project", "J-100", "--category", "Deck")
	require.NoError(t, err)
	assert.Contains(t, out, "Pour deck")
	assert.NotContains(t, out, "Drive piles")

	_, err = executeCmd(t, app, "activity", "add", "--project", "J-100", "--category", "Roofing", "--name", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category not found")

	_, err = executeCmd(t, app, "activity", "update", "drive piles", "--project", "J-100", "--notes", "pile rig on site", "--completed")
	require.NoError(t, err)
	act, err := app.Activities.GetByID(context.Background(), s.activity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Drive piles", act.Name)
	assert.Equal(t, "31-62", act.CostCode)
	assert.Equal(t, "pile rig on site", act.Notes)
	assert.True(t, act.Completed)
	assert.Nil(t, act.EstimatedHours)
}

// --- manpower ---

func TestManpowerSet_ThroughFillsWorkingDays(t *testing.T) {
	app := testApp(t)
	s := seedSchedule(t, app)

	out, err := executeCmd(t, app, "manpower", "set", "--project", "J-100", "--activity", "Drive piles",
		"--date", "2025-01-03", "--through", "2025-01-07", "--crew", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Set crew 8 on 3 day(s)")

	records, err := app.Manpower.ListByActivity(context.Background(), s.activity.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, s.record.ID, records[0].ID, "existing cell is updated in place")
	for _, r := range records {
		assert.Equal(t, 8, r.Headcount)
		assert.True(t, app.Calendar.IsWorkingDay(r.Date))
	}
}

func TestManpowerListAndRemove(t *testing.T) {
	app := testApp(t)
	s := seedSchedule(t, app)

	out, err := executeCmd(t, app, "manpower", "list", "--project", "J-100")
	require.NoError(t, err)
	assert.Contains(t, out, "Drive piles")
	assert.Contains(t, out, "2025-01-03")

	_, err = executeCmd(t, app, "manpower", "remove", s.record.ID)
	require.NoError(t, err)

	out, err = executeCmd(t, app, "manpower", "list", "--project", "J-100", "--activity", "Drive piles")
	require.NoError(t, err)
	assert.Contains(t, out, "No manpower records found.")

	_, err = executeCmd(t, app, "manpower", "remove", s.record.ID)
	assert.Error(t, err)
}

// --- calendar ---

func TestCalendarCommands(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "calendar", "distance", "2025-01-01", "2025-01-08")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	out, err = executeCmd(t, app, "calendar", "shift", "2025-01-03", "5")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-10\n", out)

	out, err = executeCmd(t, app, "calendar", "shift", "2025-01-10", "-5")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-03\n", out)

	out, err = executeCmd(t, app, "calendar", "check", "2025-01-04")
	require.NoError(t, err)
	assert.Contains(t, out, "weekend")

	out, err = executeCmd(t, app, "calendar", "holidays")
	require.NoError(t, err)
	assert.Contains(t, out, "only weekends are skipped")

	_, err = executeCmd(t, app, "calendar", "shift", "2025-01-03", "many")
	assert.Error(t, err)
}

func TestCalendarShift_BackwardOverHoliday(t *testing.T) {
	app := testApp(t)
	app.Calendar = calendar.New(calendar.DefaultHolidays())

	// Skips the 2025-01-01 holiday and the 2024-12-28/29 weekend.
	out, err := executeCmd(t, app, "calendar", "shift", "2025-01-02", "-4")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-26\n", out)

	out, err = executeCmd(t, app, "calendar", "shift", "2025-01-02", "+1")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-03\n", out)
}

func TestCalendarHolidays_FilterByYear(t *testing.T) {
	app := testApp(t)
	app.Calendar = calendar.New(calendar.DefaultHolidays())

	out, err := executeCmd(t, app, "calendar", "holidays", "--year", "2026")
	require.NoError(t, err)
	assert.Contains(t, out, "2026-")
	assert.NotContains(t, out, "2025-")
}

func TestCalendarSuggest(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "calendar", "suggest", "--year", "2025")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-07-04")
	assert.Contains(t, out, "2025-11-27")
	assert.Contains(t, out, "Independence Day")
}
