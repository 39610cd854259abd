package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"work-tracker/internal/config"
	"work-tracker/internal/store"
)

func TestRootCommand_AppliesFlags(t *testing.T) {
	dir := t.TempDir()
	root := NewRootCommand(config.NewLoader().WithConfigFile(filepath.Join(dir, "no-config.yaml")))
	cmd := root.Command()
	cmd.SetArgs([]string{
		"--dir", dir,
		"--project", "acme",
		"--backend", "SQLite",
		"--table-format", "csv",
		"--dir-permissions", "700",
		"--refresh-interval", "250ms",
		"--save-on-quit=false",
		"files",
	})
	cmd.SetOut(io.Discard)

	require.NoError(t, root.Execute())

	cfg := root.Config()
	require.NotNil(t, cfg)
	assert.Equal(t, dir, cfg.Storage.Dir)
	assert.Equal(t, "acme", cfg.Project.Name)
	assert.Equal(t, config.BackendSQLite, cfg.Storage.RawLogBackend)
	assert.Equal(t, "csv", cfg.Storage.TableFormat)
	assert.Equal(t, uint32(0700), cfg.Storage.DirPermissions)
	assert.Equal(t, "250ms", cfg.Display.RefreshInterval.String())
	assert.False(t, cfg.Application.SaveOnQuit)
}

func TestRootCommand_RejectsInvalidFlags(t *testing.T) {
	dir := t.TempDir()

	_, err := runWT(t, dir, "", "--dir-permissions", "9x", "show")
	assert.Error(t, err)

	_, err = runWT(t, dir, "", "--backend", "mongo", "show")
	assert.Error(t, err)

	_, err = runWT(t, dir, "", "--refresh-interval", "1ms", "show")
	assert.Error(t, err)
}

func TestTrack_LineMode(t *testing.T) {
	useClock(t)
	dir := t.TempDir()

	out, err := runWT(t, dir, "p\np\nstatus\nhello\ns\nq\n", "track")
	require.NoError(t, err)

	assert.Contains(t, out, "⏱ 00:00:00 (demo)")
	assert.Contains(t, out, "Paused")
	assert.Contains(t, out, "Resumed")
	assert.Contains(t, out, `unknown command "hello"`)
	assert.Contains(t, out, "Saved 00:00:00 (09:00:00 - 09:00:00) on 07/03/2025")

	records, err := store.NewJSONRawLog(filepath.Join(dir, "work-logs.json"), 0).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2, "one explicit save and one on quit")
	assert.FileExists(t, filepath.Join(dir, "demo.xlsx"))
}

func TestTrack_EndOfInputQuits(t *testing.T) {
	useClock(t)
	dir := t.TempDir()

	_, err := runWT(t, dir, "", "track")
	require.NoError(t, err)

	records, err := store.NewJSONRawLog(filepath.Join(dir, "work-logs.json"), 0).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestTrack_WithoutSaveOnQuit(t *testing.T) {
	useClock(t)
	dir := t.TempDir()

	_, err := runWT(t, dir, "q\n", "--save-on-quit=false", "track")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "work-logs.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
	assert.NoFileExists(t, filepath.Join(dir, "demo.xlsx"))
}

func TestShow(t *testing.T) {
	useClock(t)
	dir := t.TempDir()

	out, err := runWT(t, dir, "", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No work sessions recorded for demo yet.")

	seedRawLog(t, dir)
	_, err = runWT(t, dir, "", "rebuild")
	require.NoError(t, err)

	out, err = runWT(t, dir, "", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "demo Time Tracker - Work Sessions Log")
	assert.Contains(t, out, "Total Duration")
	assert.Contains(t, out, "07/03/2025")
	assert.Contains(t, out, "09:00:00 - 10:00:00")
	assert.Contains(t, out, "Total: 01:30:00 over 2 day(s)")
}

func TestShow_DateRange(t *testing.T) {
	useClock(t)
	dir := t.TempDir()
	seedRawLog(t, dir)

	out, err := runWT(t, dir, "", "show", "--from", "08/03/2025")
	require.NoError(t, err)
	assert.Contains(t, out, "14:00:00 - 14:30:00")
	assert.NotContains(t, out, "07/03/2025")
	assert.Contains(t, out, "Total: 00:30:00 over 1 day(s)")
	assert.NoFileExists(t, filepath.Join(dir, "demo.xlsx"), "a ranged show does not write the table")

	out, err = runWT(t, dir, "", "show", "--from", "07/03/2025", "--to", "07/03/2025")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 01:00:00 over 1 day(s)")

	out, err = runWT(t, dir, "", "show", "--from", "01/04/2025")
	require.NoError(t, err)
	assert.Contains(t, out, "No work sessions recorded for demo since 01/04/2025.")

	_, err = runWT(t, dir, "", "show", "--from", "yesterday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input for from")

	_, err = runWT(t, dir, "", "show", "--from", "09/03/2025", "--to", "07/03/2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be before --from")
}

func TestRebuild(t *testing.T) {
	useClock(t)
	dir := t.TempDir()
	seedRawLog(t, dir)

	out, err := runWT(t, dir, "", "--table-format", "json", "--verbose", "rebuild")
	require.NoError(t, err)
	assert.Contains(t, out, "Rebuilt "+filepath.Join(dir, "demo.json"))
	assert.Contains(t, out, "2 day(s)")
	assert.Contains(t, out, "14:00:00 - 14:30:00")

	records, err := store.JSONFormat{}.Read(filepath.Join(dir, "demo.json"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "07/03/2025", records[0].Date, "rebuilt table is sorted by date")
	assert.Equal(t, "09/03/2025", records[1].Date)
}

func TestExport(t *testing.T) {
	useClock(t)
	dir := t.TempDir()
	seedRawLog(t, dir)
	_, err := runWT(t, dir, "", "rebuild")
	require.NoError(t, err)

	for _, format := range []string{"csv", "yaml", "pdf"} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "report."+format)
			out, err := runWT(t, dir, "", "export", "--format", format, "--out", path)
			require.NoError(t, err)
			assert.Contains(t, out, "Exported")
			assert.FileExists(t, path)
		})
	}

	records, err := store.CSVFormat{}.Read(exportCSV(t, dir))
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = runWT(t, dir, "", "export", "--format", "docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}

func exportCSV(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "check.csv")
	_, err := runWT(t, dir, "", "export", "-f", "csv", "-o", path)
	require.NoError(t, err)
	return path
}

func TestImport(t *testing.T) {
	useClock(t)
	dir := t.TempDir()

	_, err := runWT(t, dir, "", "import")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "raw log not found")

	seedRawLog(t, dir)
	out, err := runWT(t, dir, "", "import")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 session(s)")
	assert.Contains(t, out, filepath.Join(dir, "work-logs.db"))
	assert.Contains(t, out, "WT_RAW_LOG_BACKEND=sqlite")

	_, err = runWT(t, dir, "", "import")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already holds 2 sessions")

	// The imported log drives the table when sqlite is the backend
	_, err = runWT(t, dir, "", "--backend", "sqlite", "--table-format", "csv", "rebuild")
	require.NoError(t, err)
	records, err := store.CSVFormat{}.Read(filepath.Join(dir, "demo.csv"))
	require.NoError(t, err)
	assert.Len(t, records, 2)

	out, err = runWT(t, dir, "", "--backend", "sqlite", "show", "--to", "08/03/2025")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 01:00:00 over 1 day(s)")
}

func TestFiles(t *testing.T) {
	useClock(t)
	dir := t.TempDir()

	out, err := runWT(t, dir, "", "files")
	require.NoError(t, err)
	assert.Contains(t, out, "Storage directory: "+dir)
	assert.Contains(t, out, filepath.Join(dir, "work-logs.json")+" (not created yet)")
	assert.Contains(t, out, filepath.Join(dir, "demo.xlsx")+" (not created yet)")
	assert.NoFileExists(t, filepath.Join(dir, "work-logs.json"), "files does not create anything")

	seedRawLog(t, dir)
	out, err = runWT(t, dir, "", "files")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "work-logs.json")+" (")
	assert.Contains(t, out, " B, modified ")
}
