package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"work-tracker/internal/config"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// useClock replaces timeNow for the duration of the test
func useClock(t *testing.T) *testClock {
	t.Helper()
	clock := &testClock{now: time.Date(2025, 3, 7, 9, 0, 0, 0, time.Local)}
	prev := timeNow
	timeNow = clock.Now
	t.Cleanup(func() { timeNow = prev })
	return clock
}

// runWT runs the root command against the storage directory dir with project demo
func runWT(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(config.NewLoader().WithConfigFile(filepath.Join(dir, "no-config.yaml")))

	var out bytes.Buffer
	cmd := root.Command()
	cmd.SetArgs(append([]string{"--dir", dir, "--project", "demo"}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := root.Execute()
	return out.String(), err
}

// testApp returns an App over a fresh storage directory
func testApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Storage.Dir = t.TempDir()
	cfg.Project.Name = "demo"

	var out bytes.Buffer
	return NewApp(cfg, strings.NewReader(""), &out), &out
}

const seededRawLog = `[
  {"date": "09/03/2025", "duration": "00:30:00", "startTime": "14:00:00", "endTime": "14:30:00", "project": "demo", "totalDurationMs": 1800000},
  {"date": "07/03/2025", "duration": "01:00:00", "startTime": "09:00:00", "endTime": "10:00:00", "project": "demo", "totalDurationMs": 3600000}
]`

func seedRawLog(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "work-logs.json"), []byte(seededRawLog), 0644))
}
