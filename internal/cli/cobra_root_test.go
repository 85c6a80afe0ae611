package cli

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"duke/internal/config"
	"duke/internal/repository/sqlite"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runDuke runs the command tree once against a database in dir.
func runDuke(t *testing.T, dir string, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("DUKE_DATABASE_DIR", dir)

	loader := config.NewLoader().WithEnvFile("").WithConfigDirs(dir)
	root := NewRootCommand(loader, config.CreateRepository)

	var out, errOut bytes.Buffer
	root.SetIO(strings.NewReader(stdin), &out, &errOut)
	if args == nil {
		// a nil slice makes cobra fall back to os.Args
		args = []string{}
	}
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_Interactive(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runDuke(t, dir, "todo read book\nlist\nbye\n")
	require.NoError(t, err)

	assert.Equal(t,
		"Hello! I'm Duke\nWhat can I do for you?\n"+
			"Got it. I've added this task:\n  [T][ ] read book\nNow you have 1 tasks in the list.\n"+
			"Here are the tasks in your list\n1.[T][ ] read book\n"+
			"Bye. Hope to see you again soon!\n",
		out)

	_, err = os.Stat(filepath.Join(dir, "duke.db"))
	assert.NoError(t, err)
}

func TestExec_PersistsBetweenRuns(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runDuke(t, dir, "", "exec", "deadline", "Submit", "report", "/by", "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "Got it. I've added this task:\n  [D][ ] Submit report (by: Mar 15 2024)\nNow you have 1 tasks in the list.\n", out)

	out, _, err = runDuke(t, dir, "", "exec", "mark", "1")
	require.NoError(t, err)
	assert.Equal(t, "Nice! I've marked this task as done:\n[D][X] Submit report (by: Mar 15 2024)\n", out)

	out, _, err = runDuke(t, dir, "", "exec", "list")
	require.NoError(t, err)
	assert.Equal(t, "Here are the tasks in your list\n1.[D][X] Submit report (by: Mar 15 2024)\n", out)
}

func TestExec_RejectedCommand(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runDuke(t, dir, "", "exec", "delete", "5")
	assert.ErrorIs(t, err, ErrCommandFailed)
	assert.Equal(t, "OOPS!!! Invalid index, choose a valid item index!\n", out)
}

func TestExec_FindNumberingFlag(t *testing.T) {
	dir := t.TempDir()

	for _, line := range []string{"todo buy milk", "todo read book"} {
		_, _, err := runDuke(t, dir, "", append([]string{"exec"}, strings.Fields(line)...)...)
		require.NoError(t, err)
	}

	out, _, err := runDuke(t, dir, "", "exec", "find", "book")
	require.NoError(t, err)
	assert.Equal(t, "Here are the matching tasks in your list:\n1.[T][ ] read book\n", out)

	out, _, err = runDuke(t, dir, "", "--find-numbering=position", "exec", "find", "book")
	require.NoError(t, err)
	assert.Equal(t, "Here are the matching tasks in your list:\n2.[T][ ] read book\n", out)
}

func TestExportImport(t *testing.T) {
	source := t.TempDir()
	for _, args := range [][]string{
		{"exec", "todo", "read", "book"},
		{"exec", "event", "party", "/at", "2024-12-31"},
		{"exec", "mark", "2"},
	} {
		_, _, err := runDuke(t, source, "", args...)
		require.NoError(t, err)
	}

	exported, _, err := runDuke(t, source, "", "export")
	require.NoError(t, err)
	assert.Equal(t, "[T][ ] read book\n[E][X] party (at: Dec 31 2024)\n", exported)

	file := filepath.Join(t.TempDir(), "tasks.txt")
	require.NoError(t, os.WriteFile(file, []byte(exported), 0644))

	target := t.TempDir()
	out, _, err := runDuke(t, target, "", "import", file)
	require.NoError(t, err)
	assert.Equal(t, "Imported 2 tasks. Now you have 2 tasks in the list.\n", out)

	again, _, err := runDuke(t, target, "", "export")
	require.NoError(t, err)
	assert.Equal(t, exported, again)
}

func TestImport_BadFile(t *testing.T) {
	dir := t.TempDir()

	_, _, err := runDuke(t, dir, "", "import", filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	file := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(file, []byte("[T][ ] ok\n[Q][ ] what\n"), 0644))

	_, _, err = runDuke(t, dir, "", "import", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to import tasks: line 2:")

	exported, _, err := runDuke(t, dir, "", "export")
	require.NoError(t, err)
	assert.Empty(t, exported)
}

func TestExport_LoadFailure(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runDuke(t, dir, "", "exec", "todo", "a")
	require.NoError(t, err)

	db, err := sql.Open("sqlite", filepath.Join(dir, "duke.db"))
	require.NoError(t, err)
	_, err = db.Exec(`DROP TABLE tasks`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, _, err = runDuke(t, dir, "", "export")
	require.Error(t, err)
	assert.Equal(t, "failed to export tasks: Failed to load tasks. Please try again.", err.Error())
}

func TestRoot_InvalidFlagValue(t *testing.T) {
	_, _, err := runDuke(t, t.TempDir(), "", "--find-numbering=sideways", "exec", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRoot_VerboseLogsToErrOut(t *testing.T) {
	t.Setenv("DUKE_DEBUG", "")
	out, errOut, err := runDuke(t, t.TempDir(), "", "--verbose", "exec", "todo", "a")
	require.NoError(t, err)

	assert.NotContains(t, out, "level=")
	assert.Contains(t, errOut, "level=debug")
	assert.Contains(t, errOut, "session=")
}

func TestRoot_RepositoryOpenFailure(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DUKE_DATABASE_DIR", dir)

	failing := func(cfg *config.Config, logger logrus.FieldLogger) (sqlite.Repository, error) {
		return nil, assert.AnError
	}
	root := NewRootCommand(config.NewLoader().WithEnvFile("").WithConfigDirs(dir), failing)

	var out, errOut bytes.Buffer
	root.SetIO(strings.NewReader("todo a\nbye\n"), &out, &errOut)
	root.SetArgs([]string{})

	err := root.Execute()
	assert.ErrorIs(t, err, ErrCommandFailed)
	assert.Contains(t, out.String(), "OOPS!!! Failed to load tasks because file cannot be opened!")
	assert.NotContains(t, out.String(), "Got it.")
}
