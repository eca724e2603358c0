package client

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDatabase(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("metadata.sqlite.path", filepath.Join(t.TempDir(), "gomemo.db"))
	viper.Set("log.level", "error")
}

func run(t *testing.T, newCmd func() *cobra.Command, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := newCmd()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShortcutCommands(t *testing.T) {
	setupDatabase(t)

	out, err := run(t, NewShortcutCommand, "create", "work", "--clause", "TAG:CONTAIN:work")
	require.NoError(t, err)
	assert.Contains(t, out, "Created shortcut 'work'")

	_, err = run(t, NewShortcutCommand, "create", "  ", "--clause", "TAG:CONTAIN:work")
	assert.Error(t, err)

	out, err = run(t, NewShortcutCommand, "ls")
	require.NoError(t, err)
	fields := strings.Fields(out)
	require.Len(t, fields, 4)
	id := fields[0]

	out, err = run(t, NewShortcutCommand, "edit", id, "--title", "work or text", "--clause", "OR:TEXT:CONTAIN:meeting")
	require.NoError(t, err)
	assert.Contains(t, out, "work or text")

	out, err = run(t, NewShortcutCommand, "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "NORMAL")
	assert.Contains(t, out, "meeting")

	out, err = run(t, NewShortcutCommand, "pin", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Pinned")

	out, err = run(t, NewShortcutCommand, "ls")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "*"))

	_, err = run(t, NewShortcutCommand, "rm", id)
	require.NoError(t, err)

	out, err = run(t, NewShortcutCommand, "ls")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMemoCommands(t *testing.T) {
	setupDatabase(t)

	_, err := run(t, NewMemoCommand, "add", "standup #work", "--at", "2024-05-01T09:00")
	require.NoError(t, err)
	_, err = run(t, NewMemoCommand, "add", "holiday plans", "--visibility", "public", "--at", "2024-06-01T09:00")
	require.NoError(t, err)
	_, err = run(t, NewMemoCommand, "add", "bad", "--visibility", "secret")
	assert.Error(t, err)

	out, err := run(t, NewTagCommand, "ls")
	require.NoError(t, err)
	assert.Equal(t, "work\n", out)

	out, err = run(t, NewMemoCommand, "ls", "--tag", "work")
	require.NoError(t, err)
	assert.Contains(t, out, "Filter: tag")
	assert.Contains(t, out, "standup")
	assert.NotContains(t, out, "holiday")

	out, err = run(t, NewMemoCommand, "ls", "--from", "2024-05-15T00:00", "--to", "2024-07-01T00:00")
	require.NoError(t, err)
	assert.Contains(t, out, "holiday")
	assert.NotContains(t, out, "standup")

	_, err = run(t, NewMemoCommand, "ls", "--from", "2024-07-01T00:00", "--to", "2024-05-01T00:00")
	assert.Error(t, err)

	_, err = run(t, NewMemoCommand, "ls", "--shortcut", "missing")
	assert.Error(t, err)
}

func TestTagCommands(t *testing.T) {
	setupDatabase(t)

	_, err := run(t, NewTagCommand, "add", "work", "books")
	require.NoError(t, err)
	_, err = run(t, NewTagCommand, "rm", "work")
	require.NoError(t, err)

	out, err := run(t, NewTagCommand, "ls")
	require.NoError(t, err)
	assert.Equal(t, "books\n", out)
}
