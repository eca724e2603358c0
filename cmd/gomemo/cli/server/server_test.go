package server

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	config "github.com/mwantia/gomemo/internal/config/server"
)

func TestConfigGenerate(t *testing.T) {
	dir := t.TempDir()
	out := &bytes.Buffer{}

	cmd := NewConfigCommand()
	cmd.SetOut(out)
	cmd.SetArgs([]string{"generate", "--output", dir})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "gomemo.yaml")

	data, err := os.ReadFile(filepath.Join(dir, "gomemo.yaml"))
	require.NoError(t, err)

	var cfg config.BaseServerConfig
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, config.GetServerDefault(), cfg)

	out.Reset()
	cmd = NewConfigCommand()
	cmd.SetOut(out)
	cmd.SetArgs([]string{"generate", "--output", dir})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Skipping")
}

func TestDatabaseCommands(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("metadata.sqlite.path", filepath.Join(t.TempDir(), "gomemo.db"))

	run := func(args ...string) string {
		out := &bytes.Buffer{}
		cmd := NewDatabaseCommand()
		cmd.SetOut(out)
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute())
		return out.String()
	}

	assert.Contains(t, run("status"), "v1  pending")
	assert.Contains(t, run("migrate"), "up to date")

	status := run("status")
	assert.Contains(t, status, "v1  applied")
	assert.Contains(t, status, "v2  applied")

	assert.Contains(t, run("rollback"), "Rolled back")
	assert.Contains(t, run("status"), "v2  pending")
}
