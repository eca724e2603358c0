package agent

import (
	"context"
	"path/filepath"
	"testing"

	config "github.com/mwantia/gomemo/internal/config/server"
	"github.com/mwantia/gomemo/pkg/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) *config.BaseServerConfig {
	t.Helper()

	cfg := config.GetServerDefault()
	cfg.Log.Level = "error"
	cfg.Metadata.SQLite.Path = filepath.Join(t.TempDir(), "agent.db")
	return &cfg
}

func TestOpenAndClose(t *testing.T) {
	ctx := context.Background()
	agent := NewAgent(newTestConfig(t))

	require.NoError(t, agent.Open(ctx))
	require.NotNil(t, agent.Session())
	require.NotNil(t, agent.Store())
	assert.Equal(t, int32(1), agent.Session().UserID())
	assert.NoError(t, agent.Store().Health(ctx))

	require.NoError(t, agent.Open(ctx), "opening twice is a no-op")
	require.NoError(t, agent.Close(ctx))
	assert.Nil(t, agent.Session())
}

func TestEditorOptions(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Filter.DefaultDimension = "text"

	opts, err := NewAgent(cfg).EditorOptions()
	require.NoError(t, err)

	e := filter.NewEditor(opts...)
	require.NoError(t, e.Append())
	assert.Equal(t, filter.DimensionText, e.Clauses[0].Dimension)

	cfg.Filter.DefaultDimension = "colour"
	_, err = NewAgent(cfg).EditorOptions()
	assert.Error(t, err)
}

func TestOpenFailureLeavesAgentClosed(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig(t)
	good := cfg.Metadata.SQLite.Path
	cfg.Metadata.SQLite.Path = t.TempDir()

	agent := NewAgent(cfg)
	require.Error(t, agent.Open(ctx))
	assert.Nil(t, agent.Store())
	assert.Nil(t, agent.Session())

	cfg.Metadata.SQLite.Path = good
	require.NoError(t, agent.Open(ctx))
	require.NotNil(t, agent.Session())
	require.NoError(t, agent.Close(ctx))
}

func TestServeReturnsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	agent := NewAgent(newTestConfig(t))
	require.NoError(t, agent.Serve(ctx))
	assert.Nil(t, agent.Store())
	assert.Nil(t, agent.Session())
}
