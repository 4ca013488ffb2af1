package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileConfig(t *testing.T) {
	t.Run("missing file yields zero config", func(t *testing.T) {
		t.Setenv("SHELP_HOME", t.TempDir())

		fc, err := LoadFileConfig()
		require.NoError(t, err)
		assert.Equal(t, FileConfig{}, fc)
	})

	t.Run("reads toml values", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("SHELP_HOME", dir)
		content := `
model = "gpt-4o"
depth = 2
environment = ["PATH", "HOME"]
programs = ["rg", "fd"]
write_stdout = true
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

		fc, err := LoadFileConfig()
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o", fc.Model)
		assert.Equal(t, 2, fc.Depth)
		assert.Equal(t, []string{"PATH", "HOME"}, fc.Environment)
		assert.Equal(t, []string{"rg", "fd"}, fc.Programs)
		assert.True(t, fc.WriteStdout)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("SHELP_HOME", dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("model = ["), 0o600))

		_, err := LoadFileConfig()
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := Config{Task: TaskAsk, Model: DefaultModel}
	assert.NoError(t, valid.Validate())

	noModel := Config{Task: TaskAsk, Model: "  "}
	assert.Error(t, noModel.Validate())

	badDepth := Config{Task: TaskAsk, Model: DefaultModel, TreeDepth: -1}
	assert.Error(t, badDepth.Validate())

	explainWithPrograms := Config{Task: TaskExplain, Model: DefaultModel, Programs: []string{"ls"}}
	assert.Error(t, explainWithPrograms.Validate())
}
