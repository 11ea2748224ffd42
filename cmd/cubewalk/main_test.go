package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubewalk/config"
	"github.com/katalvlaran/cubewalk/cube"
	"github.com/katalvlaran/cubewalk/input"
)

const demoOutput = `flat: row 6, column 8, facing right
flat: password 1000 * 6 + 4 * 8 + 0 = 6032
cube: row 5, column 7, facing up (face Left, local row 0, column 2)
cube: password 1000 * 5 + 4 * 7 + 3 = 5031
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

//--------------------------------------------------------------------------------
// Built-in and file inputs
//--------------------------------------------------------------------------------

func TestRoot_Demo(t *testing.T) {
	out, logs, err := execute(t, "--config", config.DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, demoOutput, out)
	assert.Contains(t, logs, "face_size=4")
}

func TestRoot_InputFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(name, []byte(input.DemoText()), 0o644))

	out, logs, err := execute(t, "--input", name, "--log-format", "json")
	require.NoError(t, err)
	assert.Equal(t, demoOutput, out)
	assert.Contains(t, logs, `"file":`)
}

func TestRoot_RealFromConfig(t *testing.T) {
	dir := t.TempDir()
	notes := filepath.Join(dir, "real.txt")
	require.NoError(t, os.WriteFile(notes, []byte(input.DemoText()), 0o644))
	cfgPath := filepath.Join(dir, "cubewalk.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("inputs:\n  real: "+notes+"\n"), 0o644))

	out, _, err := execute(t, "real", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, demoOutput, out)
}

//--------------------------------------------------------------------------------
// Failures
//--------------------------------------------------------------------------------

func TestRoot_Errors(t *testing.T) {
	t.Run("UnknownArg", func(t *testing.T) {
		_, _, err := execute(t, "other")
		assert.Error(t, err)
	})
	t.Run("BadLogLevel", func(t *testing.T) {
		_, _, err := execute(t, "--log-level", "loud")
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
	t.Run("MissingInput", func(t *testing.T) {
		_, _, err := execute(t, "--input", filepath.Join(t.TempDir(), "absent.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("NotACube", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "flat.txt")
		require.NoError(t, os.WriteFile(name, []byte("....\n....\n\n4R2\n"), 0o644))
		out, _, err := execute(t, "--input", name)
		assert.ErrorIs(t, err, cube.ErrNotCubeNet)
		assert.Empty(t, out)
	})
}
