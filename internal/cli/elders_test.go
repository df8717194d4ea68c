package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestEldersCommands(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("IDOSOS_DB_PATH", filepath.Join(dir, "data", "idosos.db"))
	t.Setenv("IDOSOS_LOG_LEVEL", "error")

	out, err := runCLI(t, "elders", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No elders registered")

	out, err = runCLI(t, "elders", "add",
		"--name", "Maria",
		"--age", "82",
		"--guardian-name", "Ana",
		"--guardian-phone", "11999990000",
		"--postal-code", "01001000",
		"--city", "Sao Paulo",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Elder registered with id 1")

	out, err = runCLI(t, "elders", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Maria")
	assert.Contains(t, out, "Sao Paulo")

	_, err = runCLI(t, "elders", "delete", "99", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "elder not found")

	out, err = runCLI(t, "elders", "delete", "1", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Elder 1 deleted successfully")

	out, err = runCLI(t, "elders", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No elders registered")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "idosos dev\n", out)
}

func TestFlagValue(t *testing.T) {
	assert.Nil(t, flagValue(false, "x"))

	v := flagValue(true, 0)
	require.NotNil(t, v)
	assert.Equal(t, 0, *v)
}
