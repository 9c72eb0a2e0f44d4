package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestCrate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"Cargo.toml":     "[package]\nname = \"demo\"\nversion = \"0.1.0\"\n",
		"src/lib.rs":     "mod shapes;\n\npub fn enabled() -> bool {\n    true\n}\n",
		"src/shapes.rs":  "pub fn area(w: u32, h: u32) -> u32 {\n    w * h\n}\n",
		"tests/smoke.rs": "#[test]\nfn smoke() {}\n",
	}

	for rel, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
	}

	return dir
}

func runList(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.AddCommand(newListCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"list", "--log-file", filepath.Join(t.TempDir(), "rooze.log")}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestListCmd_Mutants(t *testing.T) {
	dir := writeTestCrate(t)

	output, err := runList(t, dir)
	require.NoError(t, err)

	assert.Equal(t, "src/lib.rs:3: replace enabled -> bool with true\n"+
		"src/lib.rs:3: replace enabled -> bool with false\n"+
		"src/shapes.rs:1: replace area -> u32 with Default::default()\n", output)
}

func TestListCmd_DirFlagAndFilters(t *testing.T) {
	dir := writeTestCrate(t)

	output, err := runList(t, "--dir", dir, "--exclude", "lib.rs", "--exclude-re", "Default")
	require.NoError(t, err)
	assert.Empty(t, output)

	output, err = runList(t, "--dir", dir, "--re", "with false")
	require.NoError(t, err)
	assert.Equal(t, "src/lib.rs:3: replace enabled -> bool with false\n", output)
}

func TestListCmd_Files(t *testing.T) {
	dir := writeTestCrate(t)

	output, err := runList(t, dir, "--files", "--format", "json")
	require.NoError(t, err)

	var files []map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &files))
	require.Len(t, files, 2)
	assert.Equal(t, "src/lib.rs", files[0]["path"])
	assert.Equal(t, "src/shapes.rs", files[1]["path"])
	assert.InDelta(t, 2, files[0]["mutants"], 0)
}

func TestListCmd_DiffAndErrorValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\nname = \"demo\"\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.rs"),
		[]byte("fn run() -> Result<(), String> {\n    Ok(())\n}\n"), 0o600))

	output, err := runList(t, dir, "--diff", "--error", `"bad".to_owned()`)
	require.NoError(t, err)

	assert.Contains(t, output, "src/main.rs:1: replace run -> Result<(), String> with Ok(Default::default())")
	assert.Contains(t, output, `src/main.rs:1: replace run -> Result<(), String> with Err("bad".to_owned())`)
	assert.Contains(t, output, "--- a/src/main.rs")
	assert.Contains(t, output, `+Err("bad".to_owned()) /* ~ changed by rooze ~ */`)
}

func TestListCmd_Errors(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		_, err := runList(t, writeTestCrate(t), "--format", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown output format")
	})

	t.Run("not a crate", func(t *testing.T) {
		_, err := runList(t, t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cargo.toml")
	})

	t.Run("too many args", func(t *testing.T) {
		_, err := runList(t, "a", "b")
		require.Error(t, err)
	})
}

func TestNewListCmd_Flags(t *testing.T) {
	cmd := newListCmd()

	for _, name := range []string{"file", "exclude", "re", "exclude-re", "error", "format", "parallel", "files", "diff"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
