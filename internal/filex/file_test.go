package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureDir_CreatesDirectoryInCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureDir("downloads")
	require.NoError(t, err)

	want := filepath.Join(tmp, "downloads")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureDir_AbsoluteAndIdempotent(t *testing.T) {
	want := filepath.Join(t.TempDir(), "a", "b")

	first, err := EnsureDir(want)
	require.NoError(t, err)
	second, err := EnsureDir(want)
	require.NoError(t, err)

	require.Equal(t, want, first)
	require.Equal(t, first, second)
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	require.NoError(t, os.WriteFile("downloads", []byte("x"), 0o600))

	_, err := EnsureDir("downloads")
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestSafeName(t *testing.T) {
	tests := map[string]string{
		"report.pdf":          "report.pdf",
		"../../etc/passwd":    "passwd",
		`..\..\windows\x.ini`: "x.ini",
		"":                    "fallback",
		"..":                  "fallback",
		"/":                   "fallback",
		"dir/":                "dir",
	}
	for in, want := range tests {
		assert.Equal(t, want, SafeName(in, "fallback"), "input %q", in)
	}
}

func TestWriteNew_AddsSuffixInsteadOfOverwriting(t *testing.T) {
	dir := t.TempDir()

	p1, err := WriteNew(dir, "note.txt", []byte("one"))
	require.NoError(t, err)
	p2, err := WriteNew(dir, "note.txt", []byte("two"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "note.txt"), p1)
	assert.Equal(t, filepath.Join(dir, "note-1.txt"), p2)

	b, err := os.ReadFile(p1)
	require.NoError(t, err)
	assert.Equal(t, "one", string(b))
	b, err = os.ReadFile(p2)
	require.NoError(t, err)
	assert.Equal(t, "two", string(b))
}
