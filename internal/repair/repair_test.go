package repair

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"checktidy/internal/config"
	"checktidy/internal/sources"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func defaultOptions(out *bytes.Buffer) Options {
	return Options{
		Extension:    ".java",
		BackupSuffix: ".bak",
		Out:          out,
	}
}

func TestEscapedNewlines(t *testing.T) {
	root := t.TempDir()
	broken := filepath.Join(root, "com", "example", "BrokenTest.java")
	clean := filepath.Join(root, "com", "example", "CleanTest.java")
	other := filepath.Join(root, "notes.txt")

	brokenContent := `class BrokenTest {\r\n  void a() {}\n}`
	cleanContent := "class CleanTest {\n}\n"
	writeFile(t, broken, brokenContent)
	writeFile(t, clean, cleanContent)
	writeFile(t, other, `literal \n in text`)

	var out bytes.Buffer
	summary, err := EscapedNewlines(root, defaultOptions(&out))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Scanned)
	assert.Equal(t, []string{broken}, summary.Fixed)
	assert.Empty(t, summary.Failed)

	assert.Equal(t, "class BrokenTest {\r\n  void a() {}\r\n}", readFile(t, broken))
	assert.Equal(t, brokenContent, readFile(t, broken+".bak"))

	assert.Equal(t, cleanContent, readFile(t, clean))
	_, err = os.Stat(clean + ".bak")
	assert.True(t, os.IsNotExist(err), "unchanged file must not get a backup")

	assert.Equal(t, `literal \n in text`, readFile(t, other))
	assert.Equal(t, "Fixed "+broken+"\n", out.String())
}

func TestEscapedNewlinesSecondRunIsNoop(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "ATest.java")
	writeFile(t, path, `a;\nb;`)

	var out bytes.Buffer
	first, err := EscapedNewlines(root, defaultOptions(&out))
	require.NoError(t, err)
	require.Len(t, first.Fixed, 1)

	second, err := EscapedNewlines(root, defaultOptions(&out))
	require.NoError(t, err)
	assert.Empty(t, second.Fixed)
	assert.Equal(t, `a;\nb;`, readFile(t, path+".bak"))
}

func TestEscapedNewlinesNormalizeEOL(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "ATest.java")
	writeFile(t, path, "class A {\n  String s = \"x\";\\n}\n")

	var out bytes.Buffer
	opts := defaultOptions(&out)
	opts.NormalizeEOL = true

	summary, err := EscapedNewlines(root, opts)
	require.NoError(t, err)
	require.Len(t, summary.Fixed, 1)

	got := readFile(t, path)
	assert.Equal(t, "class A {\r\n  String s = \"x\";\r\n}\r\n", got)
	assert.False(t, strings.Contains(strings.ReplaceAll(got, "\r\n", ""), "\n"))
}

func TestEscapedNewlinesMissingRoot(t *testing.T) {
	_, err := EscapedNewlines(filepath.Join(t.TempDir(), "missing"), defaultOptions(&bytes.Buffer{}))
	assert.True(t, errors.Is(err, sources.ErrRootNotFound))
}

func TestEscapedNewlinesIgnore(t *testing.T) {
	root := t.TempDir()
	skipped := filepath.Join(root, "generated", "GenTest.java")
	writeFile(t, skipped, `a;\nb;`)

	opts := defaultOptions(&bytes.Buffer{})
	opts.Ignore = func(rel string, info fs.FileInfo) bool {
		return strings.HasPrefix(rel, "generated/")
	}

	summary, err := EscapedNewlines(root, opts)
	require.NoError(t, err)
	assert.Zero(t, summary.Scanned)
	assert.Equal(t, `a;\nb;`, readFile(t, skipped))
}

func TestEscapedNewlinesRootUnderIgnoredDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "build", "repo", "src")
	path := filepath.Join(root, "ATest.java")
	writeFile(t, path, `a;\nb;`)

	cfg := config.NewConfig()
	cfg.IgnoredPaths = []string{"build/", "target/"}

	opts := defaultOptions(&bytes.Buffer{})
	opts.Ignore = cfg.ShouldIgnoreSource

	summary, err := EscapedNewlines(root, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Scanned)
	assert.Equal(t, []string{path}, summary.Fixed)
	assert.Equal(t, "a;\r\nb;", readFile(t, path))
}

func TestEscapedNewlinesContinuesAfterFailure(t *testing.T) {
	root := t.TempDir()
	blocked := filepath.Join(root, "ATest.java")
	other := filepath.Join(root, "BTest.java")
	writeFile(t, blocked, `a;\nb;`)
	writeFile(t, other, `c;\nd;`)
	require.NoError(t, os.Mkdir(blocked+".bak", 0755))

	var out bytes.Buffer
	summary, err := EscapedNewlines(root, defaultOptions(&out))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Scanned)
	assert.Equal(t, []string{other}, summary.Fixed)
	require.Contains(t, summary.Failed, blocked)
	assert.Contains(t, summary.Failed[blocked].Error(), "failed to write backup")

	assert.Equal(t, `a;\nb;`, readFile(t, blocked))
	assert.Equal(t, "c;\r\nd;", readFile(t, other))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), ".tmp-", "temp file left behind")
	}
}

func TestEscapedNewlinesProgressWriter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ATest.java"), `a;\nb;`)

	var progress bytes.Buffer
	opts := defaultOptions(&bytes.Buffer{})
	opts.Progress = true
	opts.ProgressOut = &progress

	_, err := EscapedNewlines(root, opts)
	require.NoError(t, err)
	assert.NotEmpty(t, progress.String())
}

func TestByteOrderMarks(t *testing.T) {
	root := t.TempDir()
	bom := filepath.Join(root, "main", "App.java")
	ok := filepath.Join(root, "main", "Ok.java")
	writeFile(t, bom, "\ufeffackage com.example;\n\nclass App {}\n")
	writeFile(t, ok, "package com.example;\n")

	var out bytes.Buffer
	opts := defaultOptions(&out)
	opts.BackupSuffix = ""

	summary, err := ByteOrderMarks(root, opts)
	require.NoError(t, err)

	assert.Equal(t, []string{bom}, summary.Fixed)
	assert.Equal(t, "package com.example;\n\nclass App {}\n", readFile(t, bom))
	assert.Equal(t, "Fixed: "+bom+"\n", out.String())

	_, err = os.Stat(bom + ".bak")
	assert.True(t, os.IsNotExist(err), "backups disabled")
}
