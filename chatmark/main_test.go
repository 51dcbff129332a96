package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command in-process with an isolated home directory.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderStdin(t *testing.T) {
	out, err := execute(t, "**hi**\n\n- a\n- b")
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>hi</strong></p><ul><li>a</li><li>b</li></ul>", out)
}

func TestRenderFileToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "reading.md")
	dst := filepath.Join(dir, "reading.html")
	require.NoError(t, os.WriteFile(in, []byte("# Reading\n[more](https://example.com)"), 0o600))

	out, err := execute(t, "", "--output", dst, "--target-blank=false", in)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "<h1>Reading</h1><p><a href=\"https://example.com\" rel=\"noopener noreferrer\">more</a></p>", string(data))
}

func TestMissingInputFile(t *testing.T) {
	_, err := execute(t, "", filepath.Join(t.TempDir(), "nope.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTheme(t *testing.T) {
	out, err := execute(t, "text", "--theme", "tailwind")
	require.NoError(t, err)
	assert.Equal(t, "<p class=\"leading-relaxed\">text</p>", out)

	_, err = execute(t, "text", "--theme", "neon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported theme")
}

func TestTraceLevel(t *testing.T) {
	_, err := execute(t, "text", "--trace", "debug")
	require.NoError(t, err)

	_, err = execute(t, "text", "--trace", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported trace level")
}

func TestPage(t *testing.T) {
	out, err := execute(t, "body", "--title", "Hexagram 1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>\n"))
	assert.Contains(t, out, "<title>Hexagram 1</title>")
	assert.Contains(t, out, "<p>body</p>")
}

func TestEnvironment(t *testing.T) {
	t.Setenv("CHATMARK_XHTML", "false")
	out, err := execute(t, "a\nb")
	require.NoError(t, err)
	assert.Equal(t, "<p>a<br>b</p>", out)
}

func TestFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("CHATMARK_XHTML", "false")
	out, err := execute(t, "a\nb", "--xhtml=true")
	require.NoError(t, err)
	assert.Equal(t, "<p>a<br />b</p>", out)
}

func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "chatmark.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("heading_ids: true\nsanitize: true\n"), 0o600))

	out, err := execute(t, "# Title", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "<h1 id=\"title\">Title</h1>", out)

	_, err = execute(t, "x", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "chatmark v1.0\n", out)
}

func TestBindFlags(t *testing.T) {
	flags := newRootCmd().Flags()
	v := viper.New()
	require.NoError(t, bindFlags(v, flags, flagKeys))

	err := bindFlags(viper.New(), flags, map[string]string{"heading_ids": "heading-id"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--heading-id")
}
