package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func TestPersonasCommand(t *testing.T) {
	out := run(t, "personas")
	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "risk")
	assert.Contains(t, out, "Contract Risk Analyst")
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "summary.txt")
	require.NoError(t, os.WriteFile(text, []byte("Short summary"), 0o600))
	pdf := filepath.Join(dir, "out.pdf")

	out := run(t, "export", "--doc-id", "cli-1", "--label", "Summary", "--text-file", text, "-o", pdf)
	assert.Contains(t, out, "wrote "+pdf)

	data, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestAnalyzeRejectsUnknownType(t *testing.T) {
	rootCmd.SetArgs([]string{"analyze", "--doc-id", "x", "--type", "poetry"})
	rootCmd.SetOut(&bytes.Buffer{})
	assert.Error(t, rootCmd.Execute())
}
