package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runCmd(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCmd(t, "")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "usage: postcode")

	code, _, stderr = runCmd(t, "", "frobnicate")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, `unknown command "frobnicate"`)

	code, stdout, _ := runCmd(t, "", "help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "commands:")

	code, _, _ = runCmd(t, "", "check")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCmd(t, "", "check", "-nope", "W1A 0AX")
	assert.Equal(t, exitUsage, code)
}

func TestRun_Check(t *testing.T) {
	code, stdout, _ := runCmd(t, "", "check", "EC1A 1BB", "dn551pt")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "EC1A 1BB\tvalid\tec-subdivision")
	assert.Contains(t, stdout, "dn551pt\tvalid")

	code, stdout, _ = runCmd(t, "", "check", "EC1A 1BB", "BB0 1PY")
	assert.Equal(t, exitInvalid, code)
	assert.Contains(t, stdout, "BB0 1PY\tinvalid\toutward code is not recognised")
}

func TestRun_CheckStrict(t *testing.T) {
	code, _, _ := runCmd(t, "", "check", "FY11 1PY")
	assert.Equal(t, exitOK, code)

	code, _, _ = runCmd(t, "", "check", "-strict", "FY11 1PY")
	assert.Equal(t, exitInvalid, code)

	t.Setenv("POSTCODE_STRICT_DISTRICTS", "true")
	code, _, _ = runCmd(t, "", "check", "FY11 1PY")
	assert.Equal(t, exitInvalid, code)
}

func TestRun_Bulk(t *testing.T) {
	input := "# export\nEC1A 1BB\nW1A\n\nB33 8TH\n"

	t.Run("text from stdin", func(t *testing.T) {
		code, stdout, _ := runCmd(t, input, "bulk")
		assert.Equal(t, exitInvalid, code)
		assert.Contains(t, stdout, "total=3 valid=2 invalid=1")
	})

	t.Run("json from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "codes.txt")
		require.NoError(t, os.WriteFile(path, []byte("EC1A 1BB\nB33 8TH\n"), 0o600))

		code, stdout, _ := runCmd(t, "", "bulk", "-f", path, "-format", "json", "-workers", "2")
		assert.Equal(t, exitOK, code)

		var report struct {
			Summary struct {
				Total int `json:"total"`
				Valid int `json:"valid"`
			} `json:"summary"`
			Results []struct {
				Line     int    `json:"line"`
				Postcode string `json:"postcode"`
			} `json:"results"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &report))
		assert.Equal(t, 2, report.Summary.Total)
		assert.Equal(t, 2, report.Summary.Valid)
		require.Len(t, report.Results, 2)
		assert.Equal(t, 2, report.Results[1].Line)
		assert.Equal(t, "B33 8TH", report.Results[1].Postcode)
	})

	t.Run("yaml", func(t *testing.T) {
		code, stdout, _ := runCmd(t, input, "bulk", "-format", "yaml")
		assert.Equal(t, exitInvalid, code)

		var report map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(stdout), &report))
		assert.Contains(t, report, "summary")
		assert.Contains(t, report, "results")
	})

	t.Run("unknown format", func(t *testing.T) {
		code, _, stderr := runCmd(t, input, "bulk", "-format", "xml")
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, stderr, "unknown output format")
	})

	t.Run("missing file", func(t *testing.T) {
		code, _, stderr := runCmd(t, "", "bulk", "-f", filepath.Join(t.TempDir(), "absent.txt"))
		assert.Equal(t, exitError, code)
		assert.Contains(t, stderr, "open input")
	})
}
