package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCheckCommandPassesBundledFixtures(t *testing.T) {
	out, err := execute(t, "check", "testdata/status_example.yaml", "testdata/status_testing.jsonc")
	require.NoError(t, err, out)
	assert.Contains(t, out, "PASS testdata/status_example.yaml: capsule round trip")
	assert.Contains(t, out, "PASS testdata/status_testing.jsonc: generate_error_status_not_ok()")
	assert.Contains(t, out, "0 failed")
}

func TestLoadFixtureFileFormats(t *testing.T) {
	yamlFile, err := loadFixtureFile("testdata/status_example.yaml")
	require.NoError(t, err)
	assert.Equal(t, "status_example", yamlFile.Module)
	require.NotEmpty(t, yamlFile.Cases)
	require.NotNil(t, yamlFile.Cases[0].Returns)
	assert.Equal(t, "nil", *yamlFile.Cases[0].Returns)

	jsoncFile, err := loadFixtureFile("testdata/status_testing.jsonc")
	require.NoError(t, err)
	assert.Equal(t, "status_testing", jsoncFile.Module)
	require.Len(t, jsoncFile.Cases, 5)
	assert.Equal(t, "generate_error_status_not_ok()", jsoncFile.Cases[4].Name, "unnamed cases take their call as name")
	require.NotNil(t, jsoncFile.Cases[4].Raises)
	assert.Equal(t, "ALREADY_EXISTS", jsoncFile.Cases[4].Raises.Code)
}

func TestLoadFixtureFileRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "cases.txt")
	require.NoError(t, os.WriteFile(txt, []byte("cases: []"), 0o644))
	_, err := loadFixtureFile(txt)
	assert.ErrorContains(t, err, "unsupported extension")

	noCall := filepath.Join(dir, "cases.yaml")
	require.NoError(t, os.WriteFile(noCall, []byte("cases:\n  - name: empty\n"), 0o644))
	_, err = loadFixtureFile(noCall)
	assert.ErrorContains(t, err, "has no call")

	_, err = loadFixtureFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestRunFixtureReportsMismatches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failing.yaml")
	source := `
cases:
  - name: wrong value
    call: return_value_status_or(1)
    returns: "2"
  - name: expected raise
    call: return_status(:ok)
    raises:
      type: StatusNotOk
  - name: wrong code
    call: return_status(:aborted)
    raises:
      type: StatusNotOk
      code: NOT_FOUND
  - name: wrong raw code
    call: status_from_int_code(5, "")
    status:
      raw_code: 6
  - name: unexpected raise
    call: undefined_name
`
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))

	reports, err := runFixtureFiles(context.Background(), []string{path}, discardLogger())
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 5, reports[0].failures())
	for _, res := range reports[0].results {
		assert.Error(t, res.err, res.name)
	}
}

func TestRunFixtureFilesIsolatesNativeSlots(t *testing.T) {
	dir := t.TempDir()
	write := func(name, code string) string {
		path := filepath.Join(dir, name)
		source := "cases:\n" +
			"  - call: make_status_ref(:" + code + ")\n" +
			"  - call: make_status_ref(:ok)\n" +
			"    status: {ok: true}\n"
		require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
		return path
	}
	paths := []string{write("a.yaml", "aborted"), write("b.yaml", "internal"), write("c.yaml", "not_found")}

	reports, err := runFixtureFiles(context.Background(), paths, discardLogger())
	require.NoError(t, err)
	require.Len(t, reports, len(paths))
	for i, report := range reports {
		assert.Equal(t, paths[i], report.path)
		assert.Zero(t, report.failures())
	}
}

func TestCheckCommandFailsOnFailedCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"cases": [{"call": "return_value_status_or(1)", "returns": "3"}]}`), 0o644))

	out, err := execute(t, "check", "-v", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 case(s) failed")
	assert.Contains(t, out, "FAIL "+path)
}
