package app

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"WeightLossDataGenerator/internal/csvexport"
	"WeightLossDataGenerator/internal/dataset"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("datagen")
	fs.SetOutput(&bytes.Buffer{})
	return ParseArgs(fs, argv)
}

func TestParseArgsDefaults(t *testing.T) {
	opts, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, defaultRows, opts.Rows)
	assert.Nil(t, opts.Seed)
	assert.Equal(t, ".", opts.OutDir)
	assert.False(t, opts.Stdout)
}

func TestParseArgsLenientRows(t *testing.T) {
	for raw, want := range map[string]int{"12": 12, "12.9": 12, "abc": 1, "-3": 1, "0": 1} {
		opts, err := parse(t, "-rows", raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, opts.Rows, raw)
	}
}

func TestParseArgsErrors(t *testing.T) {
	_, err := parse(t, "-seed", "nope")
	assert.ErrorIs(t, err, ErrBadArgs)

	_, err = parse(t, "-plan", "p.yaml", "-stdout")
	assert.ErrorIs(t, err, ErrBadArgs)

	_, err = parse(t, "extra")
	assert.ErrorIs(t, err, ErrBadArgs)

	_, err = parse(t, "-bogus")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrBadArgs)

	_, err = parse(t, "-h")
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestRunStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"-rows", "4", "-seed", "42", "-stdout"}, &stdout, &stderr)
	require.Equal(t, ExitOK, code, stderr.String())

	assert.Equal(t, dataset.Build("test", 4, 42).Data, stdout.Bytes())
	lines := strings.Split(stdout.String(), "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, csvexport.Header, lines[0])
}

func TestRunWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	var stdout, stderr bytes.Buffer
	code := Run([]string{"-rows", "3", "-seed", "9", "-out", dir}, &stdout, &stderr)
	require.Equal(t, ExitOK, code, stderr.String())

	assert.Empty(t, stdout.String())
	path := filepath.Join(dir, "weight_loss_dataset_3_rows.csv")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, dataset.Build("test", 3, 9).Data, data)
	assert.Contains(t, stderr.String(), "seed 9")
}

func TestRunPlan(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.yaml")
	plan := "output_dir: " + filepath.Join(dir, "batch") + "\ndatasets:\n  - rows: 2\n    seed: 1\n  - rows: 5\n    seed: 2\n"
	require.NoError(t, os.WriteFile(planPath, []byte(plan), 0644))

	var stdout, stderr bytes.Buffer
	code := Run([]string{"-plan", planPath}, &stdout, &stderr)
	require.Equal(t, ExitOK, code, stderr.String())

	for _, name := range []string{"weight_loss_dataset_2_rows.csv", "weight_loss_dataset_5_rows.csv"} {
		_, err := os.Stat(filepath.Join(dir, "batch", name))
		assert.NoError(t, err, name)
	}
}

func TestRunExitCodes(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, ExitUsage, Run([]string{"-seed", "x"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "-seed")

	assert.Equal(t, ExitUsage, Run([]string{"-unknown"}, &stdout, &stderr))
	assert.Equal(t, ExitOK, Run([]string{"-h"}, &stdout, &stderr))

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	assert.Equal(t, ExitError, Run([]string{"-plan", missing}, &stdout, &stderr))

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	assert.Equal(t, ExitError, Run([]string{"-rows", "1", "-out", filepath.Join(file, "sub")}, &stdout, &stderr))
}

func TestRunRejectsOversizedRowCount(t *testing.T) {
	for _, rows := range []string{"99999999999999999999", "10000001"} {
		var stdout, stderr bytes.Buffer
		assert.NotPanics(t, func() {
			assert.Equal(t, ExitError, Run([]string{"-rows", rows, "-stdout"}, &stdout, &stderr), rows)
		})
		assert.Empty(t, stdout.String(), rows)
		assert.Contains(t, stderr.String(), "exceeds the limit", rows)
	}
}

func TestRunPlanRejectsOversizedEntry(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.yaml")
	plan := "output_dir: " + filepath.Join(dir, "batch") + "\ndatasets:\n  - rows: 2\n  - rows: 20000000\n"
	require.NoError(t, os.WriteFile(planPath, []byte(plan), 0644))

	var stdout, stderr bytes.Buffer
	assert.Equal(t, ExitError, Run([]string{"-plan", planPath}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "dataset 2")

	_, err := os.Stat(filepath.Join(dir, "batch"))
	assert.True(t, os.IsNotExist(err))
}
