package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/slotforge/internal/utils"
)

// consistencyPaytable has a theoretical RTP of exactly 50%.
const consistencyPaytable = `{
  "board": {"cols": 5, "rows": 3},
  "lineCount": 1,
  "symbols": [
    {"id": "A", "type": "normal", "appearanceWeight": 1, "payouts": {"match3": 1, "match4": 2, "match5": 5}},
    {"id": "B", "type": "normal", "appearanceWeight": 1, "payouts": {"match3": 0.5, "match4": 1, "match5": 2}},
    {"id": "C", "type": "normal", "appearanceWeight": 1, "payouts": {"match3": 0.5, "match4": 1, "match5": 2}},
    {"id": "D", "type": "normal", "appearanceWeight": 1, "payouts": {"match3": 0.2, "match4": 0.5, "match5": 1}},
    {"id": "E", "type": "normal", "appearanceWeight": 1, "payouts": {"match3": 0.2, "match4": 0.5, "match5": 1}},
    {"id": "W", "type": "wild", "appearanceWeight": 1, "wildConfig": {"canReplaceNormal": true, "canReplaceSpecial": false}},
    {"id": "S", "type": "scatter", "appearanceWeight": 1, "scatterPayoutConfig": {"minCount": 3, "payoutByCount": {"3": 5, "4": 20, "5": 100}}}
  ],
  "outcomes": [
    {"id": "LOSS", "name": "Loss", "multiplierRange": {"min": 0, "max": 0}, "weight": 90},
    {"id": "WIN", "name": "Win", "multiplierRange": {"min": 5, "max": 5}, "weight": 10}
  ]
}`

func writePaytable(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paytable.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_Consistent(t *testing.T) {
	path := writePaytable(t, consistencyPaytable)
	out := filepath.Join(t.TempDir(), "report.json")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-paytable", path, "-target", "100", "-seed", "7", "-out", out}, &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "theoretical RTP: 50.000%")
	assert.Contains(t, stdout.String(), "OK")

	var report checkReport
	require.NoError(t, utils.LoadJSON(out, &report))
	assert.InDelta(t, 50.0, report.Theoretical.TotalRTP, 1e-9)
	assert.InDelta(t, 50.0, report.Actual.TotalRTP, 0.1)
	assert.True(t, report.Comparison.WithinTolerance)
	assert.Equal(t, uint64(7), report.Seed)
}

func TestRun_Baseline(t *testing.T) {
	path := writePaytable(t, consistencyPaytable)
	base := filepath.Join(t.TempDir(), "baseline.json")
	require.NoError(t, utils.SaveJSON(base, checkReport{}))
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-paytable", path, "-baseline", base}, &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "theoretical drift vs baseline: +50.0000 pp")
}

func TestRun_Simulation(t *testing.T) {
	path := writePaytable(t, consistencyPaytable)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-paytable", path, "-spins", "2000", "-lang", "en"}, &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "spins: 2,000")
}

func TestRun_Unreachable(t *testing.T) {
	body := strings.Replace(consistencyPaytable,
		`{"id": "WIN", "name": "Win", "multiplierRange": {"min": 5, "max": 5}, "weight": 10}`,
		`{"id": "JACKPOT", "name": "Jackpot", "multiplierRange": {"min": 10000, "max": 20000}, "weight": 10}`, 1)
	path := writePaytable(t, body)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-paytable", path, "-target", "5"}, &stdout, &stderr)

	assert.Equal(t, exitDivergence, code)
	assert.Contains(t, stdout.String(), "MISSING")
	assert.Contains(t, stdout.String(), "FAIL")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-nope"}},
		{"missing paytable", []string{"-paytable", filepath.Join(t.TempDir(), "absent.json")}},
		{"bad locale", []string{"-lang", "!!"}},
		{"bad target", []string{"-paytable", writePaytable(t, consistencyPaytable), "-target", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, exitUsage, run(context.Background(), tt.args, &stdout, &stderr))
		})
	}
}
