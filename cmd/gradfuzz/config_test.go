package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gradfuzz/harness"
	"github.com/katalvlaran/gradfuzz/oracle"
)

func TestLoadConfig_DefaultsMatchHarness(t *testing.T) {
	fc, err := loadConfig("")
	require.NoError(t, err)

	got, err := fc.toHarness()
	require.NoError(t, err)

	want := harness.DefaultConfig()
	require.Equal(t, want.Checks, got.Checks)
	require.Equal(t, want.CasesPerInput, got.CasesPerInput)
	require.Equal(t, want.Mode, got.Mode)
	require.Equal(t, want.Generator, got.Generator)
	require.Equal(t, want.Oracle, got.Oracle)
}

func TestLoadConfig_OverlayKeepsUnsetDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
mode: continuous
cases_per_input: 8
generator:
  max_depth: 3
oracle:
  lenient_non_finite: true
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	fc, err := loadConfig(path)
	require.NoError(t, err)

	got, err := fc.toHarness()
	require.NoError(t, err)

	require.Equal(t, harness.ModeContinuous, got.Mode)
	require.Equal(t, 8, got.CasesPerInput)
	require.Equal(t, 3, got.Generator.MaxDepth)
	require.Equal(t, oracle.LenientNonFinite, got.Oracle.NonFinite)

	// Unset keys keep package defaults.
	require.Equal(t, 2, got.Generator.MaxVariables)
	require.True(t, got.Generator.AllowDivision)
	require.InEpsilon(t, 1e-6, got.Oracle.AbsTolerance, 1e-12)
}

func TestLoadConfig_BadValues(t *testing.T) {
	fc := defaultFileConfig()
	fc.Checks = "rev_vs_fwd,bogus"
	_, err := fc.toHarness()
	require.ErrorIs(t, err, harness.ErrBadCheck)

	fc = defaultFileConfig()
	fc.Mode = "resume"
	_, err = fc.toHarness()
	require.ErrorIs(t, err, harness.ErrBadMode)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
