package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gradfuzz/gen"
	"github.com/katalvlaran/gradfuzz/harness"
	"github.com/katalvlaran/gradfuzz/oracle"
)

// fileConfig mirrors the YAML configuration file. Fields are pre-filled
// with the package defaults before unmarshalling, so absent keys keep
// their default values.
type fileConfig struct {
	Checks        string          `yaml:"checks"`
	Mode          string          `yaml:"mode"`
	CasesPerInput int             `yaml:"cases_per_input"`
	Generator     generatorConfig `yaml:"generator"`
	Oracle        oracleConfig    `yaml:"oracle"`
	ArtifactsDir  string          `yaml:"artifacts_dir"`
}

type generatorConfig struct {
	MaxDepth      int  `yaml:"max_depth"`
	MaxVariables  int  `yaml:"max_variables"`
	AllowDivision bool `yaml:"allow_division"`
	AllowPower    bool `yaml:"allow_power"`
	AllowLog      bool `yaml:"allow_log"`
}

type oracleConfig struct {
	AbsTolerance     float64 `yaml:"abs_tolerance"`
	RelTolerance     float64 `yaml:"rel_tolerance"`
	LenientNonFinite bool    `yaml:"lenient_non_finite"`
}

// defaultFileConfig mirrors harness.DefaultConfig in file form.
func defaultFileConfig() fileConfig {
	g := gen.DefaultConfig()
	o := oracle.DefaultOptions()

	return fileConfig{
		Checks:        "all",
		Mode:          harness.ModeHalt.String(),
		CasesPerInput: 1,
		Generator: generatorConfig{
			MaxDepth:      g.MaxDepth,
			MaxVariables:  g.MaxVariables,
			AllowDivision: g.AllowDivision,
			AllowPower:    g.AllowPower,
			AllowLog:      g.AllowLog,
		},
		Oracle: oracleConfig{
			AbsTolerance: o.AbsTolerance,
			RelTolerance: o.RelTolerance,
		},
	}
}

// loadConfig returns the defaults, overlaid with the YAML file at path
// when one is given.
func loadConfig(path string) (fileConfig, error) {
	fc := defaultFileConfig()
	if path == "" {
		return fc, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fc, fmt.Errorf("parsing config: %w", err)
	}

	return fc, nil
}

// toHarness translates the file form into a validated harness.Config.
// Validation itself happens in harness.New.
func (fc fileConfig) toHarness() (harness.Config, error) {
	checks, err := harness.ParseChecks(fc.Checks)
	if err != nil {
		return harness.Config{}, err
	}

	mode, err := harness.ParseMode(fc.Mode)
	if err != nil {
		return harness.Config{}, err
	}

	policy := oracle.StrictNonFinite
	if fc.Oracle.LenientNonFinite {
		policy = oracle.LenientNonFinite
	}

	return harness.Config{
		Checks:        checks,
		CasesPerInput: fc.CasesPerInput,
		Mode:          mode,
		Generator: gen.Config{
			MaxDepth:      fc.Generator.MaxDepth,
			MaxVariables:  fc.Generator.MaxVariables,
			AllowDivision: fc.Generator.AllowDivision,
			AllowPower:    fc.Generator.AllowPower,
			AllowLog:      fc.Generator.AllowLog,
		},
		Oracle: oracle.Options{
			AbsTolerance: fc.Oracle.AbsTolerance,
			RelTolerance: fc.Oracle.RelTolerance,
			NonFinite:    policy,
		},
		Logger: logger,
	}, nil
}
