// Internal tests: the failure-path tests swap one backend for a skewed
// stub, which needs access to the Controller's fields.
package harness

import (
	"encoding/binary"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gradfuzz/eval"
	"github.com/katalvlaran/gradfuzz/expr"
	"github.com/katalvlaran/gradfuzz/forward"
	"github.com/katalvlaran/gradfuzz/gen"
	"github.com/katalvlaran/gradfuzz/oracle"
)

// inputBytes encodes vals as little-endian float64, the layout Run expects
// at the front of a stream.
func inputBytes(vals ...float64) []byte {
	out := make([]byte, len(vals)*8)
	for i, v := range vals {
		binary.LittleEndian.PutUint64(out[i*8:], math.Float64bits(v))
	}

	return out
}

// skewedForward delegates to the real forward adapter and then shifts the
// value, guaranteeing disagreement with the other backends.
type skewedForward struct {
	real forward.Engine
}

func (s skewedForward) Name() string { return s.real.Name() }

func (s skewedForward) Derive(e expr.Expr, inputs []float64) (eval.Result, error) {
	res, err := s.real.Derive(e, inputs)
	if err != nil {
		return res, err
	}
	res.Value += 1000

	return res, nil
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"no checks", func(c *Config) { c.Checks = nil }, ErrNoChecks},
		{"zero cases", func(c *Config) { c.CasesPerInput = 0 }, ErrBadCaseCount},
		{"bad mode", func(c *Config) { c.Mode = Mode(99) }, ErrBadMode},
		{"bad check", func(c *Config) { c.Checks = []oracle.CheckKind{oracle.CheckKind(7)} }, ErrBadCheck},
		{"bad generator", func(c *Config) { c.Generator.MaxVariables = 0 }, gen.ErrBadMaxVariables},
		{"negative tolerance", func(c *Config) { c.Oracle.AbsTolerance = -1 }, oracle.ErrBadTolerance},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			_, err := New(cfg)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := New(DefaultConfig())
	require.NoError(t, err)
}

func TestRun_ShortInput_SkipsEverything(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CasesPerInput = 3
	c, err := New(cfg)
	require.NoError(t, err)

	// Two variables need 16 value bytes; 10 is not enough.
	rep, err := c.Run(make([]byte, 10))
	require.NoError(t, err)
	require.Equal(t, 3, rep.Cases)
	require.Equal(t, 3, rep.Skipped)
	require.Empty(t, rep.Failures)
}

func TestRun_NonFiniteInputBytes_SkipsEverything(t *testing.T) {
	c, err := New(DefaultConfig())
	require.NoError(t, err)

	data := inputBytes(math.NaN(), 1.0)
	data = append(data, 0x04, 0x01, 0x00, 0x00, 0x01)

	rep, err := c.Run(data)
	require.NoError(t, err)
	require.Equal(t, rep.Cases, rep.Skipped)
}

func TestRun_EntropyExhaustion_SkipsCase(t *testing.T) {
	c, err := New(DefaultConfig())
	require.NoError(t, err)

	// Value bytes decode fine; no tree bytes remain at all.
	rep, err := c.Run(inputBytes(1.0, 2.0))
	require.NoError(t, err)
	require.Equal(t, 1, rep.Cases)
	require.Equal(t, 1, rep.Skipped)
}

func TestRun_DeterministicAgreement(t *testing.T) {
	c, err := New(DefaultConfig())
	require.NoError(t, err)

	// Tree bytes encode sin(x1); all three backends yield cos(0.5) for the
	// only active input.
	data := inputBytes(1.0, 0.5)
	data = append(data, 0x04, 0x01, 0x00, 0x00, 0x01)

	rep, err := c.Run(data)
	require.NoError(t, err)
	require.Equal(t, 1, rep.Cases)
	require.Zero(t, rep.Skipped)
	require.Empty(t, rep.Failures)
}

func TestRun_RandomCorpus_ADEnginesAgree(t *testing.T) {
	// Only rev_vs_fwd holds universally: the AD pair annihilates zero
	// chain factors symmetrically, while the ground-truth reference keeps
	// 0·∞ products indeterminate, so its checks can legitimately fail on
	// such inputs.
	cfg := DefaultConfig()
	cfg.Checks = []oracle.CheckKind{oracle.RevVsFwd}
	cfg.CasesPerInput = 2
	cfg.Mode = ModeContinuous
	c, err := New(cfg)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 120; i++ {
		data := make([]byte, 16+96)
		rng.Read(data)

		rep, err := c.Run(data)
		require.NoError(t, err)
		for _, f := range rep.Failures {
			t.Fatalf("backends disagree on %s at %v: %+v", f.Infix, f.Inputs, f.Verdicts)
		}
	}
}

func TestRun_IndeterminateChainProduct(t *testing.T) {
	// Tree bytes encode (x0 * (1 / x0)), evaluated at x0 = 0. The AD pair
	// agrees on +Inf; the ground-truth reference reports NaN, so exactly
	// the two checks involving it fail.
	data := inputBytes(0, 0)
	data = append(data,
		0x03, 0x02, // binary, Mul
		0x00, 0x00, 0x00, // leaf, var, x0
		0x03, 0x03, // binary, Div
		0x00, 0x02, 0x01, // leaf, const, bucket 1
		0x00, 0x00, 0x00) // leaf, var, x0

	adOnly := DefaultConfig()
	adOnly.Checks = []oracle.CheckKind{oracle.RevVsFwd}
	c, err := New(adOnly)
	require.NoError(t, err)

	rep, err := c.Run(data)
	require.NoError(t, err)
	require.Empty(t, rep.Failures)

	all := DefaultConfig()
	all.Mode = ModeContinuous
	c, err = New(all)
	require.NoError(t, err)

	rep, err = c.Run(data)
	require.NoError(t, err)
	require.Len(t, rep.Failures, 1)

	f := rep.Failures[0]
	require.Equal(t, "(x0 * (1 / x0))", f.Infix)
	require.Len(t, f.Verdicts, 2)
	for _, v := range f.Verdicts {
		require.NotEqual(t, oracle.RevVsFwd, v.Check)
	}
}

func TestRun_Halt_StopsAtFirstFailure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CasesPerInput = 3
	c, err := New(cfg)
	require.NoError(t, err)
	c.fwd = skewedForward{}

	// All-zero tree bytes generate the bare variable x0 for every case.
	data := make([]byte, 16+96)

	rep, err := c.Run(data)
	require.ErrorIs(t, err, ErrOracleMismatch)
	require.Equal(t, 1, rep.Cases)
	require.Len(t, rep.Failures, 1)

	f := rep.Failures[0]
	require.Equal(t, 0, f.Case)
	require.Equal(t, "x0", f.Infix)
	require.Equal(t, "x0", f.SExpr)
	require.Equal(t, []float64{0}, f.Inputs)
	require.Contains(t, f.Results, "forward")
	require.Contains(t, f.Results, "reverse")
	require.Contains(t, f.Results, "groundtruth")

	// The skewed value breaks both checks involving forward; reverse
	// against ground truth still agrees.
	require.Len(t, f.Verdicts, 2)
	for _, v := range f.Verdicts {
		require.False(t, v.Passed)
		require.NotEqual(t, oracle.RevVsGT, v.Check)
	}
}

func TestRun_Continuous_RecordsAndKeepsGoing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CasesPerInput = 3
	cfg.Mode = ModeContinuous
	c, err := New(cfg)
	require.NoError(t, err)
	c.fwd = skewedForward{}

	rep, err := c.Run(make([]byte, 16+96))
	require.NoError(t, err)
	require.Equal(t, 3, rep.Cases)
	require.Len(t, rep.Failures, 3)
	for i, f := range rep.Failures {
		require.Equal(t, i, f.Case)
	}
}

func TestRun_ChecksSubset_OnlyInvolvedBackendsRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Checks = []oracle.CheckKind{oracle.RevVsGT}
	c, err := New(cfg)
	require.NoError(t, err)

	// The skewed forward backend would fail any check it participates in;
	// with rev_vs_gt alone it must never be consulted.
	c.fwd = skewedForward{}

	data := inputBytes(1.0, 0.5)
	data = append(data, 0x04, 0x01, 0x00, 0x00, 0x01)

	rep, err := c.Run(data)
	require.NoError(t, err)
	require.Empty(t, rep.Failures)
}

func TestTotals_AccumulateAcrossRuns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeContinuous
	c, err := New(cfg)
	require.NoError(t, err)

	good := inputBytes(1.0, 0.5)
	good = append(good, 0x04, 0x01, 0x00, 0x00, 0x01)

	_, err = c.Run(good)
	require.NoError(t, err)
	_, err = c.Run(make([]byte, 4)) // too short, skipped
	require.NoError(t, err)

	cases, skipped, failures := c.Totals()
	require.Equal(t, 2, cases)
	require.Equal(t, 1, skipped)
	require.Zero(t, failures)
}

func TestRun_LoggerIsOptional(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logger = slog.Default()
	c, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, c.log)

	cfg.Logger = nil
	c, err = New(cfg)
	require.NoError(t, err)
	require.NotNil(t, c.log)
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"halt", ModeHalt, false},
		{"", ModeHalt, false},
		{"  Continuous ", ModeContinuous, false},
		{"resume", ModeHalt, true},
	}

	for _, tc := range cases {
		m, err := ParseMode(tc.in)
		if tc.wantErr {
			require.ErrorIs(t, err, ErrBadMode, tc.in)

			continue
		}
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, m, tc.in)
	}
}

func TestParseChecks(t *testing.T) {
	all := []oracle.CheckKind{oracle.RevVsFwd, oracle.RevVsGT, oracle.FwdVsGT}

	got, err := ParseChecks("all")
	require.NoError(t, err)
	require.Equal(t, all, got)

	got, err = ParseChecks("")
	require.NoError(t, err)
	require.Equal(t, all, got)

	got, err = ParseChecks("rev_vs_gt, fwd_vs_gt")
	require.NoError(t, err)
	require.Equal(t, []oracle.CheckKind{oracle.RevVsGT, oracle.FwdVsGT}, got)

	_, err = ParseChecks("rev_vs_fwd,bogus")
	require.ErrorIs(t, err, ErrBadCheck)
}

func TestModeString(t *testing.T) {
	require.Equal(t, "halt", ModeHalt.String())
	require.Equal(t, "continuous", ModeContinuous.String())
	require.Equal(t, "mode(?)", Mode(42).String())
}

// FuzzBackendsAgree is the end-to-end target: any byte stream must yield
// either a skip or rev_vs_fwd agreement, never a crash. The ground-truth
// checks are excluded on purpose: the symbolic reference resolves 0·∞
// chain products to NaN where the AD pair annihilates them, so genuine
// verdict failures against it are reachable and are findings, not crashes.
func FuzzBackendsAgree(f *testing.F) {
	seed := inputBytes(1.0, 0.5)
	seed = append(seed, 0x04, 0x01, 0x00, 0x00, 0x01)
	f.Add(seed)
	f.Add([]byte{})
	f.Add(make([]byte, 48))

	cfg := DefaultConfig()
	cfg.Checks = []oracle.CheckKind{oracle.RevVsFwd}
	cfg.Mode = ModeContinuous
	cfg.CasesPerInput = 2

	f.Fuzz(func(t *testing.T, data []byte) {
		c, err := New(cfg)
		if err != nil {
			t.Fatal(err)
		}

		rep, err := c.Run(data)
		if err != nil {
			t.Fatal(err)
		}
		for _, fail := range rep.Failures {
			t.Errorf("backends disagree on %s at %v: %+v", fail.Infix, fail.Inputs, fail.Verdicts)
		}
	})
}
