// Package gen_test exercises the structure-aware generator: determinism,
// structural bounds, operator gating, and exhaustion behavior.
package gen_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gradfuzz/expr"
	"github.com/katalvlaran/gradfuzz/gen"
)

// corpus returns n pseudo-random byte streams from a fixed seed, so test
// runs are repeatable without checked-in fixtures.
func corpus(n, size int, seed int64) [][]byte {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]byte, n)
	for i := range out {
		b := make([]byte, size)
		rng.Read(b)
		out[i] = b
	}

	return out
}

// walk applies fn to every node of e.
func walk(e expr.Expr, fn func(expr.Expr)) {
	fn(e)
	switch x := e.(type) {
	case expr.Unary:
		walk(x.X, fn)
	case expr.Binary:
		walk(x.L, fn)
		walk(x.R, fn)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := gen.DefaultConfig()
	for _, data := range corpus(50, 128, 1) {
		a, errA := gen.Generate(data, cfg)
		b, errB := gen.Generate(data, cfg)
		require.Equal(t, errA, errB)
		if errA != nil {
			continue
		}
		require.True(t, expr.Equal(a, b),
			"same bytes must yield the same tree:\n%s", cmp.Diff(expr.SExpr(a), expr.SExpr(b)))
	}
}

func TestGenerate_DepthBounded(t *testing.T) {
	for _, depth := range []int{0, 1, 3, 5} {
		cfg := gen.NewConfig(gen.WithMaxDepth(depth))
		for _, data := range corpus(50, 256, int64(depth)+2) {
			e, err := gen.Generate(data, cfg)
			if err != nil {
				require.ErrorIs(t, err, gen.ErrInsufficientEntropy)
				continue
			}
			require.LessOrEqual(t, e.Depth(), depth, "tree %s", expr.SExpr(e))
		}
	}
}

func TestGenerate_VariableIndicesValid(t *testing.T) {
	cfg := gen.NewConfig(gen.WithMaxVariables(3))
	for _, data := range corpus(50, 256, 7) {
		e, err := gen.Generate(data, cfg)
		if err != nil {
			continue
		}
		for _, idx := range expr.VarIndices(e) {
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, 3)
		}
	}
}

func TestGenerate_DisabledOperatorsExcluded(t *testing.T) {
	cfg := gen.NewConfig(gen.WithDivision(false), gen.WithPower(false), gen.WithLog(false))
	for _, data := range corpus(100, 256, 11) {
		e, err := gen.Generate(data, cfg)
		if err != nil {
			continue
		}
		walk(e, func(n expr.Expr) {
			switch x := n.(type) {
			case expr.Unary:
				require.NotEqual(t, expr.Log, x.Op)
			case expr.Binary:
				require.NotEqual(t, expr.Div, x.Op)
				require.NotEqual(t, expr.Pow, x.Op)
			}
		})
	}
}

func TestGenerate_LogOnlyWhenEnabled(t *testing.T) {
	// With log enabled and a large corpus, at least one tree should use it;
	// this guards against the candidate-set plumbing silently dropping it.
	cfg := gen.NewConfig(gen.WithLog(true), gen.WithMaxDepth(6))
	found := false
	for _, data := range corpus(300, 256, 13) {
		e, err := gen.Generate(data, cfg)
		if err != nil {
			continue
		}
		walk(e, func(n expr.Expr) {
			if u, ok := n.(expr.Unary); ok && u.Op == expr.Log {
				found = true
			}
		})
	}
	require.True(t, found, "no Log node in 300 generated trees")
}

func TestGenerate_SkipOnExhaustion(t *testing.T) {
	cfg := gen.DefaultConfig()

	_, err := gen.Generate(nil, cfg)
	require.ErrorIs(t, err, gen.ErrInsufficientEntropy)

	_, err = gen.Generate([]byte{}, cfg)
	require.ErrorIs(t, err, gen.ErrInsufficientEntropy)

	// One byte picks a node kind but leaves nothing for the node itself.
	_, err = gen.Generate([]byte{0xFF}, cfg)
	require.ErrorIs(t, err, gen.ErrInsufficientEntropy)
}

func TestGenerate_BadConfig(t *testing.T) {
	_, err := gen.Generate([]byte{1, 2, 3}, gen.Config{MaxDepth: -1, MaxVariables: 2})
	require.ErrorIs(t, err, gen.ErrBadMaxDepth)

	_, err = gen.Generate([]byte{1, 2, 3}, gen.Config{MaxDepth: 3, MaxVariables: 0})
	require.ErrorIs(t, err, gen.ErrBadMaxVariables)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	require.Panics(t, func() { gen.NewConfig(gen.WithMaxDepth(-1)) })
	require.Panics(t, func() { gen.NewConfig(gen.WithMaxVariables(0)) })
}

func TestConsumed_PrefixSufficient(t *testing.T) {
	// The bytes actually consumed are a self-contained encoding: generating
	// from just that prefix reproduces the tree.
	cfg := gen.DefaultConfig()
	for _, data := range corpus(30, 128, 17) {
		full, err := gen.Generate(data, cfg)
		if err != nil {
			continue
		}
		used, err := gen.Consumed(data, cfg)
		require.NoError(t, err)
		require.LessOrEqual(t, used, len(data))

		again, err := gen.Generate(data[:used], cfg)
		require.NoError(t, err)
		require.True(t, expr.Equal(full, again))
	}
}

func TestGenerate_ZeroDepthIsLeaf(t *testing.T) {
	cfg := gen.NewConfig(gen.WithMaxDepth(0))
	for _, data := range corpus(20, 16, 19) {
		e, err := gen.Generate(data, cfg)
		if err != nil {
			continue
		}
		require.Equal(t, 0, e.Depth())
		require.Equal(t, 1, expr.Size(e))
	}
}

func FuzzGenerate(f *testing.F) {
	f.Add([]byte("seed bytes for expression generation"))
	f.Add([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	f.Fuzz(func(t *testing.T, data []byte) {
		cfg := gen.NewConfig(gen.WithLog(true), gen.WithMaxVariables(4))
		e, err := gen.Generate(data, cfg)
		if err != nil {
			if !errors.Is(err, gen.ErrInsufficientEntropy) {
				t.Fatalf("unexpected error: %v", err)
			}

			return
		}
		if e.Depth() > cfg.MaxDepth {
			t.Fatalf("depth %d exceeds bound %d: %s", e.Depth(), cfg.MaxDepth, expr.SExpr(e))
		}
		for _, idx := range expr.VarIndices(e) {
			if idx < 0 || idx >= cfg.MaxVariables {
				t.Fatalf("variable index %d out of range: %s", idx, expr.SExpr(e))
			}
		}
		again, err := gen.Generate(data, cfg)
		if err != nil || !expr.Equal(e, again) {
			t.Fatalf("generation is not deterministic for %x", data)
		}
	})
}
