// Package gradfuzz is a differential-testing playground for automatic
// differentiation — generate random expressions, differentiate them three
// independent ways, and catch the backends disagreeing.
//
// 🚀 What is gradfuzz?
//
//	A structure-aware fuzzing oracle that brings together:
//		• Expression trees: constants, variables, 8 unary & 5 binary operators
//		• Deterministic generation: any byte stream maps to one bounded tree
//		• Forward mode: dual-number tangents, one pass per input
//		• Reverse mode: tape recording + one adjoint sweep for the full gradient
//		• Ground truth: symbolic differentiation evaluated numerically
//		• Oracles: hybrid abs/rel tolerance + strict non-finite pattern matching
//		• Harness: halt-on-first or continuous triage over whole corpora
//
// ✨ Why choose gradfuzz?
//
//   - Reproducible – same bytes, same expression, same verdict, every time
//   - Crash-proof – exhausted entropy and unusable inputs skip, never panic
//   - Honest about NaN – non-finite gradients must match in kind and sign
//   - Extensible – eval.Backend is a generic capability surface; plug in
//     your own numeric carrier and compare it against the built-in three
//
// Under the hood, everything is organized per concern:
//
//	expr/        — immutable expression trees + infix / s-expression rendering
//	gen/         — byte-stream driven, depth-bounded expression generation
//	eval/        — the generic Backend contract and the shared tree walk
//	forward/     — forward-mode engine over dual numbers
//	reverse/     — reverse-mode engine over a replayable tape
//	groundtruth/ — symbolic differentiation as the reference engine
//	oracle/      — pairwise gradient comparison and verdicts
//	harness/     — per-input orchestration, skip accounting, failure policy
//	cmd/gradfuzz — run / repro / show CLI around the harness
//
// Quick taste:
//
//	e, _ := gen.Generate(data, gen.DefaultConfig())
//	res, _ := forward.New().Derive(e, []float64{1, 0.5})
//	// res.Gradient holds ∂e/∂x0, ∂e/∂x1
//
// Dive into the per-package docs for the invariants each layer keeps, and
// cmd/gradfuzz for corpus replay and artifact triage.
//
//	go get github.com/katalvlaran/gradfuzz
package gradfuzz
