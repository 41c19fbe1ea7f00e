// Package gen turns an opaque byte stream into a well-formed expression
// tree, deterministically and within configured structural bounds.
//
// Overview:
//
//   - Generation is recursive descent with a decreasing depth budget. Each
//     node draws a small fixed-size decision from the stream to pick among
//     {leaf, unary, binary}; the odds of a leaf rise as the budget nears
//     zero, so the tree always terminates within Config.MaxDepth levels.
//   - Variable indices are drawn modulo Config.MaxVariables. Operators
//     disabled by the config (division, power, log) are excluded from the
//     candidate set before the draw, so no stream bytes are wasted on
//     choices that would be rejected.
//   - The stream is consumed strictly left to right and never past its end.
//     This keeps byte positions aligned with structural decisions, which is
//     what a coverage-guided mutation engine needs to steer generation.
//
// Determinism:
//
//	Generate(b, cfg) called twice with identical bytes and config yields
//	structurally identical trees. Crash artifacts therefore reproduce the
//	exact expression that failed.
//
// Errors (sentinel):
//
//   - ErrInsufficientEntropy if the stream runs dry before a subtree is
//     complete. Callers must treat this as "skip this input", never as a
//     failure of the system under test.
//   - ErrBadMaxDepth, ErrBadMaxVariables for invalid hand-built configs.
//
// Example usage:
//
//	e, err := gen.Generate(data, gen.NewConfig(gen.WithMaxDepth(4)))
//	if errors.Is(err, gen.ErrInsufficientEntropy) {
//	    return // skip, too few bytes for this shape
//	}
package gen
