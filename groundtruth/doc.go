// Package groundtruth adapts an independent reference differentiation
// engine to the same Engine surface as the AD backends under test.
//
// Overview:
//
//   - The reference engine differentiates symbolically: for each input
//     variable it builds the derivative expression tree by the textbook
//     rules, lightly simplified, and evaluates that tree numerically with
//     plain float64 arithmetic. It shares no code path with the dual-number
//     or tape engines — disagreement between them and this baseline points
//     at the engines, not at a common bug.
//   - The adapter treats the reference engine as a black box: same
//     operation vocabulary in, gradient of the same shape out. The harness
//     never sees the derivative trees.
//
// The derivative rules use the same local-partial conventions as the
// engines under test (abs differentiates to u/|u|, division to
// 1/v and -u/v²), so matching non-finite patterns at domain edges are a
// property of the rules, not luck. One convention is deliberately not
// shared: evaluation of the derivative trees keeps IEEE semantics, so a
// chain-rule product that is zero times infinity at runtime stays NaN here
// while the AD engines annihilate it. Strict-policy verdicts against this
// baseline on such inputs are real findings, not noise.
package groundtruth
