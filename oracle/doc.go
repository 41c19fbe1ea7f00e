// Package oracle decides whether two derivative results agree, and by how
// much they miss.
//
// Overview:
//
//   - Compare takes two eval.Results for the same expression and inputs and
//     produces a Verdict for one CheckKind (reverse vs forward, reverse vs
//     ground truth, forward vs ground truth).
//   - Agreement is a hybrid tolerance per component, value and every
//     gradient slot alike: |a-b| ≤ AbsTolerance, or |a-b| ≤
//     RelTolerance·max(|a|,|b|). The defaults (1e-6 absolute, 1e-4
//     relative) absorb float64 rounding across differently-ordered
//     computations without masking genuine divergence.
//   - Non-finite components are policy, not arithmetic: under the default
//     strict policy a NaN only matches a NaN and an infinity only matches
//     an infinity of the same sign; the lenient policy accepts any shared
//     non-finiteness. Consistent non-finiteness is never a bug —
//     inconsistent non-finiteness always is.
//   - MaxAbsDiff/MaxRelDiff are computed over all components regardless of
//     pass/fail, so a report can rank near-misses.
//
// Compare is symmetric: Compare(a, b, k) and Compare(b, a, k) always agree
// on Passed. Inputs are never mutated.
package oracle
