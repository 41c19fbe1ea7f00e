// Package harness orchestrates one fuzz iteration: generate expressions
// from a byte stream, evaluate them across the backend adapters, run the
// configured oracle checks, and apply the failure policy.
//
// Overview:
//
//   - A Controller is built once per run from an explicit Config — every
//     recognized option is a struct field, no environment or global state.
//   - Run consumes one external byte stream. The leading
//     Generator.MaxVariables·8 bytes decode into input values (little
//     endian float64, rejected if non-finite, clamped in magnitude); the
//     remainder drives expression generation, one 32-byte stride per test
//     case so neighboring cases see different windows of the stream.
//   - Per case the controller steps Idle → Generating → Evaluating →
//     Comparing → Reporting → Idle. Generation failing with
//     gen.ErrInsufficientEntropy skips the case and returns to Idle —
//     that is normal fuzzing traffic, never an error of the run.
//   - A failed verdict either halts the run immediately with
//     ErrOracleMismatch (ModeHalt) or is recorded in the Report and the
//     run continues (ModeContinuous). Either way the Failure carries the
//     rendered expression, the inputs, and every failed verdict — enough
//     to reproduce from the original bytes.
//
// The controller owns its counters exclusively and updates them only
// between iterations; Run is synchronous and never blocks. Concurrent runs
// need one Controller each.
package harness
