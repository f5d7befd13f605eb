// Package routine provides goroutine boundaries that contain panics.
//
// Features:
//   - Spawn/Join: run a function in a new goroutine and collect how it ended
//   - RunSafe/GoSafe: run a function synchronously/asynchronously, recovering panics
//   - Recover/NewRecovered: panic recovery with a captured stack trace
//
// A Local escalation (see package escalate) panics in the calling goroutine. Running the
// work through Spawn or GoSafe keeps that panic from taking down the rest of the process:
// Join returns it as an error that unwraps to the *escalate.Failure.
package routine
