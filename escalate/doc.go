// Package escalate turns unrecoverable synchronization failures into one of two outcomes.
//
// Policies:
//   - Local: panic with a *Failure, unwinding only the calling goroutine. Pair it with
//     routine.Spawn or routine.GoSafe so the panic stops at the goroutine boundary.
//   - Global: write a one-line banner to the error sink and terminate the process with
//     ExitCode ("mass panic").
//
// Nothing is ever retried. Poisoned locks and disconnected channels stay that way.
//
// Example:
//
//	v := escalate.UnwrapOrMass(strconv.Atoi(os.Getenv("WORKERS")))
//
// The process-wide Escalator can be replaced with SetDefault, e.g. to route banners
// through a *slog.Logger:
//
//	escalate.SetDefault(escalate.New(escalate.WithSink(slog.Default())))
package escalate
