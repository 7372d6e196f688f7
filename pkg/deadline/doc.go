// Package deadline schedules wall-clock expiry for tick-quantified
// timeouts.
//
// Timeouts arrive as tick durations in whatever base the caller measures
// in; the manager converts them to wall time once, at arming, and fires the
// expiry callback when they elapse. This keeps the tick algebra on the hot
// path and the wall clock at the edge.
//
// # Timer Replacement
//
// Arming a name that already has a pending timer replaces it. There is no
// stacking or accumulation.
//
// # Cancellation
//
// Cancelled timers never fire their callback. CancelAll is intended for
// teardown, e.g. when the counter source goes away.
package deadline
