// Package tick provides fixed-point time quantities for systems that count
// hardware timer ticks: Duration (a span of ticks), Instant (a point on a
// free-running, wrapping counter), and Rate (a frequency in counts per
// second).
//
// Every quantity carries its tick base in its type, as a scale.Scale type
// parameter, next to an unsigned 32- or 64-bit tick count. Quantities with
// different bases are different Go types, so accidental cross-base
// arithmetic does not compile; deliberate cross-base operations go through
// the package-level functions (Add, Compare, ConvertDuration, ...), which
// rebase one operand exactly using 128-bit intermediates.
//
// Conversions truncate toward zero: converting 1999 milliseconds to seconds
// yields 1 second. Checked operations return an additional bool that is
// false when the mathematical result does not fit the representation;
// unchecked operations wrap, matching the fixed-width unsigned arithmetic of
// the underlying counters.
//
// Quantities with different tick count widths never mix implicitly. Widen a
// 32-bit quantity to 64 bits first (Widen, WidenInstant, WidenRate), or
// narrow a 64-bit one with the checked Narrow variants.
package tick
