// Package scale implements the ratio algebra that underpins every tick
// quantity in this module.
//
// A tick base is a rational number of seconds per tick (for time-like
// quantities) or ticks per second (for rate-like quantities), expressed as a
// reduced fraction of two 32-bit numerators. All conversions between tick
// bases reduce to a single multiply-then-divide by a precomputed factor pair,
// carried out on 128-bit intermediates so that no representable conversion is
// ever lost to internal overflow.
//
// The package deliberately avoids floating point. Every operation is exact
// up to the documented truncation toward zero of the final division.
package scale
