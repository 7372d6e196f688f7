// Package ticklog captures timing traces built from tick quantities.
//
// A trace is a stream of events: counter samples, elapsed spans, and rate
// observations, each stamped with wall-clock time and the tick base it was
// measured in. Events are written as CBOR with integer keys, one event per
// frame, so traces stay compact and can be streamed without loading whole
// files.
//
// The Recorder is the usual entry point: it groups events under a trace ID
// and assigns monotonically increasing sequence numbers. Readers filter by
// trace, label, kind, or time window.
package ticklog
