// Package overlap computes the column-packing layout that places a day of
// possibly-overlapping schedule blocks side by side on a single vertical
// timeline, in the style consumer calendar UIs use for concurrent events.
//
// # Overview
//
// [Compute] is the whole engine: a pure, synchronous function from a block
// list and a wake-time anchor to a per-block horizontal placement. It holds
// no state between calls and performs no I/O; identical input always yields
// identical output.
//
// The pipeline inside Compute:
//
//  1. Normalize: convert each wall-clock pair into integer minutes relative
//     to the anchor, resolving midnight wraparound (see [Normalize]).
//  2. Order: sort by start ascending, end ascending on ties (stable).
//  3. Sweep: assign each span to the first open column whose most recent
//     span it does not overlap, flushing a cluster whenever a span starts
//     at or after everything seen so far has ended.
//  4. Resolve widths: expand each span rightward through empty neighboring
//     columns, then convert column index and span count into fractions of
//     the full timeline width.
//
// # Greedy placement
//
// Column assignment is first-fit against each column's most recently added
// span only. Because spans are processed in start order this matches the
// familiar calendar behavior, but it is a heuristic: it does not minimize
// the column count, and contrived inputs can pack a span into a column that
// a human would place elsewhere. That behavior is intentional and pinned by
// tests; do not "improve" it without revisiting the rendered layouts that
// depend on it.
//
// # Wake anchor
//
// Offsets are measured from the day's wake time rather than midnight so
// that overnight blocks stay contiguous. A span whose end would land at or
// before its start is pushed one full day forward. A same-instant block
// (start equal to end on the wall clock) trips that same rule and comes out
// a full day long; see the Normalize documentation.
package overlap
