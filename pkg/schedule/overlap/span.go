package overlap

import (
	"slices"

	"github.com/heirclark/dayplan/pkg/schedule"
)

// Span is a block's interval in anchor-relative minutes. Start is always
// non-negative; End is always strictly greater than Start after
// normalization.
type Span struct {
	ID    string
	Start int // minutes after the anchor
	End   int // minutes after the anchor, exclusive
}

// Duration returns the span length in minutes.
func (s Span) Duration() int { return s.End - s.Start }

// Overlaps reports whether two spans collide under half-open interval
// semantics: touching endpoints do not overlap.
func (s Span) Overlaps(o Span) bool {
	return s.End > o.Start && s.Start < o.End
}

// Normalize converts each block's wall-clock pair into a [Span] of minutes
// relative to anchor.
//
// Each clock is first taken modulo the day: a value earlier than the anchor
// is moved one day forward, so "23:00" with a "06:00" anchor becomes 1020,
// not -360. If the block's end then lands at or before its start, the end
// is moved one further day forward: the block is understood to cross
// midnight relative to the anchor.
//
// A same-instant block (wall-clock start equal to end) satisfies that same
// end-at-or-before-start condition and therefore comes out exactly one day
// long. This is a pass-through of the midnight rule, not a special case,
// and downstream behavior is pinned by tests.
func Normalize(blocks []schedule.Block, anchor schedule.Clock) []Span {
	spans := make([]Span, len(blocks))
	for i, b := range blocks {
		start := sinceAnchor(b.Start, anchor)
		end := sinceAnchor(b.End, anchor)
		if end <= start {
			end += schedule.MinutesPerDay
		}
		spans[i] = Span{ID: b.ID, Start: start, End: end}
	}
	return spans
}

// sinceAnchor returns the non-negative minute offset from anchor to c,
// wrapping past midnight when c is earlier in the wall-clock day.
func sinceAnchor(c, anchor schedule.Clock) int {
	raw := c.Minutes() - anchor.Minutes()
	if raw < 0 {
		raw += schedule.MinutesPerDay
	}
	return raw
}

// sortSpans orders spans by start ascending, end ascending on ties. The
// sort is stable, so spans identical in both keys keep input order.
func sortSpans(spans []Span) {
	slices.SortStableFunc(spans, func(a, b Span) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return a.End - b.End
	})
}

// Clusters groups spans into maximal runs of transitive overlap: each
// cluster's spans are reachable from one another through a chain of direct
// collisions, and spans in different clusters never collide. Clusters are
// returned in time order with their spans sorted by start.
//
// The layout engine flushes one cluster at a time; this helper exposes the
// same grouping for diagnostics and the conflict-graph renderer.
func Clusters(spans []Span) [][]Span {
	ordered := slices.Clone(spans)
	sortSpans(ordered)

	var clusters [][]Span
	var current []Span
	horizon := -1 // max end seen in the open cluster, -1 when none open
	for _, sp := range ordered {
		if horizon >= 0 && sp.Start >= horizon {
			clusters = append(clusters, current)
			current = nil
		}
		current = append(current, sp)
		if sp.End > horizon {
			horizon = sp.End
		}
	}
	if len(current) > 0 {
		clusters = append(clusters, current)
	}
	return clusters
}
