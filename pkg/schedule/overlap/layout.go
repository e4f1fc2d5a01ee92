package overlap

import (
	"fmt"

	"github.com/heirclark/dayplan/pkg/schedule"
)

// Placement is one block's horizontal geometry on the timeline, as
// fractions of the full timeline width. Left is in [0,1), Width in (0,1],
// and Left+Width never exceeds 1. Renderers multiply by their pixel width.
type Placement struct {
	Left  float64 `json:"left" bson:"left"`
	Width float64 `json:"width" bson:"width"`
}

// fullWidth is the fallback placement for a block the sweep somehow failed
// to place. Every block is placed by construction, so handing this out is
// a bug; it exists to keep the result total rather than to be correct.
var fullWidth = Placement{Left: 0, Width: 1}

// Compute lays out one day of blocks. It returns a placement for every
// block ID in the input, including empty input (empty map).
//
// Blocks are normalized against anchor (see [Normalize]), sorted by start
// then end, and swept once left to right. The sweep keeps a list of open
// columns and a live horizon, the latest end time seen in the cluster being
// built. A span starting at or after the horizon cannot overlap anything
// already open, so the cluster is finalized and a fresh one begins. Within
// a cluster each span goes to the first column whose most recent span it
// does not overlap, or opens a new column.
//
// Finalizing a cluster converts columns into fractions: a span in column i
// of n gets Left i/n, and its Width is span/n where span counts column i
// plus every following column containing nothing the span collides with,
// stopping at the first conflict. That rightward gap-fill is what lets a
// block that merely starts a cluster stretch across lanes it does not
// actually contend for.
func Compute(blocks []schedule.Block, anchor schedule.Clock) map[string]Placement {
	out := make(map[string]Placement, len(blocks))

	spans := Normalize(blocks, anchor)
	sortSpans(spans)

	var columns [][]Span
	horizon := -1 // max end in the open cluster, -1 when none open
	for _, sp := range spans {
		if horizon >= 0 && sp.Start >= horizon {
			resolveWidths(columns, out)
			columns = nil
		}

		placed := false
		for i := range columns {
			last := columns[i][len(columns[i])-1]
			if !last.Overlaps(sp) {
				columns[i] = append(columns[i], sp)
				placed = true
				break
			}
		}
		if !placed {
			columns = append(columns, []Span{sp})
		}

		if sp.End > horizon {
			horizon = sp.End
		}
	}
	resolveWidths(columns, out)

	// Total-coverage guarantee. Unreachable in practice: the sweep places
	// every span and resolveWidths emits every placed span.
	for _, b := range blocks {
		if _, ok := out[b.ID]; !ok {
			out[b.ID] = fullWidth
		}
	}
	return out
}

// TimedBlock is the string form of a schedule entry, for callers holding
// raw "HH:MM" values rather than parsed [schedule.Block]s.
type TimedBlock struct {
	ID    string
	Start string
	End   string
}

// ComputeLayout is the string-level form of [Compute]. Clock values are
// parsed fail-fast: the first malformed one aborts with an error naming
// the offending block. An empty anchor uses [schedule.DefaultAnchor].
func ComputeLayout(blocks []TimedBlock, anchor string) (map[string]Placement, error) {
	wake := schedule.DefaultAnchor
	if anchor != "" {
		parsed, err := schedule.ParseClock(anchor)
		if err != nil {
			return nil, fmt.Errorf("anchor: %w", err)
		}
		wake = parsed
	}

	parsed := make([]schedule.Block, 0, len(blocks))
	for _, tb := range blocks {
		start, err := schedule.ParseClock(tb.Start)
		if err != nil {
			return nil, fmt.Errorf("block %q start: %w", tb.ID, err)
		}
		end, err := schedule.ParseClock(tb.End)
		if err != nil {
			return nil, fmt.Errorf("block %q end: %w", tb.ID, err)
		}
		parsed = append(parsed, schedule.Block{ID: tb.ID, Start: start, End: end})
	}

	return Compute(parsed, wake), nil
}

// resolveWidths finalizes one cluster, emitting a placement for every span
// in columns. Each span's width expands rightward from its own column
// through consecutive columns it has no collision in.
func resolveWidths(columns [][]Span, out map[string]Placement) {
	n := len(columns)
	if n == 0 {
		return
	}
	for i, col := range columns {
		for _, sp := range col {
			width := 1
			for j := i + 1; j < n; j++ {
				if overlapsColumn(columns[j], sp) {
					break
				}
				width++
			}
			out[sp.ID] = Placement{
				Left:  float64(i) / float64(n),
				Width: float64(width) / float64(n),
			}
		}
	}
}

// overlapsColumn reports whether sp collides with any span in col.
func overlapsColumn(col []Span, sp Span) bool {
	for _, other := range col {
		if sp.Overlaps(other) {
			return true
		}
	}
	return false
}
