// Package svg renders a day schedule and its computed overlap layout as a
// vertical single-day timeline SVG: an hour ruler on the left, blocks as
// rounded rectangles placed by their layout fractions on the right.
//
// Output is deterministic for identical input, so artifacts are cacheable
// by content hash.
package svg

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/heirclark/dayplan/pkg/schedule"
	"github.com/heirclark/dayplan/pkg/schedule/overlap"
)

// Default viewport geometry.
const (
	DefaultWidth  = 420.0
	DefaultHeight = 960.0

	rulerWidth = 56.0 // gutter for the hour labels
	margin     = 16.0
	blockGap   = 2.0 // horizontal breathing room between adjacent blocks
	cornerR    = 4.0
	fontFamily = "Helvetica, Arial, sans-serif"
)

// kindFills maps block kinds to their fill colors. Unknown and custom
// kinds share the neutral fill.
var kindFills = map[string]string{
	schedule.KindWorkout: "#e8734a",
	schedule.KindMeal:    "#4a90e8",
	schedule.KindFast:    "#8a6fc9",
	schedule.KindSleep:   "#3d4a66",
	schedule.KindCustom:  "#7a8699",
}

// Options configures the rendered viewport.
type Options struct {
	Width  float64 // total SVG width in pixels; DefaultWidth when 0
	Height float64 // total SVG height in pixels; DefaultHeight when 0
}

// Render produces the timeline SVG for day using the given layout, which
// must cover every block ID in the day (as [overlap.Compute] guarantees).
//
// The vertical axis spans from the first block's start to the last block's
// end, rounded outward to whole hours, measured from the day's anchor. A
// day with no blocks renders the ruler only, covering one hour from the
// anchor.
func Render(day *schedule.Day, layout map[string]overlap.Placement, opts Options) []byte {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}

	spans := overlap.Normalize(day.Blocks, day.Anchor)
	startMin, endMin := extent(spans)

	laneX := margin + rulerWidth
	laneW := opts.Width - laneX - margin
	trackY := margin
	trackH := opts.Height - 2*margin
	scale := trackH / float64(endMin-startMin)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height)
	fmt.Fprintf(&buf, `  <rect width="%.0f" height="%.0f" fill="#fafafa"/>`+"\n", opts.Width, opts.Height)

	// Hour ruler. Lines and labels at every whole hour inside the extent.
	for m := startMin; m <= endMin; m += 60 {
		y := trackY + float64(m-startMin)*scale
		fmt.Fprintf(&buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#d8d8d8" stroke-width="1"/>`+"\n",
			laneX, y, opts.Width-margin, y)
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="11" fill="#666" text-anchor="end">%s</text>`+"\n",
			laneX-8, y+4, fontFamily, clockAt(day.Anchor, m))
	}

	// Blocks, in input order so output is stable.
	for i, b := range day.Blocks {
		sp := spans[i]
		p := layout[b.ID]

		x := laneX + p.Left*laneW
		w := p.Width*laneW - blockGap
		if w < 1 {
			w = 1
		}
		y := trackY + float64(sp.Start-startMin)*scale
		h := float64(sp.Duration()) * scale
		if h < 1 {
			h = 1
		}

		fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.0f" fill="%s" fill-opacity="0.9"/>`+"\n",
			x, y, w, h, cornerR, fillFor(b.Kind))
		if h >= 14 {
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="12" fill="#fff">%s</text>`+"\n",
				x+6, y+13, fontFamily, escape(b.DisplayTitle()))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// extent returns the rendered minute range, rounded outward to whole hours.
// Empty input covers the first hour after the anchor.
func extent(spans []overlap.Span) (start, end int) {
	if len(spans) == 0 {
		return 0, 60
	}
	start, end = spans[0].Start, spans[0].End
	for _, sp := range spans[1:] {
		if sp.Start < start {
			start = sp.Start
		}
		if sp.End > end {
			end = sp.End
		}
	}
	start = (start / 60) * 60
	if end%60 != 0 {
		end = (end/60 + 1) * 60
	}
	return start, end
}

// clockAt formats the wall-clock label for an anchor-relative minute.
func clockAt(anchor schedule.Clock, minutes int) string {
	total := (anchor.Minutes() + minutes) % schedule.MinutesPerDay
	return schedule.Clock(total).String()
}

func fillFor(kind string) string {
	if fill, ok := kindFills[kind]; ok {
		return fill
	}
	return kindFills[schedule.KindCustom]
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string {
	return escaper.Replace(s)
}
