// Package render groups the output renderers for day schedules.
//
// # Overview
//
// Rendering happens after layout: the overlap engine assigns every block
// a horizontal placement, and the renderers here turn the day plus its
// placements into artifacts.
//
//   - [svg] draws the day as a vertical timeline with an hour ruler and
//     side-by-side blocks.
//   - [dot] emits the block conflict graph in Graphviz DOT and rasterizes
//     it through goccy/go-graphviz.
//
// # Usage
//
//	layout := overlap.Compute(day.Blocks, day.Anchor)
//	img := svg.Render(day, layout, svg.Options{})
//	dotSrc := dot.ToDOT(day)
package render
