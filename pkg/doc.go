// Package pkg provides the core libraries for dayplan schedule layout.
//
// # Overview
//
// Dayplan packs a day's schedule blocks (workouts, meals, fasting windows,
// sleep) into side-by-side columns so overlapping blocks render without
// collisions, the way calendar apps draw a busy day. The pkg directory is
// organized into five main areas:
//
//  1. [schedule] - Domain model (clocks, blocks, manifests) and the
//     overlap layout engine ([schedule/overlap])
//  2. [render] - Output renderers (SVG timeline, Graphviz conflict graph)
//  3. [pipeline] - Orchestration (load → layout → render) with caching
//  4. [cache] - Cache backends (file, Redis, MongoDB) and key derivation
//  5. [httpapi] - HTTP surface for the layout engine
//
// # Architecture
//
// The typical data flow through dayplan:
//
//	Schedule manifest (TOML/JSON)
//	         ↓
//	    [schedule] package (parse + validate)
//	         ↓
//	    [schedule/overlap] package (normalize, cluster, assign columns)
//	         ↓
//	    [render] package (SVG timeline, DOT conflict graph)
//	         ↓
//	    SVG/PNG/DOT/JSON output
//
// # Quick Start
//
//	day, err := schedule.Load("day.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	layout := overlap.Compute(day.Blocks, day.Anchor)
//	svgData := svg.Render(day, layout, svg.Options{})
//
// Supporting packages: [errors] carries structured error codes across the
// CLI and API, [observability] exposes hook points for instrumenting the
// pipeline, and [buildinfo] holds version metadata injected at build time.
package pkg
