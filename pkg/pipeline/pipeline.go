// Package pipeline provides the core layout pipeline for dayplan.
//
// This package implements the complete load → layout → render pipeline that
// can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate a day schedule from a manifest file
//  2. Layout: Compute the overlap packing for the day's blocks
//  3. Render: Generate output in various formats (SVG, PNG, DOT, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
// Layout and render results are cached by content hash, so re-running the
// pipeline over an unchanged schedule is cheap.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    SchedulePath: "day.toml",
//	    Formats:      []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/heirclark/dayplan/pkg/errors"
	"github.com/heirclark/dayplan/pkg/schedule"
	"github.com/heirclark/dayplan/pkg/schedule/overlap"
)

// Default values shared by CLI and API entry points.
const (
	// DefaultWidth is the default timeline viewport width in pixels.
	DefaultWidth = 420.0

	// DefaultHeight is the default timeline viewport height in pixels.
	DefaultHeight = 960.0

	// DefaultCacheTTL is how long cached layouts and artifacts stay fresh.
	// Schedules change rarely within a day, so an hour is a safe default.
	DefaultCacheTTL = time.Hour
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"  // single-day timeline
	FormatPNG  = "png"  // conflict graph rasterized via Graphviz
	FormatDOT  = "dot"  // conflict graph source
	FormatJSON = "json" // raw layout fractions keyed by block ID
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// Options configures a pipeline run. Exactly one of SchedulePath or Day
// must be set: the CLI hands over file paths, the API hands over decoded
// request bodies.
type Options struct {
	SchedulePath string        // manifest file to load
	Day          *schedule.Day // pre-loaded schedule, bypasses the load stage

	Anchor  *schedule.Clock // wake-time override; nil keeps the schedule's own anchor
	Formats []string        // output formats; empty means layout only

	Width  float64 // timeline viewport width, DefaultWidth when 0
	Height float64 // timeline viewport height, DefaultHeight when 0

	CacheTTL time.Duration // DefaultCacheTTL when 0
	Logger   *log.Logger   // overrides the runner's logger for this run
}

// ValidateAndSetDefaults checks the options and fills zero values in place.
func (o *Options) ValidateAndSetDefaults() error {
	if o.SchedulePath == "" && o.Day == nil {
		return errors.New(errors.ErrCodeInvalidInput, "either a schedule path or an in-memory day is required")
	}
	if o.SchedulePath != "" && o.Day != nil {
		return errors.New(errors.ErrCodeInvalidInput, "schedule path and in-memory day are mutually exclusive")
	}
	for _, f := range o.Formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", f)
		}
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	return nil
}

// Stats captures per-stage timings and schedule size.
type Stats struct {
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
	BlockCount int
}

// CacheInfo reports which stages were served from cache.
type CacheInfo struct {
	LayoutHit bool
	RenderHit bool
}

// Result is the output of a complete pipeline execution.
type Result struct {
	Day          *schedule.Day
	Layout       map[string]overlap.Placement
	ScheduleHash string // content hash of the normalized schedule input
	Artifacts    map[string][]byte
	Stats        Stats
	CacheInfo    CacheInfo
}
