package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/heirclark/dayplan/pkg/cache"
	"github.com/heirclark/dayplan/pkg/observability"
	"github.com/heirclark/dayplan/pkg/render/dot"
	"github.com/heirclark/dayplan/pkg/render/svg"
	"github.com/heirclark/dayplan/pkg/schedule"
	"github.com/heirclark/dayplan/pkg/schedule/overlap"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	day, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Day = day
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.BlockCount = len(day.Blocks)

	logger.Info("loaded schedule",
		"blocks", len(day.Blocks),
		"anchor", day.Anchor,
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	layout, scheduleHash, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, day, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = layout
	result.ScheduleHash = scheduleHash
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	logger.Info("computed layout",
		"blocks", len(layout),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	if len(opts.Formats) > 0 {
		renderStart := time.Now()
		artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, day, layout, opts)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		result.Artifacts = artifacts
		result.Stats.RenderTime = time.Since(renderStart)
		result.CacheInfo.RenderHit = renderHit

		logger.Info("rendered outputs",
			"formats", opts.Formats,
			"cached", renderHit,
			"duration", result.Stats.RenderTime)
	}

	return result, nil
}

// Load reads the day schedule, either from the manifest path or straight
// from the in-memory day, and applies the anchor override.
func (r *Runner) Load(ctx context.Context, opts Options) (*schedule.Day, error) {
	source := opts.SchedulePath
	if source == "" {
		source = "inline"
	}
	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, source)

	var day *schedule.Day
	var err error
	if opts.Day != nil {
		day = opts.Day
		err = day.Validate()
	} else {
		day, err = schedule.Load(opts.SchedulePath)
	}
	if err == nil && opts.Anchor != nil {
		clone := *day
		clone.Anchor = *opts.Anchor
		day = &clone
	}

	blockCount := 0
	if day != nil {
		blockCount = len(day.Blocks)
	}
	observability.Pipeline().OnLoadComplete(ctx, source, blockCount, time.Since(start), err)
	return day, err
}

// ComputeLayoutWithCacheInfo computes the overlap layout with caching and
// returns the schedule's content hash alongside cache hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, day *schedule.Day, opts Options) (map[string]overlap.Placement, string, bool, error) {
	scheduleHash, err := hashDay(day)
	if err != nil {
		return nil, "", false, err
	}
	key := r.Keyer.LayoutKey(scheduleHash, cache.LayoutKeyOpts{Anchor: day.Anchor.String()})

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		var cached map[string]overlap.Placement
		if err := json.Unmarshal(data, &cached); err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			return cached, scheduleHash, true, nil
		}
		// Corrupt entry: drop it and recompute.
		_ = r.Cache.Delete(ctx, key)
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, len(day.Blocks))
	layout := overlap.Compute(day.Blocks, day.Anchor)
	observability.Pipeline().OnLayoutComplete(ctx, len(day.Blocks), time.Since(start), nil)

	if data, err := json.Marshal(layout); err == nil {
		if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}
	return layout, scheduleHash, false, nil
}

// ComputeLayout computes the overlap layout with caching.
func (r *Runner) ComputeLayout(ctx context.Context, day *schedule.Day, opts Options) (map[string]overlap.Placement, error) {
	layout, _, _, err := r.ComputeLayoutWithCacheInfo(ctx, day, opts)
	return layout, err
}

// RenderWithCacheInfo generates the requested artifacts with per-format
// caching. The hit flag is true only when every format was served from
// cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, day *schedule.Day, layout map[string]overlap.Placement, opts Options) (map[string][]byte, bool, error) {
	layoutData, err := json.Marshal(layout)
	if err != nil {
		return nil, false, err
	}
	layoutHash := cache.Hash(layoutData)

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)

	artifacts := make(map[string][]byte, len(opts.Formats))
	allHit := true
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(layoutHash, cache.ArtifactKeyOpts{
			Format: format,
			Width:  opts.Width,
			Height: opts.Height,
		})
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
			continue
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
		allHit = false

		data, err := renderFormat(day, layout, format, opts)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, allHit && len(opts.Formats) > 0, nil
}

// renderFormat produces one artifact.
func renderFormat(day *schedule.Day, layout map[string]overlap.Placement, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return svg.Render(day, layout, svg.Options{Width: opts.Width, Height: opts.Height}), nil
	case FormatDOT:
		return []byte(dot.ToDOT(day)), nil
	case FormatPNG:
		return dot.RenderPNG(dot.ToDOT(day))
	case FormatJSON:
		return json.MarshalIndent(layout, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// Close releases the cache backend.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// logger returns the per-run logger when set, else the runner's.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

// hashDay hashes the schedule content that layout depends on: the anchor
// and every block's ID and times. Titles and kinds are included too since
// they flow into rendered artifacts keyed off the same schedule.
func hashDay(day *schedule.Day) (string, error) {
	data, err := json.Marshal(day)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}
