package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heirclark/dayplan/pkg/pipeline"
	"github.com/heirclark/dayplan/pkg/schedule"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path (or base path for multiple formats)
	formats []string // output formats: "svg", "png", "dot", "json"
	anchor  string   // wake anchor override (HH:MM)
	width   float64  // viewport width in pixels
	height  float64  // viewport height in pixels
	noCache bool     // disable result caching
}

// renderCommand creates the render command for generating timeline artifacts.
// It supports SVG timelines, Graphviz conflict graphs (DOT, PNG), and raw
// layout JSON.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		width:  pipeline.DefaultWidth,
		height: pipeline.DefaultHeight,
	}

	cmd := &cobra.Command{
		Use:   "render [day.toml]",
		Short: "Render a day schedule to timeline artifacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot, json (comma-separated)")
	cmd.Flags().StringVar(&opts.anchor, "anchor", "", "override the wake anchor (HH:MM)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "frame width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "frame height")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output carries a
// format extension (.svg, .png, ...), it strips that extension so multiple
// formats can share the base.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender runs the pipeline and writes one file per requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		SchedulePath: input,
		Formats:      opts.formats,
		Width:        opts.width,
		Height:       opts.height,
	}
	if opts.anchor != "" {
		clock, err := schedule.ParseClock(opts.anchor)
		if err != nil {
			return fmt.Errorf("parse anchor: %w", err)
		}
		pipeOpts.Anchor = &clock
	}

	spinner := newSpinnerWithContext(ctx, "Rendering timeline...")
	spinner.Start()

	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if len(opts.formats) == 1 && opts.output != "" {
		if err := writeArtifact(opts.output, result.Artifacts[opts.formats[0]]); err != nil {
			return err
		}
		printSuccess("Render complete")
		printFile(opts.output)
		printStats(result.Stats.BlockCount, len(result.Layout), result.CacheInfo.RenderHit)
		return nil
	}

	base := basePath(opts.output, input)
	printSuccess("Render complete")
	for _, format := range opts.formats {
		path := base + "." + format
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}
	printStats(result.Stats.BlockCount, len(result.Layout), result.CacheInfo.RenderHit)
	return nil
}

func writeArtifact(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}
