package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heirclark/dayplan/pkg/pipeline"
	"github.com/heirclark/dayplan/pkg/schedule"
)

// layoutCommand creates the layout command for computing block placements.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		anchor  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "layout [day.toml]",
		Short: "Compute block placements from a schedule manifest",
		Long: `Compute block placements from a schedule manifest.

The layout command reads a day schedule (TOML or JSON), packs overlapping
blocks into side-by-side columns, and writes the resulting placements as a
layout.json file mapping block IDs to left/width fractions.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], output, anchor, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVar(&anchor, "anchor", "", "override the wake anchor (HH:MM)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runLayout loads the schedule, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input, output, anchor string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{SchedulePath: input}
	if anchor != "" {
		clock, err := schedule.ParseClock(anchor)
		if err != nil {
			return fmt.Errorf("parse anchor: %w", err)
		}
		opts.Anchor = &clock
	}

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	data, err := json.MarshalIndent(result.Layout, "", "  ")
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(result.Stats.BlockCount, len(result.Layout), result.CacheInfo.LayoutHit)
	printNewline()
	printNextStep("Render", "dayplan render "+input)

	return nil
}
