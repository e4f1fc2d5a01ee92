// Package dot exports a day's block conflict graph in Graphviz DOT format.
//
// Nodes are schedule blocks, undirected edges are time collisions, and each
// overlap cluster becomes a DOT subgraph cluster. The view exists for
// debugging dense days: it shows at a glance which blocks contend for
// horizontal space and why the packer opened the columns it did.
package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/heirclark/dayplan/pkg/schedule"
	"github.com/heirclark/dayplan/pkg/schedule/overlap"
)

// ToDOT converts a day's conflict graph to Graphviz DOT. The result can be
// rendered with [RenderSVG] or [RenderPNG], or fed to any Graphviz tool.
func ToDOT(day *schedule.Day) string {
	var buf bytes.Buffer
	buf.WriteString("graph conflicts {\n")
	buf.WriteString("  layout=fdp;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	spans := overlap.Normalize(day.Blocks, day.Anchor)
	for i, cluster := range overlap.Clusters(spans) {
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
		buf.WriteString("    color=grey;\n")

		for _, sp := range cluster {
			block, _ := day.Block(sp.ID)
			fmt.Fprintf(&buf, "    %q [label=%q];\n", sp.ID, nodeLabel(block))
		}
		for a := 0; a < len(cluster); a++ {
			for b := a + 1; b < len(cluster); b++ {
				if cluster[a].Overlaps(cluster[b]) {
					fmt.Fprintf(&buf, "    %q -- %q;\n", cluster[a].ID, cluster[b].ID)
				}
			}
		}

		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeLabel renders a block as "title\nstart-end".
func nodeLabel(b schedule.Block) string {
	return fmt.Sprintf("%s\n%s-%s", b.DisplayTitle(), b.Start, b.End)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
