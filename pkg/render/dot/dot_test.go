package dot

import (
	"strings"
	"testing"

	"github.com/heirclark/dayplan/pkg/schedule"
)

func TestToDOT(t *testing.T) {
	day := &schedule.Day{
		Anchor: schedule.DefaultAnchor,
		Blocks: []schedule.Block{
			{ID: "run", Title: "Run", Start: schedule.MustClock("07:00"), End: schedule.MustClock("08:00")},
			{ID: "fast", Title: "Fast", Start: schedule.MustClock("07:30"), End: schedule.MustClock("09:30")},
			{ID: "lunch", Title: "Lunch", Start: schedule.MustClock("12:00"), End: schedule.MustClock("13:00")},
		},
	}

	out := ToDOT(day)

	if !strings.HasPrefix(out, "graph conflicts {") {
		t.Errorf("not an undirected graph: %.40s", out)
	}

	// Two clusters: {run, fast} and {lunch}.
	if got := strings.Count(out, "subgraph cluster_"); got != 2 {
		t.Errorf("cluster count = %d, want 2", got)
	}

	// The only collision edge.
	if !strings.Contains(out, `"run" -- "fast";`) {
		t.Error("missing run/fast collision edge")
	}
	if strings.Contains(out, `"lunch" --`) || strings.Contains(out, `-- "lunch"`) {
		t.Error("lunch should have no collision edges")
	}

	// Labels carry title and times.
	if !strings.Contains(out, `label="Run\n07:00-08:00"`) {
		t.Errorf("missing run label, got:\n%s", out)
	}
}

func TestToDOTEmptyDay(t *testing.T) {
	out := ToDOT(&schedule.Day{Anchor: schedule.DefaultAnchor})
	if !strings.Contains(out, "graph conflicts {") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("empty day should produce an empty graph, got:\n%s", out)
	}
	if strings.Contains(out, "subgraph") {
		t.Error("empty day should contain no clusters")
	}
}
