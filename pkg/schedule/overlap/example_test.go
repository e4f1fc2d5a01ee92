package overlap_test

import (
	"fmt"

	"github.com/heirclark/dayplan/pkg/schedule"
	"github.com/heirclark/dayplan/pkg/schedule/overlap"
)

func ExampleCompute() {
	// A run overlapping a fasting window, then a lone lunch.
	blocks := []schedule.Block{
		{ID: "fast", Start: schedule.MustClock("06:00"), End: schedule.MustClock("10:00")},
		{ID: "run", Start: schedule.MustClock("07:00"), End: schedule.MustClock("08:00")},
		{ID: "lunch", Start: schedule.MustClock("12:00"), End: schedule.MustClock("13:00")},
	}

	layout := overlap.Compute(blocks, schedule.DefaultAnchor)
	for _, id := range []string{"fast", "run", "lunch"} {
		p := layout[id]
		fmt.Printf("%-5s left=%.2f width=%.2f\n", id, p.Left, p.Width)
	}
	// Output:
	// fast  left=0.00 width=0.50
	// run   left=0.50 width=0.50
	// lunch left=0.00 width=1.00
}

func ExampleNormalize() {
	// An overnight block stays contiguous relative to the wake anchor.
	blocks := []schedule.Block{
		{ID: "sleep", Start: schedule.MustClock("23:00"), End: schedule.MustClock("06:00")},
	}

	spans := overlap.Normalize(blocks, schedule.DefaultAnchor)
	fmt.Println("start:", spans[0].Start, "end:", spans[0].End)
	// Output:
	// start: 1020 end: 1440
}
