package overlap

import (
	"reflect"
	"testing"

	"github.com/heirclark/dayplan/pkg/schedule"
)

func blk(id, start, end string) schedule.Block {
	return schedule.Block{ID: id, Start: schedule.MustClock(start), End: schedule.MustClock(end)}
}

func TestNormalize(t *testing.T) {
	anchor := schedule.MustClock("06:00")

	tests := []struct {
		name  string
		block schedule.Block
		want  Span
	}{
		{
			name:  "same day",
			block: blk("a", "09:00", "10:00"),
			want:  Span{ID: "a", Start: 180, End: 240},
		},
		{
			name:  "starts at anchor",
			block: blk("a", "06:00", "07:30"),
			want:  Span{ID: "a", Start: 0, End: 90},
		},
		{
			name:  "crosses midnight",
			block: blk("a", "23:00", "01:00"),
			want:  Span{ID: "a", Start: 1020, End: 1140},
		},
		{
			name:  "entirely before anchor",
			block: blk("a", "04:00", "05:30"),
			want:  Span{ID: "a", Start: 1320, End: 1410},
		},
		{
			name:  "ends exactly at anchor",
			block: blk("a", "22:00", "06:00"),
			want:  Span{ID: "a", Start: 960, End: 1440},
		},
		{
			// The midnight rule fires because end <= start, so a
			// same-instant block comes out one full day long.
			name:  "zero duration is pushed a day forward",
			block: blk("a", "08:00", "08:00"),
			want:  Span{ID: "a", Start: 120, End: 1560},
		},
		{
			name:  "wraps around the anchor",
			block: blk("a", "23:30", "06:30"),
			want:  Span{ID: "a", Start: 1050, End: 1470},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize([]schedule.Block{tt.block}, anchor)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeMidnightAnchor(t *testing.T) {
	// With a midnight anchor the offsets are plain minutes of day.
	got := Normalize([]schedule.Block{blk("a", "01:15", "02:00")}, 0)
	want := Span{ID: "a", Start: 75, End: 120}
	if got[0] != want {
		t.Errorf("Normalize() = %v, want %v", got[0], want)
	}
}

func TestSpanOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{
			name: "disjoint",
			a:    Span{Start: 0, End: 60},
			b:    Span{Start: 120, End: 180},
			want: false,
		},
		{
			name: "touching endpoints do not overlap",
			a:    Span{Start: 0, End: 60},
			b:    Span{Start: 60, End: 120},
			want: false,
		},
		{
			name: "partial overlap",
			a:    Span{Start: 0, End: 90},
			b:    Span{Start: 60, End: 120},
			want: true,
		},
		{
			name: "containment",
			a:    Span{Start: 0, End: 240},
			b:    Span{Start: 60, End: 120},
			want: true,
		},
		{
			name: "identical",
			a:    Span{Start: 30, End: 90},
			b:    Span{Start: 30, End: 90},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// Collision is symmetric.
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClusters(t *testing.T) {
	tests := []struct {
		name  string
		spans []Span
		want  [][]string // cluster IDs in order
	}{
		{
			name:  "empty",
			spans: nil,
			want:  nil,
		},
		{
			name:  "single span",
			spans: []Span{{ID: "a", Start: 0, End: 60}},
			want:  [][]string{{"a"}},
		},
		{
			name: "disjoint spans split",
			spans: []Span{
				{ID: "a", Start: 0, End: 60},
				{ID: "b", Start: 60, End: 120},
				{ID: "c", Start: 200, End: 260},
			},
			want: [][]string{{"a"}, {"b"}, {"c"}},
		},
		{
			name: "chained overlap stays together",
			spans: []Span{
				{ID: "a", Start: 0, End: 60},
				{ID: "b", Start: 30, End: 90},
				{ID: "c", Start: 80, End: 140},
			},
			want: [][]string{{"a", "b", "c"}},
		},
		{
			name: "long span bridges later pairs",
			spans: []Span{
				{ID: "long", Start: 0, End: 300},
				{ID: "a", Start: 30, End: 60},
				{ID: "b", Start: 90, End: 120},
				{ID: "after", Start: 300, End: 360},
			},
			want: [][]string{{"long", "a", "b"}, {"after"}},
		},
		{
			name: "input order does not matter",
			spans: []Span{
				{ID: "c", Start: 80, End: 140},
				{ID: "a", Start: 0, End: 60},
				{ID: "b", Start: 30, End: 90},
			},
			want: [][]string{{"a", "b", "c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clusters := Clusters(tt.spans)
			var got [][]string
			for _, c := range clusters {
				ids := make([]string, len(c))
				for i, sp := range c {
					ids[i] = sp.ID
				}
				got = append(got, ids)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Clusters() = %v, want %v", got, tt.want)
			}
		})
	}
}
