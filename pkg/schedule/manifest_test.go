package schedule

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "day.toml", `
anchor = "05:30"

[[blocks]]
id    = "run"
title = "Morning run"
kind  = "workout"
start = "06:30"
end   = "07:15"

[[blocks]]
id    = "breakfast"
kind  = "meal"
start = "07:30"
end   = "08:00"
`)

	day, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if day.Anchor != MustClock("05:30") {
		t.Errorf("anchor = %v, want 05:30", day.Anchor)
	}
	if len(day.Blocks) != 2 {
		t.Fatalf("blocks = %d, want 2", len(day.Blocks))
	}
	if day.Blocks[0].Start != MustClock("06:30") || day.Blocks[0].Kind != KindWorkout {
		t.Errorf("first block = %+v", day.Blocks[0])
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "day.json", `{
  "blocks": [
    {"id": "fast", "kind": "fast", "start": "20:00", "end": "12:00"}
  ]
}`)

	day, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if day.Anchor != DefaultAnchor {
		t.Errorf("anchor = %v, want default %v", day.Anchor, DefaultAnchor)
	}
	if len(day.Blocks) != 1 || day.Blocks[0].ID != "fast" {
		t.Errorf("blocks = %+v", day.Blocks)
	}
}

func TestLoadAnchorDefault(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    Clock
	}{
		{
			name: "omitted anchor defaults even when titles mention it",
			file: "day.toml",
			content: `
[[blocks]]
id    = "stretch"
title = "anchor stretch"
kind  = "workout"
start = "06:30"
end   = "07:00"
`,
			want: DefaultAnchor,
		},
		{
			name: "explicit midnight anchor is kept",
			file: "day.toml",
			content: `
anchor = "00:00"

[[blocks]]
id    = "sleep"
kind  = "sleep"
start = "23:00"
end   = "06:00"
`,
			want: MustClock("00:00"),
		},
		{
			name:    "explicit midnight anchor in JSON is kept",
			file:    "day.json",
			content: `{"anchor": "00:00", "blocks": [{"id": "run", "start": "07:00", "end": "08:00"}]}`,
			want:    MustClock("00:00"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := Load(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if day.Anchor != tt.want {
				t.Errorf("anchor = %v, want %v", day.Anchor, tt.want)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "unsupported extension",
			file:    "day.yaml",
			content: "anchor: 06:00",
		},
		{
			name:    "malformed clock",
			file:    "day.toml",
			content: "[[blocks]]\nid = \"x\"\nstart = \"9:00\"\nend = \"10:00\"\n",
		},
		{
			name:    "duplicate IDs",
			file:    "day.json",
			content: `{"blocks":[{"id":"x","start":"09:00","end":"10:00"},{"id":"x","start":"11:00","end":"12:00"}]}`,
		},
		{
			name:    "invalid TOML",
			file:    "day.toml",
			content: "[[blocks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Load should fail")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}
