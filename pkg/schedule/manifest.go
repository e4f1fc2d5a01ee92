package schedule

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load reads a day schedule from a manifest file. The format is chosen by
// extension: ".toml" or ".json". A TOML manifest looks like:
//
//	anchor = "06:00"
//
//	[[blocks]]
//	id    = "run"
//	title = "Morning run"
//	kind  = "workout"
//	start = "06:30"
//	end   = "07:15"
//
// The JSON form mirrors the same fields. If the manifest omits the anchor,
// [DefaultAnchor] is used. The returned Day is validated.
func Load(path string) (*Day, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}

	var m manifest
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse TOML schedule %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse JSON schedule %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported schedule format %q (want .toml or .json)", ext)
	}

	day := m.day()
	if err := day.Validate(); err != nil {
		return nil, fmt.Errorf("invalid schedule %s: %w", path, err)
	}
	return day, nil
}

// manifest is the on-disk shape of a Day. The anchor is a pointer so an
// omitted key is distinguishable from an explicit midnight anchor.
type manifest struct {
	Anchor *Clock  `json:"anchor" toml:"anchor"`
	Blocks []Block `json:"blocks" toml:"blocks"`
}

func (m manifest) day() *Day {
	day := &Day{Anchor: DefaultAnchor, Blocks: m.Blocks}
	if m.Anchor != nil {
		day.Anchor = *m.Anchor
	}
	return day
}
