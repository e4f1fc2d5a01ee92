package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBlockID is returned by [Day.Validate] when a block has no ID.
	// Every block must carry a caller-assigned identifier.
	ErrEmptyBlockID = errors.New("block ID must not be empty")

	// ErrDuplicateBlockID is returned by [Day.Validate] when two blocks in
	// the same day share an ID. IDs must be unique within one day so the
	// layout result can be keyed by them.
	ErrDuplicateBlockID = errors.New("duplicate block ID")

	// ErrUnknownKind is returned by [Day.Validate] for a block kind outside
	// [ValidKinds]. An empty kind is allowed and treated as KindCustom.
	ErrUnknownKind = errors.New("unknown block kind")
)

// Day is one day of scheduled blocks anchored to a wake time.
type Day struct {
	// Anchor is the wake-time reference all layout offsets are computed
	// from. A zero Anchor means midnight; use [DefaultAnchor] when the
	// source data carries no wake time.
	Anchor Clock `json:"anchor" bson:"anchor" toml:"anchor"`

	Blocks []Block `json:"blocks" bson:"blocks" toml:"blocks"`
}

// Validate checks structural integrity: non-empty unique block IDs and
// recognized kinds. It returns the first violation found.
func (d *Day) Validate() error {
	seen := make(map[string]bool, len(d.Blocks))
	for _, b := range d.Blocks {
		if b.ID == "" {
			return ErrEmptyBlockID
		}
		if seen[b.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateBlockID, b.ID)
		}
		seen[b.ID] = true
		if b.Kind != "" && !ValidKinds[b.Kind] {
			return fmt.Errorf("%w: %q (block %q)", ErrUnknownKind, b.Kind, b.ID)
		}
	}
	return nil
}

// Block returns the block with the given ID, or false if absent.
func (d *Day) Block(id string) (Block, bool) {
	for _, b := range d.Blocks {
		if b.ID == id {
			return b, true
		}
	}
	return Block{}, false
}
