package schedule

// Block kinds. The vocabulary mirrors the activity types tracked by the
// surrounding application; KindCustom covers everything else.
const (
	KindWorkout = "workout"
	KindMeal    = "meal"
	KindFast    = "fast"
	KindSleep   = "sleep"
	KindCustom  = "custom"
)

// ValidKinds is the set of recognized block kinds.
var ValidKinds = map[string]bool{
	KindWorkout: true,
	KindMeal:    true,
	KindFast:    true,
	KindSleep:   true,
	KindCustom:  true,
}

// Block is a single scheduled activity on the day timeline.
//
// Start and End are wall-clock values. A block whose End is at or before
// its Start is understood to cross midnight relative to the day's anchor;
// the layout engine resolves that during normalization, so Block itself
// imposes no ordering between the two.
type Block struct {
	ID    string `json:"id" bson:"id" toml:"id"`
	Title string `json:"title,omitempty" bson:"title,omitempty" toml:"title,omitempty"`
	Kind  string `json:"kind,omitempty" bson:"kind,omitempty" toml:"kind,omitempty"`
	Start Clock  `json:"start" bson:"start" toml:"start"`
	End   Clock  `json:"end" bson:"end" toml:"end"`
}

// DisplayTitle returns the title if set, otherwise the ID.
func (b Block) DisplayTitle() string {
	if b.Title != "" {
		return b.Title
	}
	return b.ID
}
