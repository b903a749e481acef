package models

// Mood is an emoji plus a human-readable label, e.g. {😊 Happy}.
type Mood struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

// Catalog returns the fixed mood set offered by the capture flow.
// The storage layer does not validate membership; this list exists for
// pickers and for assigning accent colors.
func Catalog() []Mood {
	return []Mood{
		{"😊", "Happy"},
		{"😢", "Sad"},
		{"😰", "Anxious"},
		{"😡", "Angry"},
		{"😍", "Loved"},
		{"😎", "Cool"},
		{"🤔", "Thinking"},
		{"😴", "Sleepy"},
		{"😅", "Relieved"},
		{"😱", "Shocked"},
		{"😇", "Blessed"},
		{"🤗", "Hug"},
		{"😤", "Determined"},
		{"😜", "Playful"},
		{"🥳", "Celebrating"},
		{"😔", "Disappointed"},
		{"😐", "Neutral"},
		{"😬", "Awkward"},
		{"😭", "Crying"},
		{"😋", "Satisfied"},
	}
}

// MoodByLabel looks a mood up in the catalog by its label.
func MoodByLabel(label string) (Mood, bool) {
	for _, m := range Catalog() {
		if m.Label == label {
			return m, true
		}
	}
	return Mood{}, false
}

// AccentColor returns the hex background color associated with a mood label.
// Only a handful of moods carry one; the second result reports whether the
// label has a color at all.
func AccentColor(label string) (string, bool) {
	colors := map[string]string{
		"Happy":   "#fffbe6",
		"Sad":     "#e3f0ff",
		"Anxious": "#edeaff",
		"Angry":   "#ffeaea",
		"Loved":   "#fff0e6",
	}
	c, ok := colors[label]
	return c, ok
}
