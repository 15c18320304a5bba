package expense

import "strings"

// Category is one of a fixed set of expense categories. Persisted data may
// carry arbitrary legacy strings in its place; ParseCategory maps those to
// the closest known category and falls back to Other.
type Category string

const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Shopping      Category = "Shopping"
	Entertainment Category = "Entertainment"
	Health        Category = "Health"
	Bills         Category = "Bills"
	Travel        Category = "Travel"
	Other         Category = "Other"
)

var Categories = []Category{
	Food,
	Transport,
	Shopping,
	Entertainment,
	Health,
	Bills,
	Travel,
	Other,
}

var categoryEmojis = map[Category]string{
	Food:          "🍔",
	Transport:     "🚗",
	Shopping:      "🛍️",
	Entertainment: "🎬",
	Health:        "💊",
	Bills:         "💡",
	Travel:        "✈️",
	Other:         "📦",
}

func (c Category) Emoji() string {
	if e, ok := categoryEmojis[c]; ok {
		return e
	}
	return categoryEmojis[Other]
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory resolves a free-text category name, matching known
// categories case-insensitively. Anything unrecognized, including the
// legacy "Business" and "Personal" type values, resolves to Other.
func ParseCategory(name string) Category {
	name = strings.TrimSpace(name)
	for _, cat := range Categories {
		if strings.EqualFold(name, string(cat)) {
			return cat
		}
	}
	return Other
}
