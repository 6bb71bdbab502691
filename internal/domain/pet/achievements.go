package pet

import "strings"

// Catalog is the static achievement set: one per species raised to
// completion, one per discovered death cause.
var Catalog = []Achievement{
	{ID: "species_bird", Title: "Bird Whisperer", Description: "Raise a bird to adulthood", Glyph: "🐔"},
	{ID: "species_cat", Title: "Cat Person", Description: "Raise a cat to adulthood", Glyph: "🐯"},
	{ID: "species_dog", Title: "Dog Lover", Description: "Raise a dog to adulthood", Glyph: "🐺"},
	{ID: "species_lizard", Title: "Dragon Tamer", Description: "Raise a lizard to adulthood", Glyph: "🐉"},
	{ID: "species_fish", Title: "Marine Biologist", Description: "Raise a fish to adulthood", Glyph: "🦈"},
	{ID: "death_starved", Title: "Hunger Strike", Description: "Experience death by starvation", Glyph: "🍽️"},
	{ID: "death_sadness", Title: "Heartbreak", Description: "Experience death by sadness", Glyph: "😢"},
	{ID: "death_health", Title: "Medical Mystery", Description: "Experience death by poor health", Glyph: "🏥"},
	{ID: "death_skiing", Title: "Tree Hugger", Description: "Discover the skiing accident", Glyph: "🎿"},
	{ID: "death_overeating", Title: "Glutton", Description: "Discover death by overeating", Glyph: "🍕"},
	{ID: "death_baby_skiing", Title: "Bad Parenting", Description: "Take a baby skiing", Glyph: "👶"},
}

// deathCategories maps a death-reason substring to its achievement id,
// checked in priority order; only the first match counts.
var deathCategories = []struct {
	substring string
	id        string
}{
	{"starved", "death_starved"},
	{"sadness", "death_sadness"},
	{"health", "death_health"},
	{"crashed into a tree", "death_skiing"},
	{"overeating", "death_overeating"},
	{"baby shouldn't be on the slopes", "death_baby_skiing"},
}

// CheckAchievements returns ids newly earned by the given post-action state.
// It never returns an id already present in achievements and never mutates
// its inputs. The slice contract allows multiple ids per call even though
// COMPLETE and DEAD are mutually exclusive today.
func CheckAchievements(state State, achievements AchievementState) []string {
	var earned []string

	if state.Lifecycle == StateComplete {
		id := "species_" + string(state.Species)
		if !achievements.Has(id) {
			earned = append(earned, id)
		}
	}

	if state.Lifecycle == StateDead && state.DeathReason != "" {
		for _, category := range deathCategories {
			if strings.Contains(state.DeathReason, category.substring) {
				if !achievements.Has(category.id) {
					earned = append(earned, category.id)
				}
				break
			}
		}
	}

	return earned
}

// GlyphForAchievement returns the catalog glyph for an achievement id, or ""
// when the id is unknown.
func GlyphForAchievement(id string) string {
	for _, a := range Catalog {
		if a.ID == id {
			return a.Glyph
		}
	}
	return ""
}
