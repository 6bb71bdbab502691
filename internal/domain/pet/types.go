package pet

type LifecycleState string

const (
	StateBaby     LifecycleState = "BABY"
	StateChild    LifecycleState = "CHILD"
	StateAdult    LifecycleState = "ADULT"
	StateComplete LifecycleState = "COMPLETE"
	StateDead     LifecycleState = "DEAD"
)

type Species string

const (
	SpeciesBird   Species = "bird"
	SpeciesCat    Species = "cat"
	SpeciesDog    Species = "dog"
	SpeciesLizard Species = "lizard"
	SpeciesFish   Species = "fish"
)

// AllSpecies lists every species in catalog order. Creation picks from this
// slice, so its order is part of the deterministic-picker contract.
var AllSpecies = []Species{SpeciesBird, SpeciesCat, SpeciesDog, SpeciesLizard, SpeciesFish}

// State is the complete simulation state for one user's pet.
type State struct {
	Lifecycle   LifecycleState `json:"state"`
	Species     Species        `json:"species"`
	Name        string         `json:"name"`
	Stamina     int            `json:"stamina"`
	Happiness   int            `json:"happiness"`
	Health      int            `json:"health"`
	Turn        int            `json:"turn"`
	DeathReason string         `json:"deathReason,omitempty"`
}

// Terminal reports whether no further simulation applies to the pet.
func (s State) Terminal() bool {
	return s.Lifecycle == StateDead || s.Lifecycle == StateComplete
}

// Effect is the fixed stat delta triple carried by one food or activity token.
type Effect struct {
	Stamina   int
	Happiness int
	Health    int
}

// AchievementState is the per-user set of unlocked achievement ids.
type AchievementState struct {
	Unlocked []string `json:"unlockedAchievements"`
}

// NewAchievementState returns an empty unlocked set.
func NewAchievementState() AchievementState {
	return AchievementState{Unlocked: []string{}}
}

// Has reports whether the given achievement id is already unlocked.
func (a AchievementState) Has(id string) bool {
	for _, unlocked := range a.Unlocked {
		if unlocked == id {
			return true
		}
	}
	return false
}

// Achievement is one entry of the static catalog.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Glyph       string `json:"emoji"`
}
