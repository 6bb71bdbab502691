package pet

// speciesGlyphs maps species and life stage to the display glyph used by the
// status outputs and the pet widget.
var speciesGlyphs = map[Species]map[LifecycleState]string{
	SpeciesBird:   {StateBaby: "🐣", StateChild: "🐥", StateAdult: "🐔"},
	SpeciesCat:    {StateBaby: "🐱", StateChild: "🐈", StateAdult: "🐯"},
	SpeciesDog:    {StateBaby: "🐶", StateChild: "🐕", StateAdult: "🐺"},
	SpeciesLizard: {StateBaby: "🦎", StateChild: "🐊", StateAdult: "🐉"},
	SpeciesFish:   {StateBaby: "🐟", StateChild: "🐠", StateAdult: "🦈"},
}

const (
	glyphDead     = "💀"
	glyphComplete = "🏆"
)

// Glyph returns the display glyph for the pet's species at its current life
// stage. Dead and completed pets share a glyph across species.
func (s State) Glyph() string {
	switch s.Lifecycle {
	case StateDead:
		return glyphDead
	case StateComplete:
		return glyphComplete
	}
	if stages, ok := speciesGlyphs[s.Species]; ok {
		return stages[s.Lifecycle]
	}
	return ""
}
