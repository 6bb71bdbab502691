package game

import (
	"strings"

	"chatagotchi/internal/domain/pet"
)

// NoPetMessage is what action endpoints return when the player has no pet
// yet; both transports render it next to a null pet state.
const NoPetMessage = "You need to start a game first!"

// achievementSuffix renders the unlock announcement appended to action
// messages, or "" when nothing was earned.
func achievementSuffix(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	glyphs := make([]string, 0, len(ids))
	for _, id := range ids {
		if glyph := pet.GlyphForAchievement(id); glyph != "" {
			glyphs = append(glyphs, glyph)
		}
	}
	return "\n\nAchievement Unlocked! " + strings.Join(glyphs, " ")
}

// actionMessage composes the user-facing message for an applied action.
// Death outranks completion outranks the action phrase.
func actionMessage(p pet.State, phrase string, earned []string) string {
	suffix := achievementSuffix(earned)
	switch p.Lifecycle {
	case pet.StateDead:
		return "Oh no! " + p.DeathReason + suffix
	case pet.StateComplete:
		return "Congratulations! " + p.Name + " has grown up!" + suffix
	default:
		return phrase + suffix
	}
}

// terminalMessage describes a pet that was already dead or grown before the
// action, which is rejected without simulation.
func terminalMessage(p pet.State) string {
	if p.Lifecycle == pet.StateDead {
		if p.DeathReason == "" {
			return "Your pet died!"
		}
		return "Your pet died! " + p.DeathReason
	}
	return "Your pet has grown up! Start a new game to raise another."
}
