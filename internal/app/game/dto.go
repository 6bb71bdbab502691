package game

import (
	"chatagotchi/internal/app/ports"
	"chatagotchi/internal/domain/pet"
)

// Event types recorded into the per-user history log.
const (
	EventGameStarted         = "game_started"
	EventPetFed              = "pet_fed"
	EventPetPlayed           = "pet_played"
	EventPetDied             = "pet_died"
	EventPetCompleted        = "pet_completed"
	EventAchievementUnlocked = "achievement_unlocked"
)

// Result is the structured outcome of one mutating game operation.
type Result struct {
	Pet             pet.State `json:"petState"`
	NewAchievements []string  `json:"newAchievements"`
	Message         string    `json:"message"`
}

// AchievementsResult lists the static catalog alongside the user's unlocks.
type AchievementsResult struct {
	Achievements         []pet.Achievement `json:"achievements"`
	UnlockedAchievements []string          `json:"unlockedAchievements"`
	UnlockedCount        int               `json:"unlockedCount"`
	TotalCount           int               `json:"totalCount"`
}

// StatusResult is a read-only snapshot; Pet is nil when no game has been
// started.
type StatusResult struct {
	Pet   *pet.State `json:"petState"`
	Glyph string     `json:"glyph,omitempty"`
}

// HistoryResult carries recent game events, newest first.
type HistoryResult struct {
	Events []ports.GameEvent `json:"events"`
}
