package game

import (
	"context"

	"chatagotchi/internal/app/ports"
	"chatagotchi/internal/domain/pet"
)

// Achievements returns the static catalog plus the user's unlocked set.
func (u UseCase) Achievements(ctx context.Context, userID string) (AchievementsResult, error) {
	userID, err := resolveUser(userID)
	if err != nil {
		return AchievementsResult{}, err
	}
	record, err := u.loadRecord(ctx, userID)
	if err != nil {
		return AchievementsResult{}, err
	}
	achievements := achievementsOrEmpty(record)
	return AchievementsResult{
		Achievements:         pet.Catalog,
		UnlockedAchievements: achievements.Unlocked,
		UnlockedCount:        len(achievements.Unlocked),
		TotalCount:           len(pet.Catalog),
	}, nil
}

// Status returns the current pet snapshot without simulating anything.
func (u UseCase) Status(ctx context.Context, userID string) (StatusResult, error) {
	userID, err := resolveUser(userID)
	if err != nil {
		return StatusResult{}, err
	}
	record, err := u.loadRecord(ctx, userID)
	if err != nil {
		return StatusResult{}, err
	}
	if record.Pet == nil {
		return StatusResult{}, nil
	}
	snapshot := *record.Pet
	return StatusResult{Pet: &snapshot, Glyph: snapshot.Glyph()}, nil
}

const defaultHistoryLimit = 50

// History lists recent game events for the user, newest first.
func (u UseCase) History(ctx context.Context, userID string, limit int) (HistoryResult, error) {
	userID, err := resolveUser(userID)
	if err != nil {
		return HistoryResult{}, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if u.Events == nil {
		return HistoryResult{Events: []ports.GameEvent{}}, nil
	}
	events, err := u.Events.ListByUserID(ctx, userID, limit)
	if err != nil {
		return HistoryResult{}, err
	}
	return HistoryResult{Events: events}, nil
}
