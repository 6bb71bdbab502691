package game

import (
	"context"
	"errors"
	"strings"
	"time"

	"chatagotchi/internal/app/ports"
	"chatagotchi/internal/domain/pet"
)

var (
	ErrAuthInfoMissing = errors.New("auth info missing")
	ErrInvalidRequest  = errors.New("invalid game request")
)

// UseCase orchestrates one user's game: it loads the per-user record, runs
// the pet engine and achievement evaluator, and persists the outcome under
// an optimistic version check.
type UseCase struct {
	TxManager ports.TxManager
	Records   ports.GameRecordRepository
	Events    ports.EventRepository
	Metrics   ports.GameMetrics

	// PickSpecies overrides the random species draw; nil means uniform
	// random.
	PickSpecies func() pet.Species
	Now         func() time.Time
}

func (u UseCase) now() time.Time {
	if u.Now == nil {
		return time.Now()
	}
	return u.Now()
}

func (u UseCase) pickSpecies() pet.Species {
	if u.PickSpecies == nil {
		return pet.RandomSpecies(nil)
	}
	return u.PickSpecies()
}

// loadRecord treats an absent row as an empty record at version 0, so the
// first save creates it.
func (u UseCase) loadRecord(ctx context.Context, userID string) (ports.GameRecord, error) {
	record, err := u.Records.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ports.GameRecord{UserID: userID}, nil
		}
		return ports.GameRecord{}, err
	}
	return record, nil
}

func resolveUser(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", ErrAuthInfoMissing
	}
	return userID, nil
}

func achievementsOrEmpty(record ports.GameRecord) pet.AchievementState {
	if record.Achievements == nil {
		return pet.NewAchievementState()
	}
	return *record.Achievements
}

// StartNewGame creates a fresh pet, replacing any pet in progress. Unlocked
// achievements survive across games.
func (u UseCase) StartNewGame(ctx context.Context, userID, name string) (Result, error) {
	userID, err := resolveUser(userID)
	if err != nil {
		return Result{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Result{}, ErrInvalidRequest
	}

	newPet := pet.NewState(name, u.pickSpecies())

	var out Result
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		record, err := u.loadRecord(txCtx, userID)
		if err != nil {
			return err
		}
		achievements := achievementsOrEmpty(record)

		next := record
		next.Pet = &newPet
		next.Achievements = &achievements
		next.Version = record.Version + 1
		next.UpdatedAt = u.now()
		if err := u.Records.SaveWithVersion(txCtx, next, record.Version); err != nil {
			return err
		}
		if u.Events != nil {
			event := ports.GameEvent{
				Type:       EventGameStarted,
				OccurredAt: next.UpdatedAt,
				Payload:    map[string]any{"name": name, "species": string(newPet.Species)},
			}
			if err := u.Events.Append(txCtx, userID, []ports.GameEvent{event}); err != nil {
				return err
			}
		}
		out = Result{
			Pet:             newPet,
			NewAchievements: []string{},
			Message:         "Say hello to " + name,
		}
		return nil
	})
	if err != nil {
		u.recordError(err)
		return Result{}, err
	}
	return out, nil
}

func (u UseCase) recordError(err error) {
	if u.Metrics == nil {
		return
	}
	if errors.Is(err, ports.ErrConflict) {
		u.Metrics.RecordConflict()
		return
	}
	u.Metrics.RecordFailure()
}
