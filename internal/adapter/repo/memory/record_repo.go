package memory

import (
	"context"

	"chatagotchi/internal/app/ports"
	"chatagotchi/internal/domain/pet"
)

type GameRecordRepo struct {
	store *Store
}

func NewGameRecordRepo(store *Store) GameRecordRepo {
	return GameRecordRepo{store: store}
}

func (r GameRecordRepo) GetByUserID(ctx context.Context, userID string) (ports.GameRecord, error) {
	defer r.store.rlock(ctx)()
	record, ok := r.store.records[userID]
	if !ok {
		return ports.GameRecord{}, ports.ErrNotFound
	}
	return cloneRecord(record), nil
}

func (r GameRecordRepo) SaveWithVersion(ctx context.Context, record ports.GameRecord, expectedVersion int64) error {
	defer r.store.lock(ctx)()
	current, ok := r.store.records[record.UserID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.records[record.UserID] = cloneRecord(record)
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.records[record.UserID] = cloneRecord(record)
	return nil
}

// cloneRecord detaches the pointer fields so callers cannot mutate stored
// state after the fact.
func cloneRecord(record ports.GameRecord) ports.GameRecord {
	out := record
	if record.Pet != nil {
		petCopy := *record.Pet
		out.Pet = &petCopy
	}
	if record.Achievements != nil {
		achievements := pet.AchievementState{Unlocked: append([]string{}, record.Achievements.Unlocked...)}
		out.Achievements = &achievements
	}
	return out
}
