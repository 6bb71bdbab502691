package ports

import (
	"context"
	"time"

	"chatagotchi/internal/domain/pet"
)

// GameRecord is the per-user persisted unit: pet and achievement state are
// read and written together. Either field may be nil, meaning "no pet yet"
// and "no achievements yet".
type GameRecord struct {
	UserID       string
	Pet          *pet.State
	Achievements *pet.AchievementState
	Version      int64
	UpdatedAt    time.Time
}

type GameRecordRepository interface {
	GetByUserID(ctx context.Context, userID string) (GameRecord, error)
	// SaveWithVersion creates the record when expectedVersion is 0 and
	// otherwise performs a compare-and-swap on Version, returning
	// ErrConflict when a concurrent writer got there first.
	SaveWithVersion(ctx context.Context, record GameRecord, expectedVersion int64) error
}

// GameEvent is one entry of the per-user game history log.
type GameEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

type EventRepository interface {
	Append(ctx context.Context, userID string, events []GameEvent) error
	ListByUserID(ctx context.Context, userID string, limit int) ([]GameEvent, error)
}

type PlayerCredentialRecord struct {
	UserID    string
	KeySalt   []byte
	KeyHash   []byte
	Status    string
	CreatedAt time.Time
}

type PlayerCredentialRepository interface {
	Create(ctx context.Context, credential PlayerCredentialRecord) error
	GetByUserID(ctx context.Context, userID string) (PlayerCredentialRecord, error)
}
