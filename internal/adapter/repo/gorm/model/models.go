package model

import "time"

// GameState is the per-user record row. PetState and AchievementState hold
// the serialized domain structures and are nullable: a seeded player has
// neither until the first game starts.
type GameState struct {
	UserID           string    `gorm:"column:user_id;primaryKey"`
	PetState         []byte    `gorm:"column:pet_state;type:jsonb"`
	AchievementState []byte    `gorm:"column:achievement_state;type:jsonb"`
	Version          int64     `gorm:"column:version;not null"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (GameState) TableName() string { return "game_states" }

type PlayerCredential struct {
	UserID    string    `gorm:"column:user_id;primaryKey"`
	KeySalt   []byte    `gorm:"column:key_salt;not null"`
	KeyHash   []byte    `gorm:"column:key_hash;not null"`
	Status    string    `gorm:"column:status;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (PlayerCredential) TableName() string { return "player_credentials" }

type GameEvent struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID     string    `gorm:"column:user_id;index;not null"`
	Type       string    `gorm:"column:type;not null"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null"`
	Payload    []byte    `gorm:"column:payload;type:jsonb"`
}

func (GameEvent) TableName() string { return "game_events" }
