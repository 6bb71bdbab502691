package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"chatagotchi/internal/adapter/repo/gorm/model"
	"chatagotchi/internal/app/ports"
	"chatagotchi/internal/domain/pet"

	"gorm.io/gorm"
)

type GameRecordRepo struct {
	db *gorm.DB
}

func NewGameRecordRepo(db *gorm.DB) GameRecordRepo {
	return GameRecordRepo{db: db}
}

func (r GameRecordRepo) GetByUserID(ctx context.Context, userID string) (ports.GameRecord, error) {
	var row model.GameState
	if err := getDBFromCtx(ctx, r.db).Where("user_id = ?", userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.GameRecord{}, ports.ErrNotFound
		}
		return ports.GameRecord{}, err
	}
	return recordFromRow(row)
}

func (r GameRecordRepo) SaveWithVersion(ctx context.Context, record ports.GameRecord, expectedVersion int64) error {
	row, err := rowFromRecord(record)
	if err != nil {
		return err
	}
	db := getDBFromCtx(ctx, r.db)

	if expectedVersion == 0 {
		if err := db.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return ports.ErrConflict
			}
			return err
		}
		return nil
	}

	res := db.Model(&model.GameState{}).
		Where("user_id = ? AND version = ?", record.UserID, expectedVersion).
		Updates(map[string]any{
			"pet_state":         row.PetState,
			"achievement_state": row.AchievementState,
			"version":           row.Version,
			"updated_at":        row.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func recordFromRow(row model.GameState) (ports.GameRecord, error) {
	record := ports.GameRecord{
		UserID:    row.UserID,
		Version:   row.Version,
		UpdatedAt: row.UpdatedAt,
	}
	if len(row.PetState) > 0 {
		var p pet.State
		if err := json.Unmarshal(row.PetState, &p); err != nil {
			return ports.GameRecord{}, fmt.Errorf("decode pet state: %w", err)
		}
		record.Pet = &p
	}
	if len(row.AchievementState) > 0 {
		var a pet.AchievementState
		if err := json.Unmarshal(row.AchievementState, &a); err != nil {
			return ports.GameRecord{}, fmt.Errorf("decode achievement state: %w", err)
		}
		record.Achievements = &a
	}
	return record, nil
}

func rowFromRecord(record ports.GameRecord) (model.GameState, error) {
	row := model.GameState{
		UserID:    record.UserID,
		Version:   record.Version,
		UpdatedAt: record.UpdatedAt,
	}
	if record.Pet != nil {
		b, err := json.Marshal(record.Pet)
		if err != nil {
			return model.GameState{}, fmt.Errorf("encode pet state: %w", err)
		}
		row.PetState = b
	}
	if record.Achievements != nil {
		b, err := json.Marshal(record.Achievements)
		if err != nil {
			return model.GameState{}, fmt.Errorf("encode achievement state: %w", err)
		}
		row.AchievementState = b
	}
	return row, nil
}
