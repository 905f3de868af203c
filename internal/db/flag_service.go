package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/balkashynov/colorspace/internal/models"
)

// FlagStore persists the per-workspace "manually cleared" flag in SQLite
type FlagStore struct {
	db *gorm.DB
}

// NewFlagStore wraps db; a nil db falls back to the package connection
func NewFlagStore(db *gorm.DB) *FlagStore {
	return &FlagStore{db: db}
}

func (s *FlagStore) conn(ctx context.Context) (*gorm.DB, error) {
	db := s.db
	if db == nil {
		db = DB
	}
	if db == nil {
		return nil, errors.New("database not initialized")
	}
	return db.WithContext(ctx), nil
}

// ManuallyCleared reports the flag for key. Unknown workspaces are not cleared.
func (s *FlagStore) ManuallyCleared(ctx context.Context, key string) (bool, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return false, err
	}

	var state models.WorkspaceState
	err = db.Where("workspace_key = ?", key).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read workspace %s: %w", key, err)
	}
	return state.ManuallyCleared, nil
}

// SetManuallyCleared upserts the flag for key
func (s *FlagStore) SetManuallyCleared(ctx context.Context, key string, cleared bool) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}

	state := models.WorkspaceState{Key: key, ManuallyCleared: cleared}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "workspace_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"manually_cleared", "updated_at"}),
	}).Create(&state).Error
	if err != nil {
		return fmt.Errorf("failed to save workspace %s: %w", key, err)
	}
	return nil
}

// RecordName stores the display name next to the key so status listings can show it
func (s *FlagStore) RecordName(ctx context.Context, key, name string) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}

	state := models.WorkspaceState{Key: key, Name: name}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "workspace_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(&state).Error
	if err != nil {
		return fmt.Errorf("failed to save workspace %s: %w", key, err)
	}
	return nil
}

// ListWorkspaces returns every known workspace, most recently touched first
func (s *FlagStore) ListWorkspaces(ctx context.Context) ([]models.WorkspaceState, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	var states []models.WorkspaceState
	if err := db.Order("updated_at DESC").Order("id DESC").Find(&states).Error; err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return states, nil
}

// Forget deletes the record for key, which also resets its flag
func (s *FlagStore) Forget(ctx context.Context, key string) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	if err := db.Where("workspace_key = ?", key).Delete(&models.WorkspaceState{}).Error; err != nil {
		return fmt.Errorf("failed to delete workspace %s: %w", key, err)
	}
	return nil
}
