package models

import (
	"time"
)

// WorkspaceState is the per-workspace record behind the "manually cleared" flag.
type WorkspaceState struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Key             string `gorm:"column:workspace_key;uniqueIndex;not null" json:"key"` // absolute workspace path
	Name            string `json:"name"`
	ManuallyCleared bool   `gorm:"default:false" json:"manually_cleared"`
}
