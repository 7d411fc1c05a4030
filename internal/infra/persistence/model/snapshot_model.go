package model

import "time"

// SessionSnapshotModel is the GORM-specific struct for the 'session_snapshots' table.
// Each row is one key of the session snapshot.
type SessionSnapshotModel struct {
	Key       string `gorm:"column:snapshot_key;type:varchar(64);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionSnapshotModel) TableName() string {
	return "session_snapshots"
}
