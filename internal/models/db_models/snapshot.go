package db_models

import (
	"gorm.io/datatypes"
)

// Snapshot is one appended history row. Rows are insert-only: nothing
// in the system updates or deletes them.
type Snapshot struct {
	BaseModel
	CapturedAt int64          `gorm:"not null;index"` // unix seconds, server-assigned
	Metrics    datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
