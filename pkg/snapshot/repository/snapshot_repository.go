package repository

import (
	"time"

	"github.com/kibe0711-png/farm-erp-demo-sub001/entities"
)

// SnapshotRepository stores the immutable weekly compliance snapshots.
// Replace swaps a week's rows atomically; readers must never observe a mix
// of old and new rows.
type SnapshotRepository interface {
	Read(weekStart time.Time, farm string) ([]entities.ComplianceSnapshot, error)
	Replace(weekStart time.Time, rows []entities.ComplianceSnapshot) error
	Delete(weekStart time.Time) (int64, error)
}
