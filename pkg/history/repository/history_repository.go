package repository

import "plantbuddy/entities"

// HistoryRepository is the append-only activity log. Rows are never updated;
// the only delete is the undo path removing the entry it reversed.
type HistoryRepository interface {
	Append(l *entities.ActivityLog) error
	ListByPlant(plantID uint) ([]entities.ActivityLog, error) // newest first
	LatestByAction(plantID uint, actionType string) (*entities.ActivityLog, error)
	Delete(logID uint) error
}
