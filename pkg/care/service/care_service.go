package service

import (
	"time"

	"plantbuddy/entities"
)

// ActionInput is one user-submitted care action against a plant. ScheduleID
// may be nil for log-only actions, or to let the engine resolve the plant's
// schedule by task type; resolution is explicit and ambiguity is an error,
// never a silent pick. At is the reference instant; zero means now.
type ActionInput struct {
	ScheduleID *uint
	ActionType string
	Notes      string
	At         time.Time
}

type CareService interface {
	ListTasks(userID string, ref time.Time) (entities.TaskBuckets, error)
	ApplyAction(userID string, plantID uint, in ActionInput) (*entities.ActivityLog, error)
	UndoLastAction(userID string, plantID uint, now time.Time) (*entities.CareSchedule, error)
	ListHistory(userID string, plantID uint) ([]entities.ActivityLog, error)
}
