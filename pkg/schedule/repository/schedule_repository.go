package repository

import (
	"time"

	"plantbuddy/entities"
)

type ScheduleRepository interface {
	BulkInsert([]entities.CareSchedule) error
	FindByID(scheduleID uint) (*entities.CareSchedule, error)
	ListByPlant(plantID uint, activeOnly bool) ([]entities.CareSchedule, error)

	// ListActiveForUser returns every active schedule of the account joined
	// with its plant's display fields, the projector's input set. Dead
	// plants' schedules are filtered in SQL; the projector re-checks anyway.
	ListActiveForUser(uid string) ([]entities.ScheduleWithPlant, error)

	// SetDueDate writes the next due date guarded by a compare-and-set on
	// the version column. Returns false without error when the version is
	// stale, i.e. a concurrent writer got there first.
	SetDueDate(scheduleID, version uint, due *time.Time) (bool, error)

	PatchSettings(scheduleID uint, frequencyDays *int, isActive *bool) error
}
