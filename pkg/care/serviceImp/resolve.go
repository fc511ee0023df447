package serviceImp

import (
	"errors"

	"gorm.io/gorm"

	"plantbuddy/entities"
	"plantbuddy/pkg/care/service"
	"plantbuddy/pkg/schedule/repository"
)

// resolveSchedule finds the active schedule a mutating action targets.
// An explicit schedule id wins; it must belong to the plant, be active, and
// match the required task type. With no id the plant's active schedules are
// filtered by type; exactly one match resolves, zero or several is a typed
// error so the engine never silently picks among duplicates.
func resolveSchedule(repo repository.ScheduleRepository, plantID uint, scheduleID *uint, requiredType string) (*entities.CareSchedule, error) {
	if scheduleID != nil {
		sched, err := repo.FindByID(*scheduleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, service.ErrScheduleNotFound
			}
			return nil, err
		}
		if sched.PlantID != plantID {
			return nil, service.ErrScheduleNotFound
		}
		if !sched.IsActive {
			return nil, service.ErrNoMatchingSchedule
		}
		if requiredType != "" && sched.TaskType != requiredType {
			return nil, service.ErrNoMatchingSchedule
		}
		return sched, nil
	}

	active, err := repo.ListByPlant(plantID, true)
	if err != nil {
		return nil, err
	}
	var matches []entities.CareSchedule
	for _, s := range active {
		if requiredType == "" || s.TaskType == requiredType {
			matches = append(matches, s)
		}
	}
	if len(matches) != 1 {
		return nil, service.ErrNoMatchingSchedule
	}
	return &matches[0], nil
}
