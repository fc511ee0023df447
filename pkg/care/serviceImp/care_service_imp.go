package serviceImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"plantbuddy/entities"
	"plantbuddy/pkg/care/service"
	historyImp "plantbuddy/pkg/history/repositoryImp"
	plantImp "plantbuddy/pkg/plant/repositoryImp"
	schedImp "plantbuddy/pkg/schedule/repositoryImp"
)

type careSvc struct {
	db            *gorm.DB
	loc           *time.Location
	undoWindow    time.Duration
	upcomingLimit int
}

func NewCareService(db *gorm.DB, loc *time.Location, undoWindow time.Duration, upcomingLimit int) service.CareService {
	return &careSvc{db: db, loc: loc, undoWindow: undoWindow, upcomingLimit: upcomingLimit}
}

func (s *careSvc) ListTasks(userID string, ref time.Time) (entities.TaskBuckets, error) {
	rows, err := schedImp.New(s.db).ListActiveForUser(userID)
	if err != nil {
		return entities.TaskBuckets{}, err
	}
	if ref.IsZero() {
		ref = time.Now()
	}
	return projectTasks(rows, ref, s.loc, s.upcomingLimit), nil
}

func (s *careSvc) ListHistory(userID string, plantID uint) ([]entities.ActivityLog, error) {
	if _, err := s.findPlant(s.db, plantID, userID); err != nil {
		return nil, err
	}
	return historyImp.New(s.db).ListByPlant(plantID)
}

// mutatesSchedule reports whether an action type advances a due date, and
// for those that do, the schedule task type it must target. SNOOZE targets
// any active schedule, so its required type is empty.
func mutatesSchedule(actionType string) (required string, mutating bool) {
	switch actionType {
	case entities.ActionWater, entities.ActionFertilize, entities.ActionRepot, entities.ActionPrune:
		return actionType, true
	case entities.ActionSkippedRain:
		return entities.TaskWater, true
	case entities.ActionSnooze:
		return "", true
	case entities.ActionNote, entities.ActionPhoto:
		return "", false
	default:
		return "", false
	}
}

func validActionType(t string) bool {
	switch t {
	case entities.ActionWater, entities.ActionFertilize, entities.ActionRepot, entities.ActionPrune,
		entities.ActionSnooze, entities.ActionSkippedRain, entities.ActionNote, entities.ActionPhoto:
		return true
	}
	return false
}

// ApplyAction validates the target plant, resolves the schedule the action
// applies to, advances its due date per the action type and appends the
// history entry. The schedule write and the log append commit together or
// not at all; the due-date write is a compare-and-set so two concurrent
// actions on one schedule serialize instead of losing an advancement.
func (s *careSvc) ApplyAction(userID string, plantID uint, in service.ActionInput) (*entities.ActivityLog, error) {
	if !validActionType(in.ActionType) {
		return nil, service.ErrInvalidActionType
	}
	at := in.At
	if at.IsZero() {
		at = time.Now()
	}

	var entry *entities.ActivityLog
	err := s.db.Transaction(func(tx *gorm.DB) error {
		plant, err := s.findPlant(tx, plantID, userID)
		if err != nil {
			return err
		}
		if plant.IsDead {
			return service.ErrPlantArchived
		}

		requiredType, mutating := mutatesSchedule(in.ActionType)
		if !mutating {
			e, err := s.appendLogOnly(tx, plant, in, at)
			if err != nil {
				return err
			}
			entry = e
			return nil
		}

		schedules := schedImp.New(tx)
		sched, err := resolveSchedule(schedules, plantID, in.ScheduleID, requiredType)
		if err != nil {
			return err
		}

		today := dateOf(at, s.loc)
		var newDue time.Time
		if in.ActionType == entities.ActionSnooze {
			// Pure deferral: one day from the current due date, not from
			// today, so snoozing does not reset the frequency cycle.
			base := today
			if sched.NextDueDate != nil {
				base = dateOf(*sched.NextDueDate, s.loc)
			}
			newDue = base.AddDate(0, 0, 1)
		} else {
			// Advance from the action date, not the prior due date: a late
			// watering must not compound future lateness.
			newDue = today.AddDate(0, 0, sched.FrequencyDays)
		}

		prev := sched.NextDueDate
		ok, err := schedules.SetDueDate(sched.ScheduleID, sched.Version, &newDue)
		if err != nil {
			return err
		}
		if !ok {
			return service.ErrConcurrentModification
		}

		sid := sched.ScheduleID
		entry = &entities.ActivityLog{
			PlantID:     plantID,
			ScheduleID:  &sid,
			ActionType:  in.ActionType,
			ActionAt:    at,
			Notes:       in.Notes,
			PrevDueDate: prev,
		}
		return historyImp.New(tx).Append(entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// UndoLastAction reverses the plant's most recent watering if it is still
// inside the undo window: the schedule's due date goes back to the logged
// pre-action snapshot and the entry is deleted, so undo never shows up in
// history and cannot itself be undone.
func (s *careSvc) UndoLastAction(userID string, plantID uint, now time.Time) (*entities.CareSchedule, error) {
	if now.IsZero() {
		now = time.Now()
	}

	var restored *entities.CareSchedule
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.findPlant(tx, plantID, userID); err != nil {
			return err
		}

		history := historyImp.New(tx)
		last, err := history.LatestByAction(plantID, entities.ActionWater)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrNothingToUndo
			}
			return err
		}
		if last.ScheduleID == nil || now.Sub(last.ActionAt) > s.undoWindow {
			return service.ErrNothingToUndo
		}

		schedules := schedImp.New(tx)
		sched, err := schedules.FindByID(*last.ScheduleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrNothingToUndo
			}
			return err
		}

		ok, err := schedules.SetDueDate(sched.ScheduleID, sched.Version, last.PrevDueDate)
		if err != nil {
			return err
		}
		if !ok {
			return service.ErrConcurrentModification
		}
		if err := history.Delete(last.LogID); err != nil {
			return err
		}

		sched.NextDueDate = last.PrevDueDate
		sched.Version++
		restored = sched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return restored, nil
}

func (s *careSvc) findPlant(db *gorm.DB, plantID uint, userID string) (*entities.Plant, error) {
	p, err := plantImp.New(db).FindByID(plantID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrPlantNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *careSvc) appendLogOnly(tx *gorm.DB, plant *entities.Plant, in service.ActionInput, at time.Time) (*entities.ActivityLog, error) {
	// NOTE/PHOTO may carry an explicit schedule reference; verify it really
	// belongs to the plant before recording it.
	if in.ScheduleID != nil {
		sched, err := schedImp.New(tx).FindByID(*in.ScheduleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, service.ErrScheduleNotFound
			}
			return nil, err
		}
		if sched.PlantID != plant.PlantID {
			return nil, service.ErrScheduleNotFound
		}
	}
	entry := &entities.ActivityLog{
		PlantID:    plant.PlantID,
		ScheduleID: in.ScheduleID,
		ActionType: in.ActionType,
		ActionAt:   at,
		Notes:      in.Notes,
	}
	if err := historyImp.New(tx).Append(entry); err != nil {
		return nil, err
	}
	return entry, nil
}
