package service

import "errors"

// Typed outcomes of care operations. Controllers map these to HTTP statuses;
// anything else bubbling out of the service is a storage failure and is
// surfaced unchanged.
var (
	ErrPlantNotFound      = errors.New("plant not found")
	ErrPlantArchived      = errors.New("plant is archived")
	ErrScheduleNotFound   = errors.New("schedule not found")
	ErrNoMatchingSchedule = errors.New("no matching active schedule")
	ErrInvalidActionType  = errors.New("invalid action type")

	// ErrNothingToUndo is a normal outcome (window expired or the last
	// action was not undoable), not a system error.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrConcurrentModification means the per-schedule compare-and-set
	// lost a race. The caller decides whether to retry.
	ErrConcurrentModification = errors.New("schedule was modified concurrently")
)
