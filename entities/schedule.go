package entities

import "time"

// Care task types a schedule can carry. Action types extend this set with
// log-only and deferral actions, see activity.go.
const (
	TaskWater     = "WATER"
	TaskFertilize = "FERTILIZE"
	TaskRepot     = "REPOT"
	TaskPrune     = "PRUNE"
)

// CareSchedule is one recurring care obligation for one plant: a cadence in
// days and the single next date it falls due. Schedules are never deleted,
// only deactivated; inactive schedules stay around for history.
type CareSchedule struct {
	ScheduleID    uint       `gorm:"primaryKey" json:"schedule_id"`
	PlantID       uint       `gorm:"index" json:"plant_id"`
	TaskType      string     `json:"task_type"` // WATER|FERTILIZE|REPOT|PRUNE
	FrequencyDays int        `json:"frequency_days"`
	NextDueDate   *time.Time `json:"next_due_date"` // calendar date, midnight in service TZ
	IsActive      bool       `json:"is_active"`

	// Version is the optimistic-lock token. Every due-date write goes
	// through a compare-and-set on this column so concurrent actions on
	// the same schedule serialize instead of losing an advancement.
	Version uint `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScheduleWithPlant is the projection input row: a schedule joined with the
// owning plant's display fields. Not persisted.
type ScheduleWithPlant struct {
	CareSchedule
	PlantName   string `json:"plant_name"`
	PlantIsDead bool   `json:"-"`
}

// CareTask is the read-time due status of one schedule. Recomputed on every
// read, never stored.
type CareTask struct {
	ScheduleID    uint      `json:"schedule_id"`
	PlantID       uint      `json:"plant_id"`
	PlantName     string    `json:"plant_name"`
	TaskType      string    `json:"task_type"`
	DueDate       time.Time `json:"due_date"`
	FrequencyDays int       `json:"frequency_days"`
	IsOverdue     bool      `json:"is_overdue"`
}

// TaskBuckets groups due tasks for the care screen.
type TaskBuckets struct {
	Overdue  []CareTask `json:"overdue"`
	Today    []CareTask `json:"today"`
	Upcoming []CareTask `json:"upcoming"`
}
