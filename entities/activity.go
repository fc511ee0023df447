package entities

import "time"

// Action types recorded in the activity log. The first four mirror the
// schedule task types; the rest are deferrals or log-only annotations.
const (
	ActionWater       = "WATER"
	ActionFertilize   = "FERTILIZE"
	ActionRepot       = "REPOT"
	ActionPrune       = "PRUNE"
	ActionSnooze      = "SNOOZE"
	ActionSkippedRain = "SKIPPED_RAIN"
	ActionNote        = "NOTE"
	ActionPhoto       = "PHOTO"
)

// ActivityLog is one append-only care event. PrevDueDate snapshots the
// schedule's due date immediately before the action mutated it; it is nil for
// log-only actions and is what undo restores. Undo physically deletes the
// reversed row rather than flagging it, so undo itself never shows up in
// history.
type ActivityLog struct {
	LogID       uint       `gorm:"primaryKey" json:"log_id"`
	PlantID     uint       `gorm:"index" json:"plant_id"`
	ScheduleID  *uint      `json:"schedule_id,omitempty"`
	ActionType  string     `json:"action_type"`
	ActionAt    time.Time  `json:"action_at"`
	Notes       string     `json:"notes,omitempty"`
	PrevDueDate *time.Time `json:"prev_due_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
