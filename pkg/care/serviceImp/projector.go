package serviceImp

import (
	"sort"
	"time"

	"plantbuddy/entities"
)

// dateOf truncates an instant to its calendar day in loc. Due-date math is
// done entirely on these midnight values.
func dateOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// projectTasks buckets active schedules into overdue / today / upcoming
// relative to the reference instant's calendar day. Pure: same input, same
// output. Rows with no due date are skipped, not an error; inactive
// schedules and dead plants are skipped even if the query let them through.
func projectTasks(rows []entities.ScheduleWithPlant, ref time.Time, loc *time.Location, upcomingLimit int) entities.TaskBuckets {
	today := dateOf(ref, loc)

	b := entities.TaskBuckets{
		Overdue:  []entities.CareTask{},
		Today:    []entities.CareTask{},
		Upcoming: []entities.CareTask{},
	}
	for _, row := range rows {
		if !row.IsActive || row.PlantIsDead || row.NextDueDate == nil {
			continue
		}
		due := dateOf(*row.NextDueDate, loc)
		task := entities.CareTask{
			ScheduleID:    row.ScheduleID,
			PlantID:       row.PlantID,
			PlantName:     row.PlantName,
			TaskType:      row.TaskType,
			DueDate:       due,
			FrequencyDays: row.FrequencyDays,
			IsOverdue:     due.Before(today),
		}
		switch {
		case due.Before(today):
			b.Overdue = append(b.Overdue, task)
		case due.Equal(today):
			b.Today = append(b.Today, task)
		default:
			b.Upcoming = append(b.Upcoming, task)
		}
	}

	byDueThenID := func(ts []entities.CareTask) {
		sort.Slice(ts, func(i, j int) bool {
			if !ts[i].DueDate.Equal(ts[j].DueDate) {
				return ts[i].DueDate.Before(ts[j].DueDate)
			}
			return ts[i].ScheduleID < ts[j].ScheduleID
		})
	}
	byDueThenID(b.Overdue)
	byDueThenID(b.Today)
	byDueThenID(b.Upcoming)

	if upcomingLimit > 0 && len(b.Upcoming) > upcomingLimit {
		b.Upcoming = b.Upcoming[:upcomingLimit]
	}
	return b
}
