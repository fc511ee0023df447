package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"plantbuddy/entities"
	"plantbuddy/pkg/schedule/repository"
)

type schedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ScheduleRepository { return &schedRepo{db} }

func (r *schedRepo) BulkInsert(ss []entities.CareSchedule) error {
	if len(ss) == 0 {
		return nil
	}
	return r.db.Create(&ss).Error
}

func (r *schedRepo) FindByID(scheduleID uint) (*entities.CareSchedule, error) {
	var s entities.CareSchedule
	if err := r.db.Where("schedule_id = ?", scheduleID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *schedRepo) ListByPlant(plantID uint, activeOnly bool) ([]entities.CareSchedule, error) {
	q := r.db.Where("plant_id = ?", plantID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []entities.CareSchedule
	if err := q.Order("schedule_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *schedRepo) ListActiveForUser(uid string) ([]entities.ScheduleWithPlant, error) {
	var out []entities.ScheduleWithPlant
	err := r.db.Model(&entities.CareSchedule{}).
		Select("care_schedules.*, plants.name AS plant_name, plants.is_dead AS plant_is_dead").
		Joins("JOIN plants ON plants.plant_id = care_schedules.plant_id").
		Where("plants.user_id = ? AND plants.is_dead = ? AND care_schedules.is_active = ?", uid, false, true).
		Order("care_schedules.schedule_id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *schedRepo) SetDueDate(scheduleID, version uint, due *time.Time) (bool, error) {
	res := r.db.Model(&entities.CareSchedule{}).
		Where("schedule_id = ? AND version = ?", scheduleID, version).
		Updates(map[string]any{
			"next_due_date": due,
			"version":       version + 1,
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *schedRepo) PatchSettings(scheduleID uint, frequencyDays *int, isActive *bool) error {
	upd := map[string]any{}
	if frequencyDays != nil {
		upd["frequency_days"] = *frequencyDays
	}
	if isActive != nil {
		upd["is_active"] = *isActive
	}
	if len(upd) == 0 {
		return nil
	}
	res := r.db.Model(&entities.CareSchedule{}).Where("schedule_id = ?", scheduleID).Updates(upd)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
