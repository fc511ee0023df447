package repositoryImp

import (
	"gorm.io/gorm"

	"plantbuddy/entities"
	"plantbuddy/pkg/history/repository"
)

type historyRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HistoryRepository { return &historyRepo{db} }

func (r *historyRepo) Append(l *entities.ActivityLog) error { return r.db.Create(l).Error }

func (r *historyRepo) ListByPlant(plantID uint) ([]entities.ActivityLog, error) {
	var out []entities.ActivityLog
	err := r.db.Where("plant_id = ?", plantID).
		Order("action_at DESC, log_id DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *historyRepo) LatestByAction(plantID uint, actionType string) (*entities.ActivityLog, error) {
	var l entities.ActivityLog
	err := r.db.Where("plant_id = ? AND action_type = ?", plantID, actionType).
		Order("action_at DESC, log_id DESC").First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *historyRepo) Delete(logID uint) error {
	return r.db.Delete(&entities.ActivityLog{}, "log_id = ?", logID).Error
}
