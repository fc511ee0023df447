package repositoryImp

import (
	"gorm.io/gorm"

	"plantbuddy/entities"
	"plantbuddy/pkg/plant/repository"
)

type plantRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantRepository { return &plantRepo{db} }

func (r *plantRepo) Create(p *entities.Plant) error { return r.db.Create(p).Error }

func (r *plantRepo) FindByID(id uint, uid string) (*entities.Plant, error) {
	var p entities.Plant
	if err := r.db.Where("plant_id = ? AND user_id = ?", id, uid).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plantRepo) List(uid string, dead bool) ([]entities.Plant, error) {
	var out []entities.Plant
	err := r.db.Where("user_id = ? AND is_dead = ?", uid, dead).
		Order("created_at ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *plantRepo) SetDead(id uint, uid string, dead bool) error {
	res := r.db.Model(&entities.Plant{}).
		Where("plant_id = ? AND user_id = ?", id, uid).
		Update("is_dead", dead)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *plantRepo) SetCareTips(id uint, uid string, tips string) error {
	res := r.db.Model(&entities.Plant{}).
		Where("plant_id = ? AND user_id = ?", id, uid).
		Update("care_tips", tips)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
