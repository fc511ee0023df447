package repositoryImp

import (
	"strings"

	"gorm.io/gorm"

	"plantbuddy/entities"
	"plantbuddy/pkg/tips/repository"
)

type tipRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TipRepository { return &tipRepo{db} }

func (r *tipRepo) Create(t *entities.CareTip) error {
	t.Species = strings.ToLower(strings.Join(strings.Fields(t.Species), " "))
	return r.db.Create(t).Error
}

func (r *tipRepo) ListBySpecies(species string) ([]entities.CareTip, error) {
	species = strings.ToLower(strings.Join(strings.Fields(species), " "))
	var out []entities.CareTip
	q := r.db.Order("created_at DESC")
	if species != "" {
		q = q.Where("species = ?", species)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
