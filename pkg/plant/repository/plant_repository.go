package repository

import "plantbuddy/entities"

type PlantRepository interface {
	Create(p *entities.Plant) error
	FindByID(id uint, uid string) (*entities.Plant, error)
	List(uid string, dead bool) ([]entities.Plant, error)
	SetDead(id uint, uid string, dead bool) error
	SetCareTips(id uint, uid string, tips string) error
}
