package repository

import "plantbuddy/entities"

type TipRepository interface {
	Create(t *entities.CareTip) error
	ListBySpecies(species string) ([]entities.CareTip, error)
}
