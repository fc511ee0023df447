package entities

import "time"

type Plant struct {
	PlantID   uint   `gorm:"primaryKey" json:"plant_id"`
	UserID    string `json:"user_id" gorm:"index"`
	Name      string `json:"name"`
	Species   string `json:"species,omitempty"`
	CareLevel string `json:"care_level"` // easy|moderate|hard
	CareTips  string `json:"care_tips,omitempty"`
	IsDead    bool   `json:"is_dead"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
