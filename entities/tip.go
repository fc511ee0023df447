package entities

import "time"

// CareTip is an ingested care article, filed under a species name.
type CareTip struct {
	TipID     uint   `gorm:"primaryKey" json:"tip_id"`
	Species   string `gorm:"index" json:"species"`
	Title     string `json:"title"`
	SourceURL string `json:"source_url,omitempty"`
	Text      string `json:"text"`

	CreatedAt time.Time `json:"created_at"`
}
