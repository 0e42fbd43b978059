package models

type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration    int     `json:"duration"` // in minutes
	Category    string  `gorm:"default:'General'" json:"category"`
	Emoji       string  `json:"emoji"`
}
