package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`

	DurationMinutes int `gorm:"not null" json:"duration_minutes"`

	Active         bool `gorm:"default:true" json:"active"`
	IsSubscription bool `gorm:"default:false" json:"is_subscription"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
