package models

import "time"

const (
	BlockTypeRecurring = "recurring"
	BlockTypeSpecific  = "specific"
)

// Janela de indisponibilidade manual por profissional, por cima do
// horário de funcionamento. Exatamente um de DayOfWeek/SpecificDate é
// preenchido, conforme BlockType; o tipo não muda após a criação.
type BlockedTime struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID uint         `gorm:"not null;index" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"professional"`

	BlockType string `gorm:"size:10;not null" json:"block_type"`

	DayOfWeek    *int       `json:"day_of_week"`
	SpecificDate *time.Time `gorm:"type:date" json:"specific_date"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Reason   string `gorm:"size:255" json:"reason"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
