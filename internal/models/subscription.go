package models

import "time"

// Assinatura de serviço vinculada ao telefone do cliente.
// Gerenciada pelo admin; cobrança fica fora deste sistema.
type Subscription struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName  string `gorm:"size:100" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null;index" json:"client_phone"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	StartsAt  time.Time `json:"starts_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Active    bool      `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Subscription) ExpiredAt(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
