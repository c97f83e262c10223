package models

import "time"

// Propietario de uno o más vehículos del taller
type Owner struct {
	ID uint `gorm:"primaryKey" json:"id"`

	NombreCompleto string `gorm:"size:200;not null" json:"nombre_completo"`
	Telefono       string `gorm:"size:20;not null" json:"telefono"`

	CreatedAt time.Time `json:"created_at"`
}
