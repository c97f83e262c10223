package models

import "time"

type ServiceHistory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VehiculoID uint `gorm:"not null;index" json:"vehiculo_id"`

	DescripcionServicio string `gorm:"type:text;not null" json:"descripcion_servicio"`
	Costo               *int   `json:"costo"`
	Mecanico            string `gorm:"size:200" json:"mecanico"`
	Notas               string `gorm:"type:text" json:"notas"`

	FechaServicio time.Time `gorm:"autoCreateTime" json:"fecha_servicio"`
}

func (ServiceHistory) TableName() string {
	return "service_history"
}
