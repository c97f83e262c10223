package models

import "time"

type Vehicle struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Marca           string `gorm:"size:100;not null" json:"marca"`
	Modelo          string `gorm:"size:100;not null" json:"modelo"`
	Anio            int    `gorm:"not null" json:"anio"`
	Color           string `gorm:"size:50;not null" json:"color"`
	Placas          string `gorm:"size:20;uniqueIndex;not null" json:"placas"`
	ProblemaIngreso string `gorm:"type:text;not null" json:"problema_ingreso"`

	PropietarioID uint   `gorm:"not null" json:"propietario_id"`
	Propietario   *Owner `gorm:"foreignKey:PropietarioID;constraint:OnUpdate:CASCADE" json:"propietario"`

	// fecha_salida nula ⇔ el vehículo sigue en el taller
	FechaIngreso time.Time  `gorm:"autoCreateTime" json:"fecha_ingreso"`
	FechaSalida  *time.Time `json:"fecha_salida"`

	// Las listas siempre se serializan, vacías incluidas
	Defectos  []Defect         `gorm:"foreignKey:VehiculoID;constraint:OnDelete:CASCADE" json:"defectos"`
	Historial []ServiceHistory `gorm:"foreignKey:VehiculoID;constraint:OnDelete:CASCADE" json:"historial"`
}

// Activo indica si el vehículo sigue dentro del taller.
func (v *Vehicle) Activo() bool {
	return v.FechaSalida == nil
}
