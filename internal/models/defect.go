package models

import (
	"time"

	"gorm.io/datatypes"
)

// Origen del registro del defecto
const (
	DeteccionManual = 0
	DeteccionIA     = 1 // reservado: aún no hay detección automática
)

type Defect struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VehiculoID uint `gorm:"not null;index" json:"vehiculo_id"`

	Descripcion string `gorm:"type:text;not null" json:"descripcion"`
	Tipo        string `gorm:"size:50;not null" json:"tipo"` // 'golpe', 'rayón', 'abolladura', ...
	Ubicacion   string `gorm:"size:100" json:"ubicacion"`
	ImagenURL   string `gorm:"size:500" json:"imagen_url"`

	DetectadoAutomaticamente int               `gorm:"default:0" json:"detectado_automaticamente"`
	DeteccionData            datatypes.JSONMap `json:"deteccion_data"` // bounding box, score, etc.

	FechaRegistro time.Time `gorm:"autoCreateTime" json:"fecha_registro"`
}
