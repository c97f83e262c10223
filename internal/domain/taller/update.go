package taller

import (
	"time"

	"github.com/sergiodev3/taller-autos-app/internal/models"
)

// ===============================
// Actualización parcial
// ===============================

// VehicleUpdate representa un parche parcial: solo los campos
// presentes en la petición (puntero no nulo) se aplican.
type VehicleUpdate struct {
	Marca           *string
	Modelo          *string
	Anio            *int
	Color           *string
	Placas          *string
	ProblemaIngreso *string
	FechaSalida     *time.Time
}

// Apply copia al vehículo únicamente los campos presentes.
func (u VehicleUpdate) Apply(v *models.Vehicle) {
	if u.Marca != nil {
		v.Marca = *u.Marca
	}
	if u.Modelo != nil {
		v.Modelo = *u.Modelo
	}
	if u.Anio != nil {
		v.Anio = *u.Anio
	}
	if u.Color != nil {
		v.Color = *u.Color
	}
	if u.Placas != nil {
		v.Placas = *u.Placas
	}
	if u.ProblemaIngreso != nil {
		v.ProblemaIngreso = *u.ProblemaIngreso
	}
	if u.FechaSalida != nil {
		v.FechaSalida = u.FechaSalida
	}
}

// Empty indica si el parche no trae ningún campo.
func (u VehicleUpdate) Empty() bool {
	return u.Marca == nil &&
		u.Modelo == nil &&
		u.Anio == nil &&
		u.Color == nil &&
		u.Placas == nil &&
		u.ProblemaIngreso == nil &&
		u.FechaSalida == nil
}
