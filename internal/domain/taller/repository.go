package taller

import (
	"context"

	"github.com/sergiodev3/taller-autos-app/internal/models"
)

type Repository interface {
	// -------- Owner --------
	GetOwnerByID(
		ctx context.Context,
		id uint,
	) (*models.Owner, error)

	// -------- Vehicle (create) --------
	CreateVehicle(
		ctx context.Context,
		v *models.Vehicle,
	) error

	// CreateVehicleWithOwner inserta el propietario y el vehículo
	// en una sola transacción.
	CreateVehicleWithOwner(
		ctx context.Context,
		owner *models.Owner,
		v *models.Vehicle,
	) error

	// -------- Vehicle (read) --------
	GetVehicleByID(
		ctx context.Context,
		id uint,
	) (*models.Vehicle, error)

	ListVehicles(
		ctx context.Context,
		offset int,
		limit int,
		activos *bool,
	) ([]models.Vehicle, error)

	// -------- Vehicle (write) --------
	SaveVehicle(
		ctx context.Context,
		v *models.Vehicle,
	) error

	// DeleteVehicleCascade borra el vehículo junto con sus defectos
	// e historial, todo en una transacción.
	DeleteVehicleCascade(
		ctx context.Context,
		id uint,
	) error

	// -------- Dependientes --------
	ListDefectsByVehicle(
		ctx context.Context,
		vehiculoID uint,
	) ([]models.Defect, error)

	ListServiceHistoryByVehicle(
		ctx context.Context,
		vehiculoID uint,
	) ([]models.ServiceHistory, error)
}
