package vehicle

import (
	"context"

	"github.com/sergiodev3/taller-autos-app/internal/audit"
	domain "github.com/sergiodev3/taller-autos-app/internal/domain/taller"
	"github.com/sergiodev3/taller-autos-app/internal/models"
)

// UpdateVehicle aplica un parche parcial: los campos ausentes
// de la petición quedan intactos.
type UpdateVehicle struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateVehicle(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateVehicle {
	return &UpdateVehicle{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateVehicle) Execute(
	ctx context.Context,
	vehiculoID uint,
	patch domain.VehicleUpdate,
) (*models.Vehicle, error) {

	v, err := uc.repo.GetVehicleByID(ctx, vehiculoID)
	if err != nil {
		return nil, err
	}

	// Un parche vacío no toca la base ni genera auditoría
	if patch.Empty() {
		if err := loadAggregate(ctx, uc.repo, v); err != nil {
			return nil, err
		}
		return v, nil
	}

	patch.Apply(v)

	if err := uc.repo.SaveVehicle(ctx, v); err != nil {
		return nil, err
	}

	// La respuesta lleva el agregado completo, igual que el GET
	if err := loadAggregate(ctx, uc.repo, v); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "vehicle_updated",
		Entity:   "vehicle",
		EntityID: &v.ID,
	})

	return v, nil
}
