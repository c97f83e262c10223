package vehicle

import (
	"context"

	"github.com/sergiodev3/taller-autos-app/internal/audit"
	domain "github.com/sergiodev3/taller-autos-app/internal/domain/taller"
)

// DeleteVehicle borra el vehículo con todos sus defectos e historial.
type DeleteVehicle struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteVehicle(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteVehicle {
	return &DeleteVehicle{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteVehicle) Execute(
	ctx context.Context,
	vehiculoID uint,
) error {

	// Primero se verifica la existencia para poder responder 404.
	v, err := uc.repo.GetVehicleByID(ctx, vehiculoID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteVehicleCascade(ctx, v.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "vehicle_deleted",
		Entity:   "vehicle",
		EntityID: &v.ID,
		Metadata: map[string]any{"placas": v.Placas},
	})

	return nil
}
