package vehicle

import (
	"context"

	domain "github.com/sergiodev3/taller-autos-app/internal/domain/taller"
	"github.com/sergiodev3/taller-autos-app/internal/models"
)

// GetVehicleDetail arma el agregado completo del vehículo:
// vehículo → propietario → defectos → historial, con lecturas
// explícitas en lugar de carga perezosa.
type GetVehicleDetail struct {
	repo domain.Repository
}

func NewGetVehicleDetail(repo domain.Repository) *GetVehicleDetail {
	return &GetVehicleDetail{repo: repo}
}

func (uc *GetVehicleDetail) Execute(
	ctx context.Context,
	vehiculoID uint,
) (*models.Vehicle, error) {

	v, err := uc.repo.GetVehicleByID(ctx, vehiculoID)
	if err != nil {
		return nil, err
	}

	if err := loadAggregate(ctx, uc.repo, v); err != nil {
		return nil, err
	}

	return v, nil
}

// loadAggregate completa el vehículo con su propietario, defectos e
// historial. Las listas quedan vacías pero nunca nulas: el contrato
// de respuesta las serializa siempre.
func loadAggregate(
	ctx context.Context,
	repo domain.Repository,
	v *models.Vehicle,
) error {

	owner, err := repo.GetOwnerByID(ctx, v.PropietarioID)
	if err != nil {
		return err
	}
	v.Propietario = owner

	defectos, err := repo.ListDefectsByVehicle(ctx, v.ID)
	if err != nil {
		return err
	}
	if defectos == nil {
		defectos = []models.Defect{}
	}
	v.Defectos = defectos

	historial, err := repo.ListServiceHistoryByVehicle(ctx, v.ID)
	if err != nil {
		return err
	}
	if historial == nil {
		historial = []models.ServiceHistory{}
	}
	v.Historial = historial

	return nil
}
