package vehicle

import (
	"context"

	"github.com/sergiodev3/taller-autos-app/internal/audit"
	domain "github.com/sergiodev3/taller-autos-app/internal/domain/taller"
	"github.com/sergiodev3/taller-autos-app/internal/httperr"
	"github.com/sergiodev3/taller-autos-app/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type OwnerInput struct {
	NombreCompleto string
	Telefono       string
}

type CreateVehicleInput struct {
	Marca           string
	Modelo          string
	Anio            int
	Color           string
	Placas          string
	ProblemaIngreso string

	// Exactamente una de las dos referencias al propietario:
	// un id existente o los datos para crearlo en línea.
	PropietarioID *uint
	Propietario   *OwnerInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateVehicle struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateVehicle(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateVehicle {
	return &CreateVehicle{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateVehicle) Execute(
	ctx context.Context,
	in CreateVehicleInput,
) (*models.Vehicle, error) {

	v := &models.Vehicle{
		Marca:           in.Marca,
		Modelo:          in.Modelo,
		Anio:            in.Anio,
		Color:           in.Color,
		Placas:          in.Placas,
		ProblemaIngreso: in.ProblemaIngreso,
	}

	switch {

	// --------------------------------------------------
	// 1️⃣ Propietario en línea → owner + vehículo en una transacción
	// --------------------------------------------------
	case in.Propietario != nil && in.PropietarioID == nil:
		owner := &models.Owner{
			NombreCompleto: in.Propietario.NombreCompleto,
			Telefono:       in.Propietario.Telefono,
		}

		if err := uc.repo.CreateVehicleWithOwner(ctx, owner, v); err != nil {
			return nil, err
		}
		v.Propietario = owner

	// --------------------------------------------------
	// 2️⃣ Referencia a propietario existente
	// --------------------------------------------------
	case in.PropietarioID != nil:
		owner, err := uc.repo.GetOwnerByID(ctx, *in.PropietarioID)
		if err != nil {
			return nil, err
		}

		v.PropietarioID = owner.ID
		if err := uc.repo.CreateVehicle(ctx, v); err != nil {
			return nil, err
		}
		v.Propietario = owner

	// --------------------------------------------------
	// 3️⃣ Ninguna de las dos → error de validación
	// --------------------------------------------------
	default:
		return nil, httperr.ErrBusiness("propietario_requerido")
	}

	// Vehículo recién ingresado: el agregado lleva listas vacías
	v.Defectos = []models.Defect{}
	v.Historial = []models.ServiceHistory{}

	uc.audit.Dispatch(audit.Event{
		Action:   "vehicle_created",
		Entity:   "vehicle",
		EntityID: &v.ID,
		Metadata: map[string]any{"placas": v.Placas},
	})

	return v, nil
}
