package vehicle

import (
	"context"

	domain "github.com/sergiodev3/taller-autos-app/internal/domain/taller"
	"github.com/sergiodev3/taller-autos-app/internal/models"
)

type ListVehiclesInput struct {
	Skip  int
	Limit int

	// Filtro tri-estado: true → solo activos (sin fecha de salida),
	// false → solo con salida registrada, nil → todos.
	Activos *bool
}

type ListVehicles struct {
	repo domain.Repository
}

func NewListVehicles(repo domain.Repository) *ListVehicles {
	return &ListVehicles{repo: repo}
}

func (uc *ListVehicles) Execute(
	ctx context.Context,
	in ListVehiclesInput,
) ([]models.Vehicle, error) {

	if in.Limit <= 0 {
		in.Limit = 100
	}
	if in.Skip < 0 {
		in.Skip = 0
	}

	return uc.repo.ListVehicles(ctx, in.Skip, in.Limit, in.Activos)
}
