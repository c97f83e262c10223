package vehicle

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/sergiodev3/taller-autos-app/internal/audit"
	domain "github.com/sergiodev3/taller-autos-app/internal/domain/taller"
	infraRepo "github.com/sergiodev3/taller-autos-app/internal/infra/repository"
	"github.com/sergiodev3/taller-autos-app/internal/models"
)

func ptrString(s string) *string { return &s }

func seedVehicleWithOwner(t *testing.T, db *gorm.DB) *models.Vehicle {
	t.Helper()

	owner := models.Owner{NombreCompleto: "Juan Pérez", Telefono: "5551234567"}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("no se pudo insertar el propietario: %v", err)
	}

	v := models.Vehicle{
		Marca:           "Mazda",
		Modelo:          "3",
		Anio:            2018,
		Color:           "azul",
		Placas:          "UPD-001",
		ProblemaIngreso: "Vibración al frenar",
		PropietarioID:   owner.ID,
	}
	if err := db.Create(&v).Error; err != nil {
		t.Fatalf("no se pudo insertar el vehículo: %v", err)
	}
	return &v
}

func TestUpdateVehicle_ParcheParcial(t *testing.T) {
	db := setupTestDB(t)
	repo := infraRepo.NewTallerGormRepository(db)
	uc := NewUpdateVehicle(repo, audit.NewDispatcher(audit.New(db)))

	original := seedVehicleWithOwner(t, db)

	// Solo color: el resto de los campos queda intacto
	updated, err := uc.Execute(context.Background(), original.ID, domain.VehicleUpdate{
		Color: ptrString("rojo"),
	})
	if err != nil {
		t.Fatalf("esperaba actualizar sin error: %v", err)
	}

	if updated.Color != "rojo" {
		t.Errorf("color: got %q, want %q", updated.Color, "rojo")
	}
	if updated.Marca != original.Marca ||
		updated.Modelo != original.Modelo ||
		updated.Anio != original.Anio ||
		updated.Placas != original.Placas ||
		updated.ProblemaIngreso != original.ProblemaIngreso {
		t.Errorf("campos no incluidos en el parche cambiaron: %+v", updated)
	}
	if updated.FechaSalida != nil {
		t.Error("fecha_salida no debía tocarse")
	}
	if updated.Propietario == nil || updated.Defectos == nil || updated.Historial == nil {
		t.Error("la respuesta del update debía traer el agregado completo")
	}

	var persisted models.Vehicle
	if err := db.First(&persisted, original.ID).Error; err != nil {
		t.Fatalf("no se pudo releer el vehículo: %v", err)
	}
	if persisted.Color != "rojo" || persisted.Marca != original.Marca {
		t.Errorf("el parche no se persistió como se esperaba: %+v", persisted)
	}
}

func TestUpdateVehicle_RegistrarSalida(t *testing.T) {
	db := setupTestDB(t)
	repo := infraRepo.NewTallerGormRepository(db)
	uc := NewUpdateVehicle(repo, audit.NewDispatcher(audit.New(db)))

	v := seedVehicleWithOwner(t, db)
	if !v.Activo() {
		t.Fatal("el vehículo recién ingresado debía estar activo")
	}

	salida := time.Date(2024, 5, 10, 18, 30, 0, 0, time.UTC)
	updated, err := uc.Execute(context.Background(), v.ID, domain.VehicleUpdate{
		FechaSalida: &salida,
	})
	if err != nil {
		t.Fatalf("esperaba registrar la salida sin error: %v", err)
	}

	if updated.Activo() {
		t.Error("con fecha de salida el vehículo ya no es activo")
	}
	if updated.FechaSalida == nil || !updated.FechaSalida.Equal(salida) {
		t.Errorf("fecha_salida: got %v, want %v", updated.FechaSalida, salida)
	}
}

func TestUpdateVehicle_ParcheVacio(t *testing.T) {
	db := setupTestDB(t)
	repo := infraRepo.NewTallerGormRepository(db)
	uc := NewUpdateVehicle(repo, audit.NewDispatcher(audit.New(db)))

	v := seedVehicleWithOwner(t, db)

	updated, err := uc.Execute(context.Background(), v.ID, domain.VehicleUpdate{})
	if err != nil {
		t.Fatalf("el parche vacío no debía fallar: %v", err)
	}
	if updated.Color != v.Color || updated.Placas != v.Placas {
		t.Errorf("el parche vacío no debía cambiar nada: %+v", updated)
	}
}

func TestUpdateVehicle_NoEncontrado(t *testing.T) {
	db := setupTestDB(t)
	repo := infraRepo.NewTallerGormRepository(db)
	uc := NewUpdateVehicle(repo, audit.NewDispatcher(audit.New(db)))

	_, err := uc.Execute(context.Background(), 999, domain.VehicleUpdate{
		Color: ptrString("verde"),
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("esperaba ErrRecordNotFound, obtuve: %v", err)
	}
}
