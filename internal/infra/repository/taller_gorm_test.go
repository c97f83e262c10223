package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sergiodev3/taller-autos-app/internal/models"
)

// setupTestDB abre un SQLite en memoria y migra las tablas del taller.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("no se pudo abrir la DB de prueba: %v", err)
	}

	// Una sola conexión: la base en memoria vive por conexión
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("no se pudo obtener sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Owner{},
		&models.Vehicle{},
		&models.Defect{},
		&models.ServiceHistory{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("falló la migración de los modelos: %v", err)
	}

	return db
}

func seedOwner(t *testing.T, db *gorm.DB) *models.Owner {
	t.Helper()

	owner := models.Owner{NombreCompleto: "Juan Pérez", Telefono: "5551234567"}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("no se pudo insertar el propietario semilla: %v", err)
	}
	return &owner
}

func seedVehicle(t *testing.T, db *gorm.DB, ownerID uint, placas string) *models.Vehicle {
	t.Helper()

	v := models.Vehicle{
		Marca:           "Nissan",
		Modelo:          "Versa",
		Anio:            2019,
		Color:           "gris",
		Placas:          placas,
		ProblemaIngreso: "Ruido en la suspensión",
		PropietarioID:   ownerID,
	}
	if err := db.Create(&v).Error; err != nil {
		t.Fatalf("no se pudo insertar el vehículo semilla: %v", err)
	}
	return &v
}

func TestCreateVehicle_PlacasDuplicadas(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTallerGormRepository(db)
	owner := seedOwner(t, db)

	first := &models.Vehicle{
		Marca: "Ford", Modelo: "Focus", Anio: 2015, Color: "azul",
		Placas: "ABC-123", ProblemaIngreso: "Frenos", PropietarioID: owner.ID,
	}
	if err := repo.CreateVehicle(context.Background(), first); err != nil {
		t.Fatalf("el primer vehículo debía crearse sin error: %v", err)
	}

	second := &models.Vehicle{
		Marca: "Ford", Modelo: "Fiesta", Anio: 2016, Color: "rojo",
		Placas: "ABC-123", ProblemaIngreso: "Clutch", PropietarioID: owner.ID,
	}
	err := repo.CreateVehicle(context.Background(), second)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("esperaba gorm.ErrDuplicatedKey por placas repetidas, obtuve: %v", err)
	}

	// El primero debe seguir intacto
	got, err := repo.GetVehicleByID(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("el primer vehículo debía seguir existiendo: %v", err)
	}
	if got.Modelo != "Focus" {
		t.Errorf("el vehículo original cambió: got %q", got.Modelo)
	}
}

func TestCreateVehicleWithOwner_Transaccional(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTallerGormRepository(db)

	owner := &models.Owner{NombreCompleto: "María López", Telefono: "5559876543"}
	v := &models.Vehicle{
		Marca: "Toyota", Modelo: "Corolla", Anio: 2021, Color: "blanco",
		Placas: "XYZ-987", ProblemaIngreso: "Servicio mayor",
	}

	if err := repo.CreateVehicleWithOwner(context.Background(), owner, v); err != nil {
		t.Fatalf("esperaba crear propietario y vehículo sin error: %v", err)
	}

	if owner.ID == 0 || v.ID == 0 {
		t.Fatalf("los ids debían asignarse: owner=%d vehicle=%d", owner.ID, v.ID)
	}
	if v.PropietarioID != owner.ID {
		t.Errorf("la FK no quedó ligada: got %d, want %d", v.PropietarioID, owner.ID)
	}

	var ownerCount, vehicleCount int64
	db.Model(&models.Owner{}).Count(&ownerCount)
	db.Model(&models.Vehicle{}).Count(&vehicleCount)
	if ownerCount != 1 || vehicleCount != 1 {
		t.Errorf("esperaba exactamente 1 owner y 1 vehicle, got %d/%d", ownerCount, vehicleCount)
	}
}

func TestDeleteVehicleCascade(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTallerGormRepository(db)
	owner := seedOwner(t, db)
	v := seedVehicle(t, db, owner.ID, "CAS-001")

	for i := 0; i < 2; i++ {
		d := models.Defect{VehiculoID: v.ID, Descripcion: "rayón puerta", Tipo: "rayón"}
		if err := db.Create(&d).Error; err != nil {
			t.Fatalf("no se pudo insertar defecto: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		s := models.ServiceHistory{VehiculoID: v.ID, DescripcionServicio: "cambio de aceite"}
		if err := db.Create(&s).Error; err != nil {
			t.Fatalf("no se pudo insertar servicio: %v", err)
		}
	}

	if err := repo.DeleteVehicleCascade(context.Background(), v.ID); err != nil {
		t.Fatalf("esperaba borrar el vehículo sin error: %v", err)
	}

	var defectCount, historyCount int64
	db.Model(&models.Defect{}).Where("vehiculo_id = ?", v.ID).Count(&defectCount)
	db.Model(&models.ServiceHistory{}).Where("vehiculo_id = ?", v.ID).Count(&historyCount)
	if defectCount != 0 || historyCount != 0 {
		t.Errorf("los dependientes debían borrarse: defectos=%d historial=%d", defectCount, historyCount)
	}

	if _, err := repo.GetVehicleByID(context.Background(), v.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("esperaba ErrRecordNotFound tras el borrado, obtuve: %v", err)
	}
}

func TestListVehicles_FiltroActivos(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTallerGormRepository(db)
	owner := seedOwner(t, db)

	activo1 := seedVehicle(t, db, owner.ID, "ACT-001")
	activo2 := seedVehicle(t, db, owner.ID, "ACT-002")

	salida := time.Now()
	cerrado := seedVehicle(t, db, owner.ID, "FIN-001")
	if err := db.Model(cerrado).Update("fecha_salida", salida).Error; err != nil {
		t.Fatalf("no se pudo marcar la salida: %v", err)
	}

	vTrue := true
	activos, err := repo.ListVehicles(context.Background(), 0, 100, &vTrue)
	if err != nil {
		t.Fatalf("listado de activos falló: %v", err)
	}
	if len(activos) != 2 {
		t.Fatalf("esperaba 2 activos, obtuve %d", len(activos))
	}
	for _, v := range activos {
		if v.ID != activo1.ID && v.ID != activo2.ID {
			t.Errorf("vehículo inesperado en activos: %d", v.ID)
		}
	}

	vFalse := false
	inactivos, err := repo.ListVehicles(context.Background(), 0, 100, &vFalse)
	if err != nil {
		t.Fatalf("listado de inactivos falló: %v", err)
	}
	if len(inactivos) != 1 || inactivos[0].ID != cerrado.ID {
		t.Fatalf("esperaba solo el vehículo cerrado, obtuve %d filas", len(inactivos))
	}

	todos, err := repo.ListVehicles(context.Background(), 0, 100, nil)
	if err != nil {
		t.Fatalf("listado completo falló: %v", err)
	}
	if len(todos) != 3 {
		t.Errorf("esperaba 3 vehículos en total, obtuve %d", len(todos))
	}
	for _, v := range todos {
		if v.Defectos == nil || v.Historial == nil {
			t.Errorf("vehículo %d: las listas del agregado no deben ser nulas", v.ID)
		}
	}
}

func TestListServiceHistoryByVehicle_OrdenDescendente(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTallerGormRepository(db)
	owner := seedOwner(t, db)
	v := seedVehicle(t, db, owner.ID, "HIS-001")

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 := base
	t2 := base.Add(24 * time.Hour)
	t3 := base.Add(48 * time.Hour)

	// Se insertan fuera de orden a propósito
	for _, ts := range []time.Time{t2, t1, t3} {
		entry := models.ServiceHistory{
			VehiculoID:          v.ID,
			DescripcionServicio: "servicio",
			FechaServicio:       ts,
		}
		if err := db.Create(&entry).Error; err != nil {
			t.Fatalf("no se pudo insertar servicio: %v", err)
		}
	}

	history, err := repo.ListServiceHistoryByVehicle(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("listado del historial falló: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("esperaba 3 entradas, obtuve %d", len(history))
	}

	want := []time.Time{t3, t2, t1}
	for i, entry := range history {
		if !entry.FechaServicio.Equal(want[i]) {
			t.Errorf("posición %d: got %v, want %v", i, entry.FechaServicio, want[i])
		}
	}
}

func TestListDefectsByVehicle_VehiculoInexistente(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTallerGormRepository(db)

	// Sin verificación de existencia: lista vacía, no error
	defects, err := repo.ListDefectsByVehicle(context.Background(), 999)
	if err != nil {
		t.Fatalf("esperaba lista vacía sin error, obtuve: %v", err)
	}
	if len(defects) != 0 {
		t.Errorf("esperaba 0 defectos, obtuve %d", len(defects))
	}
}
