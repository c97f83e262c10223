package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/sergiodev3/taller-autos-app/internal/domain/taller"
	"github.com/sergiodev3/taller-autos-app/internal/models"
)

type TallerGormRepository struct {
	db *gorm.DB
}

func NewTallerGormRepository(db *gorm.DB) *TallerGormRepository {
	return &TallerGormRepository{db: db}
}

// --------------------------------------------------
// Owner
// --------------------------------------------------

func (r *TallerGormRepository) GetOwnerByID(
	ctx context.Context,
	id uint,
) (*models.Owner, error) {

	var owner models.Owner
	if err := r.db.WithContext(ctx).First(&owner, id).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

// --------------------------------------------------
// Vehicle (create)
// --------------------------------------------------

func (r *TallerGormRepository) CreateVehicle(
	ctx context.Context,
	v *models.Vehicle,
) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *TallerGormRepository) CreateVehicleWithOwner(
	ctx context.Context,
	owner *models.Owner,
	v *models.Vehicle,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(owner).Error; err != nil {
			return err
		}

		v.PropietarioID = owner.ID
		return tx.Create(v).Error
	})
}

// --------------------------------------------------
// Vehicle (read)
// --------------------------------------------------

func (r *TallerGormRepository) GetVehicleByID(
	ctx context.Context,
	id uint,
) (*models.Vehicle, error) {

	var v models.Vehicle
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *TallerGormRepository) ListVehicles(
	ctx context.Context,
	offset int,
	limit int,
	activos *bool,
) ([]models.Vehicle, error) {

	q := r.db.WithContext(ctx).Model(&models.Vehicle{})

	if activos != nil {
		if *activos {
			q = q.Where("fecha_salida IS NULL")
		} else {
			q = q.Where("fecha_salida IS NOT NULL")
		}
	}

	var vehicles []models.Vehicle
	if err := q.
		Preload("Propietario").
		Preload("Defectos").
		Preload("Historial").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&vehicles).Error; err != nil {
		return nil, err
	}

	// Listas vacías, nunca nulas: el contrato las serializa siempre
	for i := range vehicles {
		if vehicles[i].Defectos == nil {
			vehicles[i].Defectos = []models.Defect{}
		}
		if vehicles[i].Historial == nil {
			vehicles[i].Historial = []models.ServiceHistory{}
		}
	}

	return vehicles, nil
}

// --------------------------------------------------
// Vehicle (write)
// --------------------------------------------------

func (r *TallerGormRepository) SaveVehicle(
	ctx context.Context,
	v *models.Vehicle,
) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *TallerGormRepository) DeleteVehicleCascade(
	ctx context.Context,
	id uint,
) error {

	// Además del ON DELETE CASCADE del esquema, el borrado de los
	// dependientes se hace explícito dentro de la transacción.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("vehiculo_id = ?", id).
			Delete(&models.Defect{}).Error; err != nil {
			return err
		}

		if err := tx.
			Where("vehiculo_id = ?", id).
			Delete(&models.ServiceHistory{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Vehicle{}, id).Error
	})
}

// --------------------------------------------------
// Dependientes
// --------------------------------------------------

func (r *TallerGormRepository) ListDefectsByVehicle(
	ctx context.Context,
	vehiculoID uint,
) ([]models.Defect, error) {

	var defects []models.Defect
	if err := r.db.WithContext(ctx).
		Where("vehiculo_id = ?", vehiculoID).
		Find(&defects).Error; err != nil {
		return nil, err
	}

	return defects, nil
}

func (r *TallerGormRepository) ListServiceHistoryByVehicle(
	ctx context.Context,
	vehiculoID uint,
) ([]models.ServiceHistory, error) {

	var history []models.ServiceHistory
	if err := r.db.WithContext(ctx).
		Where("vehiculo_id = ?", vehiculoID).
		Order("fecha_servicio DESC").
		Find(&history).Error; err != nil {
		return nil, err
	}

	return history, nil
}

// Compile-time check
var _ domain.Repository = (*TallerGormRepository)(nil)
