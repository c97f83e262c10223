package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sergiodev3/taller-autos-app/internal/audit"
	"github.com/sergiodev3/taller-autos-app/internal/httperr"
	"github.com/sergiodev3/taller-autos-app/internal/models"
)

type ServiceHistoryHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHistoryHandler(db *gorm.DB, audit *audit.Dispatcher) *ServiceHistoryHandler {
	return &ServiceHistoryHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateServiceHistoryRequest struct {
	VehiculoID          uint   `json:"vehiculo_id" binding:"required"`
	DescripcionServicio string `json:"descripcion_servicio" binding:"required"`
	Costo               *int   `json:"costo"`
	Mecanico            string `json:"mecanico" binding:"omitempty,max=200"`
	Notas               string `json:"notas"`
}

// --------- Handlers ---------

func (h *ServiceHistoryHandler) Create(c *gin.Context) {
	var req CreateServiceHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var vehicle models.Vehicle
	if err := h.db.First(&vehicle, req.VehiculoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "vehiculo_no_encontrado", "Vehículo no encontrado")
			return
		}
		httperr.Internal(c, "service_create_failed", "Error al verificar el vehículo.")
		return
	}

	entry := models.ServiceHistory{
		VehiculoID:          req.VehiculoID,
		DescripcionServicio: req.DescripcionServicio,
		Costo:               req.Costo,
		Mecanico:            req.Mecanico,
		Notas:               req.Notas,
	}

	if err := h.db.Create(&entry).Error; err != nil {
		httperr.Internal(c, "service_create_failed", "Error al registrar el servicio.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "service_history",
		EntityID: &entry.ID,
		Metadata: map[string]any{"vehiculo_id": entry.VehiculoID},
	})

	c.JSON(http.StatusCreated, entry)
}

// ListByVehicle devuelve el historial ordenado del más reciente al
// más antiguo. Sin verificación de existencia del vehículo (misma
// asimetría que los defectos).
func (h *ServiceHistoryHandler) ListByVehicle(c *gin.Context) {
	vehiculoID, err := strconv.ParseUint(c.Param("vehicle_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "El id debe ser numérico.")
		return
	}

	var history []models.ServiceHistory
	if err := h.db.
		Where("vehiculo_id = ?", uint(vehiculoID)).
		Order("fecha_servicio DESC").
		Find(&history).Error; err != nil {

		httperr.Internal(c, "service_list_failed", "Error al listar el historial.")
		return
	}

	c.JSON(http.StatusOK, history)
}
