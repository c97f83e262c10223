package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sergiodev3/taller-autos-app/internal/audit"
	"github.com/sergiodev3/taller-autos-app/internal/httperr"
	"github.com/sergiodev3/taller-autos-app/internal/models"
)

type DefectHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewDefectHandler(db *gorm.DB, audit *audit.Dispatcher) *DefectHandler {
	return &DefectHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateDefectRequest struct {
	VehiculoID  uint   `json:"vehiculo_id" binding:"required"`
	Descripcion string `json:"descripcion" binding:"required"`
	Tipo        string `json:"tipo" binding:"required,max=50"`
	Ubicacion   string `json:"ubicacion" binding:"omitempty,max=100"`
	ImagenURL   string `json:"imagen_url" binding:"omitempty,max=500"`

	DetectadoAutomaticamente int            `json:"detectado_automaticamente" binding:"omitempty,oneof=0 1"`
	DeteccionData            map[string]any `json:"deteccion_data"`
}

// --------- Handlers ---------

func (h *DefectHandler) Create(c *gin.Context) {
	var req CreateDefectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	// El vehículo debe existir para registrarle un defecto
	var vehicle models.Vehicle
	if err := h.db.First(&vehicle, req.VehiculoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "vehiculo_no_encontrado", "Vehículo no encontrado")
			return
		}
		httperr.Internal(c, "defect_create_failed", "Error al verificar el vehículo.")
		return
	}

	defect := models.Defect{
		VehiculoID:               req.VehiculoID,
		Descripcion:              req.Descripcion,
		Tipo:                     req.Tipo,
		Ubicacion:                req.Ubicacion,
		ImagenURL:                req.ImagenURL,
		DetectadoAutomaticamente: req.DetectadoAutomaticamente,
		DeteccionData:            datatypes.JSONMap(req.DeteccionData),
	}

	if err := h.db.Create(&defect).Error; err != nil {
		httperr.Internal(c, "defect_create_failed", "Error al registrar el defecto.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "defect_created",
		Entity:   "defect",
		EntityID: &defect.ID,
		Metadata: map[string]any{"vehiculo_id": defect.VehiculoID, "tipo": defect.Tipo},
	})

	c.JSON(http.StatusCreated, defect)
}

// ListByVehicle devuelve los defectos del vehículo. Si el vehículo
// no existe la lista es simplemente vacía (comportamiento histórico
// de la API: el create sí verifica, el listado no).
func (h *DefectHandler) ListByVehicle(c *gin.Context) {
	vehiculoID, err := strconv.ParseUint(c.Param("vehicle_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "El id debe ser numérico.")
		return
	}

	var defects []models.Defect
	if err := h.db.
		Where("vehiculo_id = ?", uint(vehiculoID)).
		Find(&defects).Error; err != nil {

		httperr.Internal(c, "defect_list_failed", "Error al listar defectos.")
		return
	}

	c.JSON(http.StatusOK, defects)
}
