package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/sergiodev3/taller-autos-app/internal/domain/taller"
	"github.com/sergiodev3/taller-autos-app/internal/httperr"
	ucVehicle "github.com/sergiodev3/taller-autos-app/internal/usecase/vehicle"
)

// ======================================================
// HANDLER
// ======================================================

type VehicleHandler struct {
	createUC *ucVehicle.CreateVehicle
	listUC   *ucVehicle.ListVehicles
	detailUC *ucVehicle.GetVehicleDetail
	updateUC *ucVehicle.UpdateVehicle
	deleteUC *ucVehicle.DeleteVehicle
}

func NewVehicleHandler(
	createUC *ucVehicle.CreateVehicle,
	listUC *ucVehicle.ListVehicles,
	detailUC *ucVehicle.GetVehicleDetail,
	updateUC *ucVehicle.UpdateVehicle,
	deleteUC *ucVehicle.DeleteVehicle,
) *VehicleHandler {
	return &VehicleHandler{
		createUC: createUC,
		listUC:   listUC,
		detailUC: detailUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// --------- Requests ---------

type OwnerPayload struct {
	NombreCompleto string `json:"nombre_completo" binding:"required,min=1,max=200"`
	Telefono       string `json:"telefono" binding:"required,min=1,max=20"`
}

type CreateVehicleRequest struct {
	Marca           string `json:"marca" binding:"required,max=100"`
	Modelo          string `json:"modelo" binding:"required,max=100"`
	Anio            int    `json:"anio" binding:"required,gte=1900,lte=2100"`
	Color           string `json:"color" binding:"required,max=50"`
	Placas          string `json:"placas" binding:"required,max=20"`
	ProblemaIngreso string `json:"problema_ingreso" binding:"required"`

	PropietarioID *uint         `json:"propietario_id"`
	Propietario   *OwnerPayload `json:"propietario"`
}

type UpdateVehicleRequest struct {
	Marca           *string    `json:"marca,omitempty" binding:"omitempty,max=100"`
	Modelo          *string    `json:"modelo,omitempty" binding:"omitempty,max=100"`
	Anio            *int       `json:"anio,omitempty" binding:"omitempty,gte=1900,lte=2100"`
	Color           *string    `json:"color,omitempty" binding:"omitempty,max=50"`
	Placas          *string    `json:"placas,omitempty" binding:"omitempty,max=20"`
	ProblemaIngreso *string    `json:"problema_ingreso,omitempty"`
	FechaSalida     *time.Time `json:"fecha_salida,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *VehicleHandler) Create(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	in := ucVehicle.CreateVehicleInput{
		Marca:           req.Marca,
		Modelo:          req.Modelo,
		Anio:            req.Anio,
		Color:           req.Color,
		Placas:          req.Placas,
		ProblemaIngreso: req.ProblemaIngreso,
		PropietarioID:   req.PropietarioID,
	}
	if req.Propietario != nil {
		in.Propietario = &ucVehicle.OwnerInput{
			NombreCompleto: req.Propietario.NombreCompleto,
			Telefono:       req.Propietario.Telefono,
		}
	}

	v, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "propietario_requerido"):
			httperr.BadRequest(c, "propietario_requerido",
				"Debe proporcionar propietario_id o datos del propietario")
		case errors.Is(err, gorm.ErrRecordNotFound):
			httperr.NotFound(c, "propietario_no_encontrado", "Propietario no encontrado")
		case errors.Is(err, gorm.ErrDuplicatedKey):
			httperr.Conflict(c, "placas_duplicadas", "Ya existe un vehículo con esas placas.")
		default:
			httperr.Internal(c, "vehicle_create_failed", "Error al registrar el vehículo.")
		}
		return
	}

	c.JSON(http.StatusCreated, v)
}

// ======================================================
// LIST
// ======================================================

func (h *VehicleHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	// activos: "true" / "false" / ausente
	var activos *bool
	switch c.Query("activos") {
	case "true":
		t := true
		activos = &t
	case "false":
		f := false
		activos = &f
	}

	vehicles, err := h.listUC.Execute(c.Request.Context(), ucVehicle.ListVehiclesInput{
		Skip:    skip,
		Limit:   limit,
		Activos: activos,
	})
	if err != nil {
		httperr.Internal(c, "vehicle_list_failed", "Error al listar vehículos.")
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// ======================================================
// GET (agregado completo)
// ======================================================

func (h *VehicleHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "El id debe ser numérico.")
		return
	}

	v, err := h.detailUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "vehiculo_no_encontrado", "Vehículo no encontrado")
			return
		}
		httperr.Internal(c, "vehicle_get_failed", "Error al consultar el vehículo.")
		return
	}

	c.JSON(http.StatusOK, v)
}

// ======================================================
// UPDATE (parche parcial)
// ======================================================

func (h *VehicleHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "El id debe ser numérico.")
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	patch := domain.VehicleUpdate{
		Marca:           req.Marca,
		Modelo:          req.Modelo,
		Anio:            req.Anio,
		Color:           req.Color,
		Placas:          req.Placas,
		ProblemaIngreso: req.ProblemaIngreso,
		FechaSalida:     req.FechaSalida,
	}

	v, err := h.updateUC.Execute(c.Request.Context(), uint(id), patch)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			httperr.NotFound(c, "vehiculo_no_encontrado", "Vehículo no encontrado")
		case errors.Is(err, gorm.ErrDuplicatedKey):
			httperr.Conflict(c, "placas_duplicadas", "Ya existe un vehículo con esas placas.")
		default:
			httperr.Internal(c, "vehicle_update_failed", "Error al actualizar el vehículo.")
		}
		return
	}

	c.JSON(http.StatusOK, v)
}

// ======================================================
// DELETE (con cascada de defectos e historial)
// ======================================================

func (h *VehicleHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "El id debe ser numérico.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "vehiculo_no_encontrado", "Vehículo no encontrado")
			return
		}
		httperr.Internal(c, "vehicle_delete_failed", "Error al eliminar el vehículo.")
		return
	}

	c.Status(http.StatusNoContent)
}
