package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sergiodev3/taller-autos-app/internal/httperr"
	"github.com/sergiodev3/taller-autos-app/internal/models"
)

type OwnerHandler struct {
	db *gorm.DB
}

func NewOwnerHandler(db *gorm.DB) *OwnerHandler {
	return &OwnerHandler{db: db}
}

// --------- Requests ---------

type CreateOwnerRequest struct {
	NombreCompleto string `json:"nombre_completo" binding:"required,min=1,max=200"`
	Telefono       string `json:"telefono" binding:"required,min=1,max=20"`
}

// --------- Handlers ---------

func (h *OwnerHandler) Create(c *gin.Context) {
	var req CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	owner := models.Owner{
		NombreCompleto: req.NombreCompleto,
		Telefono:       req.Telefono,
	}

	if err := h.db.Create(&owner).Error; err != nil {
		httperr.Internal(c, "owner_create_failed", "Error al crear el propietario.")
		return
	}

	c.JSON(http.StatusCreated, owner)
}

func (h *OwnerHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var owners []models.Owner
	if err := h.db.
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&owners).Error; err != nil {

		httperr.Internal(c, "owner_list_failed", "Error al listar propietarios.")
		return
	}

	c.JSON(http.StatusOK, owners)
}

func (h *OwnerHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "El id debe ser numérico.")
		return
	}

	var owner models.Owner
	if err := h.db.First(&owner, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "propietario_no_encontrado", "Propietario no encontrado")
			return
		}
		httperr.Internal(c, "owner_get_failed", "Error al consultar el propietario.")
		return
	}

	c.JSON(http.StatusOK, owner)
}
