package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sergiodev3/taller-autos-app/internal/httperr"
	ucVehicle "github.com/sergiodev3/taller-autos-app/internal/usecase/vehicle"
)

type ReceiptHandler struct {
	generateUC *ucVehicle.GenerateReceipt
}

func NewReceiptHandler(generateUC *ucVehicle.GenerateReceipt) *ReceiptHandler {
	return &ReceiptHandler{generateUC: generateUC}
}

// Generate arma el agregado del vehículo, produce el comprobante
// PDF, lo archiva y lo devuelve en la respuesta.
func (h *ReceiptHandler) Generate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("vehicle_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "El id debe ser numérico.")
		return
	}

	filename, data, err := h.generateUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "vehiculo_no_encontrado", "Vehículo no encontrado")
			return
		}
		httperr.Internal(c, "receipt_failed", "Error al generar el comprobante.")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
