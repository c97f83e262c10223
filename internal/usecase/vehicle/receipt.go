package vehicle

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/sergiodev3/taller-autos-app/internal/audit"
	"github.com/sergiodev3/taller-autos-app/internal/models"
	"github.com/sergiodev3/taller-autos-app/internal/pdf"
	"github.com/sergiodev3/taller-autos-app/internal/storage"
)

// GenerateReceipt arma el agregado del vehículo, genera el
// comprobante PDF y lo guarda en el área de documentos. La
// generación no escribe nada en la base: un fallo aquí no deja
// estado parcial.
type GenerateReceipt struct {
	detail *GetVehicleDetail
	store  storage.FileStore
	logo   string
	audit  *audit.Dispatcher
}

func NewGenerateReceipt(
	detail *GetVehicleDetail,
	store storage.FileStore,
	logo string,
	audit *audit.Dispatcher,
) *GenerateReceipt {
	return &GenerateReceipt{
		detail: detail,
		store:  store,
		logo:   logo,
		audit:  audit,
	}
}

func (uc *GenerateReceipt) Execute(
	ctx context.Context,
	vehiculoID uint,
) (string, []byte, error) {

	v, err := uc.detail.Execute(ctx, vehiculoID)
	if err != nil {
		return "", nil, err
	}

	defectos := make([]pdf.Defecto, 0, len(v.Defectos))
	for _, d := range v.Defectos {
		defectos = append(defectos, pdf.Defecto{
			Tipo:        d.Tipo,
			Ubicacion:   d.Ubicacion,
			Descripcion: d.Descripcion,
			Automatico:  d.DetectadoAutomaticamente == models.DeteccionIA,
		})
	}

	data, err := pdf.Render(pdf.Receipt{
		Vehiculo: pdf.Vehiculo{
			ID:              v.ID,
			Marca:           v.Marca,
			Modelo:          v.Modelo,
			Anio:            v.Anio,
			Color:           v.Color,
			Placas:          v.Placas,
			ProblemaIngreso: v.ProblemaIngreso,
		},
		Propietario: pdf.Propietario{
			NombreCompleto: v.Propietario.NombreCompleto,
			Telefono:       v.Propietario.Telefono,
		},
		Defectos: defectos,
		LogoPath: uc.logo,
		Generado: time.Now(),
	})
	if err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf(
		"comprobante_%s_%s.pdf",
		v.Placas,
		time.Now().Format("20060102_150405"),
	)

	if err := uc.store.Save(ctx, "pdfs/"+filename, bytes.NewReader(data), "application/pdf"); err != nil {
		return "", nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "receipt_generated",
		Entity:   "vehicle",
		EntityID: &v.ID,
		Metadata: map[string]any{"filename": filename},
	})

	return filename, data, nil
}
