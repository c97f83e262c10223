package pdf

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ======================================================
// Datos del comprobante
// ======================================================

type Vehiculo struct {
	ID              uint
	Marca           string
	Modelo          string
	Anio            int
	Color           string
	Placas          string
	ProblemaIngreso string
}

type Propietario struct {
	NombreCompleto string
	Telefono       string
}

type Defecto struct {
	Tipo        string
	Ubicacion   string
	Descripcion string
	Automatico  bool
}

type Receipt struct {
	Vehiculo    Vehiculo
	Propietario Propietario
	Defectos    []Defecto

	// Logo opcional del taller; se omite si el archivo no existe.
	LogoPath string

	Generado time.Time
}

// Límites de la tabla de defectos: el recorte es silencioso.
const (
	maxUbicacion   = 20
	maxDescripcion = 40
)

const notaLegal = "Este documento certifica el estado del vehículo al momento de su ingreso al taller. " +
	"El cliente acepta que los defectos aquí registrados existían previo al servicio."

// ======================================================
// Render
// ======================================================

// Render genera el comprobante de ingreso como bytes PDF. Es una
// función pura sobre los datos ya armados: no consulta la base ni
// escribe en disco (solo lee el logo, si se configuró).
func Render(r Receipt) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "Letter", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetMargins(15, 15, 15)
	doc.AddPage()

	// -------- Logo --------
	if r.LogoPath != "" {
		if _, err := os.Stat(r.LogoPath); err == nil {
			doc.ImageOptions(r.LogoPath, 15, 12, 50, 25, false,
				gofpdf.ImageOptions{ReadDpi: true}, 0, "")
			doc.Ln(30)
		}
	}

	// -------- Título --------
	doc.SetFont("Helvetica", "B", 22)
	doc.SetTextColor(26, 54, 93)
	doc.CellFormat(0, 12, tr("COMPROBANTE DE INGRESO DE VEHÍCULO"), "", 1, "C", false, 0, "")
	doc.Ln(4)

	// -------- Fecha y folio --------
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, 6, tr(fmt.Sprintf("Fecha de Ingreso: %s", r.Generado.Format("02/01/2006 15:04"))), "", 1, "C", false, 0, "")
	doc.CellFormat(0, 6, fmt.Sprintf("Folio: %d", r.Vehiculo.ID), "", 1, "C", false, 0, "")
	doc.Ln(6)

	// -------- Propietario --------
	heading(doc, tr, "DATOS DEL PROPIETARIO")
	kvRow(doc, tr, "Nombre Completo:", r.Propietario.NombreCompleto)
	kvRow(doc, tr, "Teléfono:", r.Propietario.Telefono)
	doc.Ln(5)

	// -------- Vehículo --------
	heading(doc, tr, "DATOS DEL VEHÍCULO")
	kvRow(doc, tr, "Marca:", r.Vehiculo.Marca)
	kvRow(doc, tr, "Modelo:", r.Vehiculo.Modelo)
	kvRow(doc, tr, "Año:", fmt.Sprintf("%d", r.Vehiculo.Anio))
	kvRow(doc, tr, "Color:", r.Vehiculo.Color)
	kvRow(doc, tr, "Placas:", r.Vehiculo.Placas)
	doc.Ln(5)

	// -------- Motivo de ingreso --------
	heading(doc, tr, "MOTIVO DE INGRESO")
	doc.SetFont("Helvetica", "", 10)
	doc.SetFillColor(255, 250, 240)
	doc.MultiCell(0, 6, tr(r.Vehiculo.ProblemaIngreso), "1", "L", true)
	doc.Ln(5)

	// -------- Defectos --------
	heading(doc, tr, "DEFECTOS Y DAÑOS ESTÉTICOS EXISTENTES")
	if len(r.Defectos) > 0 {
		defectsTable(doc, tr, r.Defectos)
	} else {
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(0, 6, tr("No se registraron defectos estéticos."), "", 1, "L", false, 0, "")
	}
	doc.Ln(18)

	// -------- Firmas --------
	signatures(doc, tr, r.Propietario.NombreCompleto)

	// -------- Nota legal --------
	doc.Ln(8)
	doc.SetFont("Helvetica", "I", 8)
	doc.MultiCell(0, 4, tr(notaLegal), "", "C", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ======================================================
// Secciones
// ======================================================

func heading(doc *gofpdf.Fpdf, tr func(string) string, text string) {
	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(45, 55, 72)
	doc.CellFormat(0, 9, tr(text), "", 1, "L", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(1)
}

func kvRow(doc *gofpdf.Fpdf, tr func(string) string, label, value string) {
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(226, 232, 240)
	doc.CellFormat(50, 8, tr(label), "1", 0, "R", true, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(130, 8, tr(value), "1", 1, "L", false, 0, "")
}

func defectsTable(doc *gofpdf.Fpdf, tr func(string) string, defectos []Defecto) {
	widths := []float64{10, 28, 42, 75, 25}
	headers := []string{"#", "Tipo", "Ubicación", "Descripción", "Detección"}

	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(45, 55, 72)
	doc.SetTextColor(245, 245, 245)
	for i, h := range headers {
		doc.CellFormat(widths[i], 8, tr(h), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	doc.SetFillColor(245, 245, 220)
	doc.SetTextColor(0, 0, 0)
	for idx, d := range defectos {
		deteccion := "Manual"
		if d.Automatico {
			deteccion = "IA"
		}

		ubicacion := d.Ubicacion
		if ubicacion == "" {
			ubicacion = "N/A"
		}

		cols := []string{
			fmt.Sprintf("%d", idx+1),
			d.Tipo,
			Truncate(ubicacion, maxUbicacion),
			Truncate(d.Descripcion, maxDescripcion),
			deteccion,
		}
		for i, col := range cols {
			doc.CellFormat(widths[i], 7, tr(col), "1", 0, "C", true, 0, "")
		}
		doc.Ln(-1)
	}
}

func signatures(doc *gofpdf.Fpdf, tr func(string) string, cliente string) {
	half := 90.0

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(half, 6, "________________________________", "", 0, "C", false, 0, "")
	doc.CellFormat(half, 6, "________________________________", "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(half, 6, tr("Firma del Cliente"), "", 0, "C", false, 0, "")
	doc.CellFormat(half, 6, tr("Firma del Taller"), "", 1, "C", false, 0, "")
	doc.Ln(6)

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(half, 6, tr("Nombre: "+cliente), "", 0, "C", false, 0, "")
	doc.CellFormat(half, 6, "Nombre: _______________", "", 1, "C", false, 0, "")
}

// Truncate recorta s a max caracteres (runas), sin error.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
