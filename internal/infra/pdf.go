package infra

// pdf.go — quotation PDF generation using go-pdf/fpdf.
// One A4 page per quotation: workshop header, client block, material line
// table and the estimated total. Written to storagePath/cotizacion_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/VexyyCat/ChromaBags/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateCotizacionPDF renders the quotation document and returns the
// absolute path to the generated file. storagePath is created if needed.
func GenerateCotizacionPDF(cot *model.Cotizacion, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("cotizacion_%s.pdf", cot.ID.String())
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 16, 18)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 36

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, "ChromaBags", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Cotizacion de materiales", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Quotation info ────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Cotizacion: "+cot.ID.String(), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Fecha: "+cot.FechaEmision.Format("02/01/2006"), "", 1, "L", false, 0, "")
	if cot.Cliente != nil {
		pdf.CellFormat(contentW, 5, "Cliente: "+cot.Cliente.Nombre, "", 1, "L", false, 0, "")
		if cot.Cliente.Email != "" {
			pdf.CellFormat(contentW, 5, "Email: "+cot.Cliente.Email, "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(4)

	// ── Items table ───────────────────────────────────────────────────────────
	col1 := contentW * 0.44 // material
	col2 := contentW * 0.16 // cantidad
	col3 := contentW * 0.18 // costo unitario
	col4 := contentW * 0.22 // subtotal

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 7, "Material", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Cantidad", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 7, "Costo unit.", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range cot.Items {
		nombre := ""
		unidad := ""
		if item.Material != nil {
			nombre = item.Material.Nombre
			unidad = item.Material.UnidadMedida
		}
		if len(nombre) > 34 {
			nombre = nombre[:33] + "…"
		}
		cantidad := item.Cantidad.StringFixed(2)
		if unidad != "" {
			cantidad += " " + unidad
		}
		pdf.CellFormat(col1, 6, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, cantidad, "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "$"+item.CostoUnitario.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, "$"+item.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(18, pdf.GetY(), pageW-18, pdf.GetY())
	pdf.Ln(3)

	// ── Total ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2+col3, 8, "TOTAL ESTIMADO:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 8, "$"+cot.TotalEstimado.StringFixed(2), "", 1, "R", false, 0, "")

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "Cotizacion valida por 15 dias. Precios sujetos a disponibilidad de materiales.", "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
