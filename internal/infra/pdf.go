package infra

// pdf.go — cash close report generation using go-pdf/fpdf.
// One A5 page per close: expected vs counted per payment method, totals and
// the day's difference. Streamed to the caller, never written to disk.

import (
	"bytes"

	"github.com/raweer420/CRMBUTECO/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateCashClosePDF renders a printable reconciliation report for one
// cash close and returns the document bytes.
func GenerateCashClosePDF(cc *model.CashClose) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Fechamento de Caixa", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	subtitle := cc.Date.Format("02/01/2006")
	if cc.Shift != nil && *cc.Shift != "" {
		subtitle += "  —  " + *cc.Shift
	}
	pdf.CellFormat(contentW, 6, subtitle, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Method table ─────────────────────────────────────────────────────────
	col1 := contentW * 0.34 // method
	col2 := contentW * 0.33 // expected
	col3 := contentW * 0.33 // counted

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Método", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Esperado", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col3, 6, "Contado", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, a := range cc.Amounts {
		pdf.CellFormat(col1, 6, string(a.Method), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, "R$ "+a.Expected.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col3, 6, "R$ "+a.Counted.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	expectedTotal := decimal.Zero
	countedTotal := decimal.Zero
	for _, a := range cc.Amounts {
		expectedTotal = expectedTotal.Add(a.Expected)
		countedTotal = countedTotal.Add(a.Counted)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1, 7, "Total", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "R$ "+expectedTotal.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.CellFormat(col3, 7, "R$ "+countedTotal.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2, 8, "Diferença:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 8, "R$ "+cc.Difference.StringFixed(2), "", 1, "R", false, 0, "")

	// ── Observation ──────────────────────────────────────────────────────────
	if cc.Observation != nil && *cc.Observation != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.MultiCell(contentW, 5, "Obs.: "+*cc.Observation, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
