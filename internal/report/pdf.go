package report

import (
	"bytes"
	"fmt"

	gofpdf "github.com/go-pdf/fpdf"
)

// Brand palette shared by every PDF section.
var (
	pdfIndigo = [3]int{99, 102, 241}
	pdfInk    = [3]int{31, 41, 55}
	pdfGray   = [3]int{107, 114, 128}
	pdfTrack  = [3]int{229, 231, 235}
	pdfGreen  = [3]int{16, 185, 129}
	pdfRed    = [3]int{239, 68, 68}
)

// RenderPDF serializes a composed report as a printable PDF document.
// Like RenderHTML it is a pure function of the report data.
func RenderPDF(rep *Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	addPDFHeader(pdf, rep)
	addPDFScore(pdf, rep)
	addPDFSection(pdf, "Executive Summary")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(pdfGray[0], pdfGray[1], pdfGray[2])
	pdf.MultiCell(0, 5, rep.ExecutiveSummary, "", "L", false)
	pdf.Ln(6)

	addPDFCategories(pdf, rep)
	addPDFPriorityActions(pdf, rep)
	addPDFCompliance(pdf, rep)

	pdf.SetY(-28)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(pdfGray[0], pdfGray[1], pdfGray[2])
	pdf.CellFormat(0, 4, "This report was generated by GoCyberCheck.", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 4, "For questions or support, contact: support@gocybercheck.com", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf report: %w", err)
	}
	return buf.Bytes(), nil
}

func addPDFHeader(pdf *gofpdf.Fpdf, rep *Report) {
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(pdfIndigo[0], pdfIndigo[1], pdfIndigo[2])
	pdf.CellFormat(0, 10, "GoCyberCheck", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(pdfInk[0], pdfInk[1], pdfInk[2])
	pdf.CellFormat(0, 8, rep.CompanyName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(pdfGray[0], pdfGray[1], pdfGray[2])
	pdf.CellFormat(0, 6, "Cybersecurity Assessment Report - "+rep.CompletedAt, "", 1, "C", false, 0, "")

	pdf.SetDrawColor(pdfIndigo[0], pdfIndigo[1], pdfIndigo[2])
	pdf.SetLineWidth(0.8)
	pdf.Line(15, pdf.GetY()+2, 195, pdf.GetY()+2)
	pdf.Ln(10)
}

func addPDFScore(pdf *gofpdf.Fpdf, rep *Report) {
	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetTextColor(pdfIndigo[0], pdfIndigo[1], pdfIndigo[2])
	pdf.CellFormat(0, 14, fmt.Sprintf("%d%%", rep.OverallScore), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(pdfInk[0], pdfInk[1], pdfInk[2])
	pdf.CellFormat(0, 6, fmt.Sprintf("Overall Security Score (%s)", ScoreTier(rep.OverallScore)), "", 1, "C", false, 0, "")
	pdf.Ln(6)
}

func addPDFSection(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFillColor(pdfIndigo[0], pdfIndigo[1], pdfIndigo[2])
	pdf.Rect(15, pdf.GetY(), 1.5, 7, "F")
	pdf.SetX(19)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(pdfInk[0], pdfInk[1], pdfInk[2])
	pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

// progressBar draws a horizontal score bar at the current Y position.
func progressBar(pdf *gofpdf.Fpdf, percent int) {
	y := pdf.GetY()
	pdf.SetFillColor(pdfTrack[0], pdfTrack[1], pdfTrack[2])
	pdf.Rect(15, y, 180, 2.5, "F")
	if percent > 0 {
		pdf.SetFillColor(pdfIndigo[0], pdfIndigo[1], pdfIndigo[2])
		pdf.Rect(15, y, 180*float64(percent)/100, 2.5, "F")
	}
	pdf.SetY(y + 5)
}

func addPDFCategories(pdf *gofpdf.Fpdf, rep *Report) {
	addPDFSection(pdf, "Category Assessment")
	for _, cr := range rep.CategoryResults {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(pdfInk[0], pdfInk[1], pdfInk[2])
		pdf.CellFormat(150, 6, cr.Title, "", 0, "L", false, 0, "")
		pdf.SetTextColor(pdfIndigo[0], pdfIndigo[1], pdfIndigo[2])
		pdf.CellFormat(30, 6, fmt.Sprintf("%d%%", cr.Percent), "", 1, "R", false, 0, "")
		progressBar(pdf, cr.Percent)

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(pdfGray[0], pdfGray[1], pdfGray[2])
		for _, rec := range cr.Recommendations {
			pdf.SetX(19)
			pdf.MultiCell(0, 4.5, "- "+rec, "", "L", false)
		}
		pdf.Ln(4)
	}
}

func addPDFPriorityActions(pdf *gofpdf.Fpdf, rep *Report) {
	addPDFSection(pdf, "Priority Actions")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(pdfInk[0], pdfInk[1], pdfInk[2])
	for i, action := range rep.PriorityActions {
		pdf.SetX(19)
		pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s", i+1, action), "", "L", false)
	}
	pdf.Ln(6)
}

func addPDFCompliance(pdf *gofpdf.Fpdf, rep *Report) {
	addPDFSection(pdf, "Compliance Mapping")
	pdf.SetFont("Helvetica", "B", 10)
	for _, entry := range rep.ComplianceMapping {
		pdf.SetTextColor(pdfInk[0], pdfInk[1], pdfInk[2])
		pdf.CellFormat(60, 7, entry.Framework, "", 0, "L", false, 0, "")
		if entry.Status == statusCompliant {
			pdf.SetTextColor(pdfGreen[0], pdfGreen[1], pdfGreen[2])
		} else {
			pdf.SetTextColor(pdfRed[0], pdfRed[1], pdfRed[2])
		}
		pdf.CellFormat(0, 7, entry.Status, "", 1, "L", false, 0, "")
	}
}
