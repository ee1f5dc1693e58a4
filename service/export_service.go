package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"flip-agent/domain"
)

// ExportService renders a computed report as a CSV table or a printable
// PDF document.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// CSV writes the input parameters and computed metrics as two-column rows.
func (s *ExportService) CSV(report domain.DealReport) ([]byte, error) {
	input := report.Input
	project := report.Project
	investor := report.Investor

	rows := [][]string{
		{"Parameter", "Value"},
		{"", ""},
	}
	appendSection := func(title string, section [][]string) {
		rows = append(rows, []string{"=== " + title + " ===", ""})
		rows = append(rows, section...)
		rows = append(rows, []string{"", ""})
	}

	appendSection("PURCHASE", [][]string{
		{"Deal type", string(input.DealType)},
		{"Purchase price", fmtAmount(input.PurchasePrice)},
		{"DLD (%)", fmtAmount(input.DldPct)},
		{"Buyer fee (%)", fmtAmount(input.BuyerFeePct)},
		{"Buyer fee VAT (%)", fmtAmount(input.BuyerFeeVatPct)},
		{"Trustee fee", fmtAmount(input.TrusteeFee)},
	})
	if input.DealType == domain.DealOffplan && input.Offplan != nil {
		section := [][]string{
			{"Paid to date", fmtAmount(input.Offplan.PaidAmount)},
		}
		for i, p := range input.Offplan.PaymentSchedule {
			section = append(section, []string{
				fmt.Sprintf("Scheduled payment %d (%s)", i+1, p.DueDate),
				fmtAmount(p.Amount),
			})
		}
		section = append(section, []string{"Remaining debt at sale", fmtAmount(project.RemainingDebt)})
		appendSection("OFF-PLAN", section)
	}
	appendSection("RENOVATION", [][]string{
		{"Renovation budget", fmtAmount(input.RenovationBudget)},
		{"Reserve (%)", fmtAmount(input.ReservePct)},
	})
	appendSection("CARRYING", [][]string{
		{"Service charge (annual)", fmtAmount(input.ServiceChargeAnnual)},
		{"DEWA (monthly)", fmtAmount(input.DewaMonthly)},
	})
	appendSection("SALE", [][]string{
		{"Sale price", fmtAmount(input.SalePrice)},
		{"Seller fee (%)", fmtAmount(input.SellerFeePct)},
		{"Seller fee VAT (%)", fmtAmount(input.SellerFeeVatPct)},
	})
	appendSection("TIMING", [][]string{
		{"Repair (months)", fmt.Sprintf("%d", input.MonthsRepair)},
		{"Exposure (months)", fmt.Sprintf("%d", input.MonthsExposure)},
		{"Total (months)", fmt.Sprintf("%d", report.Derived.MonthsTotal)},
	})
	appendSection("PROFIT SPLIT", [][]string{
		{"Investor share (%)", fmtAmount(input.InvestorSharePct)},
		{"Operator share (%)", fmtAmount(input.OperatorSharePct)},
	})
	appendSection("PROJECT METRICS", [][]string{
		{"Total costs", fmtAmount(project.TotalCosts)},
		{"Net proceeds", fmtAmount(project.NetProceeds)},
		{"Profit", fmtAmount(project.Profit)},
		{"MOIC", fmt.Sprintf("%.4f", project.Moic)},
		{"ROI for period (%)", FormatPct(ToPct(project.RoiPeriod))},
		{"IRR annual (%)", FormatPct(ToPct(project.IrrAnnual))},
		{"APR simple (%)", FormatPct(ToPct(project.AprSimple))},
		{"Break-even sale price", fmtAmount(project.BreakEvenSalePrice)},
		{"Break-even gap", fmtAmount(project.BreakEvenGapAbs)},
		{"Break-even gap (% of price)", FormatPct(ToPct(project.BreakEvenGapPctOfPrice))},
	})
	appendSection("INVESTOR METRICS", [][]string{
		{"Capital", fmtAmount(investor.Capital)},
		{"Profit share", fmtAmount(investor.ProfitShare)},
		{"Cash back", fmtAmount(investor.CashBack)},
		{"MOIC", fmt.Sprintf("%.4f", investor.Moic)},
		{"ROI for period (%)", FormatPct(ToPct(investor.RoiPeriod))},
		{"IRR annual (%)", FormatPct(ToPct(investor.IrrAnnual))},
	})

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("writing csv: %w", err)
	}
	return buf.Bytes(), nil
}

// PDF renders a one-page deal report.
func (s *ExportService) PDF(report domain.DealReport) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Flip Deal Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Flip Deal Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 6, time.Now().Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)

	input := report.Input
	project := report.Project
	investor := report.Investor

	writeSection(pdf, "Deal", [][2]string{
		{"Type", string(input.DealType)},
		{"Purchase price", pdfMoney(input.PurchasePrice)},
		{"Sale price", pdfMoney(input.SalePrice)},
		{"Renovation budget", pdfMoney(input.RenovationBudget)},
		{"Duration", fmt.Sprintf("%d + %d months", input.MonthsRepair, input.MonthsExposure)},
	})
	writeSection(pdf, "Project", [][2]string{
		{"Total costs", pdfMoney(project.TotalCosts)},
		{"Net proceeds", pdfMoney(project.NetProceeds)},
		{"Profit", pdfMoney(project.Profit)},
		{"ROI for period", FormatPct(ToPct(project.RoiPeriod))},
		{"IRR annual", FormatPct(ToPct(project.IrrAnnual))},
		{"APR simple", FormatPct(ToPct(project.AprSimple))},
		{"MOIC", fmt.Sprintf("%.4f", project.Moic)},
		{"Break-even sale price", pdfMoney(project.BreakEvenSalePrice)},
	})
	if input.DealType == domain.DealOffplan {
		writeSection(pdf, "Off-plan", [][2]string{
			{"Remaining debt at sale", pdfMoney(project.RemainingDebt)},
		})
	}
	writeSection(pdf, "Investor", [][2]string{
		{"Capital", pdfMoney(investor.Capital)},
		{"Profit share", pdfMoney(investor.ProfitShare)},
		{"Cash back", pdfMoney(investor.CashBack)},
		{"ROI for period", FormatPct(ToPct(investor.RoiPeriod))},
		{"IRR annual", FormatPct(ToPct(investor.IrrAnnual))},
	})

	if len(report.Validation.Warnings) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, "Warnings", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, w := range report.Validation.Warnings {
			pdf.CellFormat(0, 5, pdfText("- "+w.Message), "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *fpdf.Fpdf, title string, rows [][2]string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(70, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, pdfText(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
}

// pdfText maps text to what the PDF core fonts can encode: the typographic
// minus from FormatMoney is outside Latin-1.
func pdfText(s string) string {
	return strings.ReplaceAll(s, minusSign, "-")
}

func pdfMoney(x float64) string {
	return pdfText(FormatMoney(x))
}

// fmtAmount is the CSV number form: plain digits, no grouping, no unit, so
// spreadsheets parse the column as numeric.
func fmtAmount(x float64) string {
	if x == float64(int64(x)) {
		return fmt.Sprintf("%d", int64(x))
	}
	return fmt.Sprintf("%g", x)
}
