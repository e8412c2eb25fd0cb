package sales_report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook.
const (
	SheetSummary     = "Summary"
	SheetTopProducts = "Top Products"
	SheetSalesByDay  = "Sales By Day"
)

// WriteXLSX writes report as an XLSX workbook to w.
func WriteXLSX(w io.Writer, report *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}

	category := report.Category
	if category == "" {
		category = "All"
	}
	summary := [][]any{
		{"Metric", "Value"},
		{"Start Date", report.Start.Format(DayLayout)},
		{"End Date", report.End.Format(DayLayout)},
		{"Category", category},
		{"Total Sales", report.TotalSales},
		{"Total Revenue", report.TotalRevenue.Float64()},
		{"Total Profit", report.TotalProfit.Float64()},
		{"Profit Margin (%)", report.ProfitMargin},
		{"Average Order Value", report.AverageOrderValue.Float64()},
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetTopProducts); err != nil {
		return err
	}
	top := [][]any{{"Product", "Units Sold", "Revenue"}}
	for _, p := range report.TopProducts {
		top = append(top, []any{p.ProductName, p.Quantity, p.Revenue.Float64()})
	}
	if err := writeRows(f, SheetTopProducts, top); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetSalesByDay); err != nil {
		return err
	}
	days := [][]any{{"Date", "Sales", "Revenue"}}
	for _, d := range report.SalesByDay {
		days = append(days, []any{d.Date, d.Sales, d.Revenue.Float64()})
	}
	if err := writeRows(f, SheetSalesByDay, days); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
