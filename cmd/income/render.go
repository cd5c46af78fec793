package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rogerio-castellano/financial-data-api/internal/export"
	"github.com/rogerio-castellano/financial-data-api/internal/models"
)

const (
	formatTable = "table"
	formatCSV   = "csv"
	formatJSON  = "json"
)

func validFormat(format string) bool {
	switch format {
	case formatTable, formatCSV, formatJSON:
		return true
	}
	return false
}

func render(w io.Writer, format string, records []models.FinancialRecord) error {
	switch format {
	case formatCSV:
		return export.WriteCSV(w, records)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case formatTable:
		renderTable(w, records)
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

// renderTable prints one row per statement, numbers right-aligned.
func renderTable(w io.Writer, records []models.FinancialRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	t.AppendHeader(table.Row{"Date", "Revenue", "Gross Profit", "Operating Income", "Net Income", "EPS"})
	for _, r := range records {
		t.AppendRow(table.Row{
			r.Date,
			strconv.FormatInt(r.Revenue, 10),
			r.GrossProfit.String(),
			r.OperatingIncome.String(),
			strconv.FormatInt(r.NetIncome, 10),
			r.EPS.String(),
		})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{fmt.Sprintf("%d statements", len(records))})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault

	configs := make([]table.ColumnConfig, 0, 5)
	for col := 2; col <= 6; col++ {
		configs = append(configs, table.ColumnConfig{Number: col, Align: text.AlignRight})
	}
	t.SetColumnConfigs(configs)

	t.Render()
}
