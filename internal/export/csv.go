// Package export renders income statements for download.
package export

import (
	"io"

	"github.com/gocarina/gocsv"

	"github.com/rogerio-castellano/financial-data-api/internal/models"
)

// Row is one CSV line; the columns match what the web client displays.
type Row struct {
	Date            string `csv:"date"`
	Symbol          string `csv:"symbol"`
	Revenue         int64  `csv:"revenue"`
	GrossProfit     string `csv:"grossProfit"`
	OperatingIncome string `csv:"operatingIncome"`
	NetIncome       int64  `csv:"netIncome"`
	EPS             string `csv:"eps"`
}

func Rows(records []models.FinancialRecord) []Row {
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = Row{
			Date:            r.Date,
			Symbol:          r.Symbol,
			Revenue:         r.Revenue,
			GrossProfit:     r.GrossProfit.String(),
			OperatingIncome: r.OperatingIncome.String(),
			NetIncome:       r.NetIncome,
			EPS:             r.EPS.String(),
		}
	}
	return rows
}

// WriteCSV writes a header line followed by one line per record.
func WriteCSV(w io.Writer, records []models.FinancialRecord) error {
	rows := Rows(records)
	return gocsv.Marshal(&rows, w)
}
