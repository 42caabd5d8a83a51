// Package xlsx renders read-side projections as Excel workbooks.
package xlsx

import (
	"fmt"
	"io"
	"strings"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/xuri/excelize/v2"
)

const (
	StockSheet  = "Stock"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var stockHeader = []any{
	"Item ID", "Name", "Length", "Width", "Height", "Weight", "Available", "Reserved", "Cargo types", "Hint",
}

// WriteStockReport writes one row per item under a header row.
func WriteStockReport(w io.Writer, report queries.GetStockReportQueryResponse) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), StockSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(StockSheet, "A1", &stockHeader); err != nil {
		return err
	}
	if err := f.SetPanes(StockSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	for i, it := range report.Items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		codes := make([]string, 0, len(it.CargoTypes))
		for _, c := range it.CargoTypes {
			codes = append(codes, fmt.Sprint(int(c)))
		}
		row := []any{
			it.ItemID.String(),
			it.Name,
			it.Dimensions.Length(),
			it.Dimensions.Width(),
			it.Dimensions.Height(),
			it.Weight,
			it.Available,
			it.Reserved,
			strings.Join(codes, ","),
			it.Hint.String(),
		}
		if err = f.SetSheetRow(StockSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
