package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/MichaelUniHorus/dashboard-analytics/internal/engine"
	"github.com/MichaelUniHorus/dashboard-analytics/internal/models"
)

// export handles GET /export: the filtered, sorted row list as an XLSX
// workbook. Same filter and sort semantics as /list, without pagination.
func (h *Handler) export(schema models.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter, err := engine.ParseFilter(schema, q)
		if err != nil {
			h.writeError(w, err)
			return
		}
		rows, err := h.repo.Fetch(r.Context(), schema, filter)
		if err != nil {
			h.writeError(w, err)
			return
		}
		sorted, err := engine.Sort(schema, rows, q.Get("sort"), engine.ParseSortDirection(q.Get("dir")))
		if err != nil {
			h.writeError(w, err)
			return
		}

		f := excelize.NewFile()
		defer f.Close()
		sheet := schema.Domain
		f.SetSheetName("Sheet1", sheet)

		columns := append([]string{"id", schema.TimeColumn, schema.ValueColumn, schema.StatusColumn}, schema.DimColumns...)
		columns = append(columns, schema.ExtraColumns...)
		for i, col := range columns {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			_ = f.SetCellValue(sheet, cell, col)
		}
		for rowIdx, rec := range sorted {
			view := rec.View(schema)
			for colIdx, col := range columns {
				cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
				_ = f.SetCellValue(sheet, cell, view[col])
			}
		}

		filename := fmt.Sprintf("%s_%s.xlsx", schema.Domain, time.Now().UTC().Format("20060102"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		if err := f.Write(w); err != nil {
			// Headers are already sent; the client sees a truncated download.
			log.Printf("export write failed: %v", err)
		}
	}
}
