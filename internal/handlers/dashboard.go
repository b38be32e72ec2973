package handlers

import (
	"net/http"

	"github.com/MichaelUniHorus/dashboard-analytics/internal/i18n"
	"github.com/MichaelUniHorus/dashboard-analytics/internal/models"
)

// Index renders the domain chooser.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(w, r)
	h.renderTemplate(w, "index.html", map[string]interface{}{
		"T":    i18n.T(lang),
		"Lang": lang,
	})
}

// TransactionsPage renders the financial dashboard with its filter options.
func (h *Handler) TransactionsPage(w http.ResponseWriter, r *http.Request) {
	h.domainPage(w, r, models.Transactions, "transactions.html")
}

// EquipmentPage renders the telemetry dashboard with its filter options.
func (h *Handler) EquipmentPage(w http.ResponseWriter, r *http.Request) {
	h.domainPage(w, r, models.Equipment, "equipment.html")
}

func (h *Handler) domainPage(w http.ResponseWriter, r *http.Request, schema models.Schema, page string) {
	lang := h.lang(w, r)

	options := map[string][]string{}
	columns := make([]string, 0, len(schema.DimColumns)+1)
	columns = append(columns, schema.DimColumns...)
	columns = append(columns, schema.StatusColumn)
	for _, col := range columns {
		values, err := h.repo.DistinctValues(r.Context(), schema, col)
		if err != nil {
			http.Error(w, "Failed to load filter options", http.StatusInternalServerError)
			return
		}
		options[col] = values
	}

	h.renderTemplate(w, page, map[string]interface{}{
		"T":       i18n.T(lang),
		"Lang":    lang,
		"Domain":  schema.Domain,
		"Options": options,
	})
}
