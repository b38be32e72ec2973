// Package i18n holds the UI string tables for the dashboard pages.
package i18n

// Strings is one language's lookup table.
type Strings map[string]string

var translations = map[string]Strings{
	"en": {
		"app_name":               "Dashboard Analytics",
		"nav_home":               "Home",
		"nav_transactions":       "Transactions",
		"nav_equipment":          "Equipment",
		"home_title":             "Dashboard Analytics",
		"home_subtitle":          "Configurable operational reporting dashboard with SQL data",
		"financial_transactions": "Financial Transactions",
		"equipment_monitoring":   "Equipment Monitoring",
		"open_dashboard":         "Open Dashboard",
		"transactions_title":     "Financial Transactions Dashboard",
		"equipment_title":        "Equipment Monitoring Dashboard",
		"filters":                "Filters",
		"start_date":             "Start Date",
		"end_date":               "End Date",
		"category":               "Category",
		"all_categories":         "All Categories",
		"status":                 "Status",
		"all_statuses":           "All Statuses",
		"equipment":              "Equipment",
		"all_equipment":          "All Equipment",
		"metric":                 "Metric",
		"all_metrics":            "All Metrics",
		"group_by":               "Group By",
		"day":                    "Day",
		"month":                  "Month",
		"apply_filters":          "Apply Filters",
		"reset":                  "Reset",
		"total_amount":           "Total Amount",
		"count":                  "Count",
		"average":                "Average",
		"minimum":                "Minimum",
		"maximum":                "Maximum",
		"time_series":            "Time Series",
		"breakdown":              "Breakdown",
		"details":                "Details",
		"export_xlsx":            "Export XLSX",
		"no_data":                "No data for the selected filters",
	},
	"ru": {
		"app_name":               "Аналитика дашбордов",
		"nav_home":               "Главная",
		"nav_transactions":       "Транзакции",
		"nav_equipment":          "Оборудование",
		"home_title":             "Аналитика дашбордов",
		"home_subtitle":          "Настраиваемый операционный дашборд на SQL-данных",
		"financial_transactions": "Финансовые транзакции",
		"equipment_monitoring":   "Мониторинг оборудования",
		"open_dashboard":         "Открыть дашборд",
		"transactions_title":     "Дашборд финансовых транзакций",
		"equipment_title":        "Дашборд мониторинга оборудования",
		"filters":                "Фильтры",
		"start_date":             "Дата начала",
		"end_date":               "Дата окончания",
		"category":               "Категория",
		"all_categories":         "Все категории",
		"status":                 "Статус",
		"all_statuses":           "Все статусы",
		"equipment":              "Оборудование",
		"all_equipment":          "Всё оборудование",
		"metric":                 "Метрика",
		"all_metrics":            "Все метрики",
		"group_by":               "Группировка",
		"day":                    "День",
		"month":                  "Месяц",
		"apply_filters":          "Применить фильтры",
		"reset":                  "Сбросить",
		"total_amount":           "Общая сумма",
		"count":                  "Количество",
		"average":                "Среднее",
		"minimum":                "Минимум",
		"maximum":                "Максимум",
		"time_series":            "Временной ряд",
		"breakdown":              "Разбивка",
		"details":                "Детализация",
		"export_xlsx":            "Экспорт XLSX",
		"no_data":                "Нет данных по выбранным фильтрам",
	},
}

// T returns the string table for lang, falling back to English.
func T(lang string) Strings {
	if t, ok := translations[lang]; ok {
		return t
	}
	return translations["en"]
}

// Supported reports whether lang has a string table.
func Supported(lang string) bool {
	_, ok := translations[lang]
	return ok
}
