package database

import "database/sql"

// Timestamps are stored as RFC 3339 text in both dialects so range predicates
// and scans stay identical across drivers. Statements run one at a time
// because the pgx extended protocol rejects multi-statement strings.
func migrate(db *sql.DB, dialect string) error {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	valueColumn := "REAL"
	if dialect == DialectPostgres {
		idColumn = "BIGSERIAL PRIMARY KEY"
		valueColumn = "DOUBLE PRECISION"
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS transactions (
			id ` + idColumn + `,
			date TEXT NOT NULL,
			category TEXT NOT NULL,
			amount ` + valueColumn + ` NOT NULL,
			status TEXT NOT NULL DEFAULT 'completed',
			description TEXT,
			customer_id TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS equipment_metrics (
			id ` + idColumn + `,
			timestamp TEXT NOT NULL,
			equipment_id TEXT NOT NULL,
			metric_name TEXT NOT NULL,
			value ` + valueColumn + ` NOT NULL,
			unit TEXT,
			status TEXT NOT NULL DEFAULT 'normal'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions(status)`,
		`CREATE INDEX IF NOT EXISTS idx_equipment_metrics_timestamp ON equipment_metrics(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_equipment_metrics_equipment_id ON equipment_metrics(equipment_id)`,
		`CREATE INDEX IF NOT EXISTS idx_equipment_metrics_metric_name ON equipment_metrics(metric_name)`,
		`CREATE INDEX IF NOT EXISTS idx_equipment_metrics_status ON equipment_metrics(status)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
