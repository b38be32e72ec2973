// Command seed populates the store with demo data for both domains.
package main

import (
	"context"
	"flag"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/MichaelUniHorus/dashboard-analytics/internal/config"
	"github.com/MichaelUniHorus/dashboard-analytics/internal/database"
	"github.com/MichaelUniHorus/dashboard-analytics/internal/models"
)

func main() {
	var (
		transactionCount = flag.Int("transactions", 200, "number of transaction records")
		equipmentCount   = flag.Int("equipment", 1000, "number of equipment metric records")
		seed             = flag.Int64("seed", time.Now().UnixNano(), "random seed")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, dialect, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	repo := database.NewRepository(db, dialect)
	rng := rand.New(rand.NewSource(*seed))
	ctx := context.Background()

	if err := seedTransactions(ctx, repo, rng, *transactionCount); err != nil {
		log.Fatalf("Failed to seed transactions: %v", err)
	}
	if err := seedEquipment(ctx, repo, rng, *equipmentCount); err != nil {
		log.Fatalf("Failed to seed equipment metrics: %v", err)
	}

	log.Printf("Seeded %d transactions and %d equipment metrics", *transactionCount, *equipmentCount)
}

// seedTransactions spreads records over the last 90 days with log-normal
// amounts and mostly-completed statuses.
func seedTransactions(ctx context.Context, repo *database.Repository, rng *rand.Rand, n int) error {
	categories := []string{"sales", "refund", "subscription", "service", "product"}
	statuses := []string{"completed", "pending", "failed", "cancelled"}
	weights := []float64{0.70, 0.15, 0.10, 0.05}

	start := time.Now().UTC().AddDate(0, 0, -90)
	for i := 0; i < n; i++ {
		category := categories[rng.Intn(len(categories))]
		amount := math.Round(math.Exp(rng.NormFloat64()*1.5+4)*100) / 100

		customer := ""
		if rng.Float64() > 0.2 {
			customer = "CUST-" + uuid.NewString()[:8]
		}
		description := ""
		if rng.Float64() > 0.25 {
			description = "Monthly " + category
		}

		rec := models.Record{
			Timestamp: start.AddDate(0, 0, rng.Intn(91)).Add(time.Duration(rng.Intn(86400)) * time.Second),
			Value:     amount,
			Status:    weighted(rng, statuses, weights),
			Dims:      map[string]string{"category": category},
			Extra: map[string]string{
				"description": description,
				"customer_id": customer,
			},
		}
		if err := repo.Insert(ctx, models.Transactions, rec); err != nil {
			return err
		}
	}
	return nil
}

// seedEquipment generates per-metric readings within a normal operating
// range, with occasional outliers; status derives from thresholds.
func seedEquipment(ctx context.Context, repo *database.Repository, rng *rand.Rand, n int) error {
	equipmentIDs := []string{
		"PUMP-A1", "PUMP-A2", "PUMP-B1",
		"COMPRESSOR-01", "COMPRESSOR-02",
		"TURBINE-T1", "TURBINE-T2",
		"MOTOR-M1", "MOTOR-M2", "MOTOR-M3",
	}
	type metricSpec struct {
		name     string
		unit     string
		min, max float64
	}
	specs := []metricSpec{
		{"temperature", "celsius", 35, 75},
		{"cpu_load", "percent", 20, 85},
		{"memory_usage", "percent", 30, 80},
		{"vibration", "mm/s", 0.5, 4.0},
		{"pressure", "bar", 2.5, 8.5},
		{"rpm", "rpm", 1200, 3000},
		{"power_consumption", "kW", 15, 95},
		{"efficiency", "percent", 70, 95},
	}

	start := time.Now().UTC().AddDate(0, 0, -30)
	for i := 0; i < n; i++ {
		spec := specs[rng.Intn(len(specs))]

		var value float64
		if rng.Float64() > 0.85 {
			// Outlier above or below the operating range
			if rng.Float64() > 0.5 {
				value = spec.max*1.05 + rng.Float64()*spec.max*0.20
			} else {
				value = spec.min*0.5 + rng.Float64()*spec.min*0.4
			}
		} else {
			value = spec.min + rng.Float64()*(spec.max-spec.min)
		}
		value = math.Round(value*100) / 100

		status := "normal"
		switch {
		case value > spec.max*1.1 || value < spec.min*0.8:
			status = "critical"
		case value > spec.max*0.95 || value < spec.min*0.9:
			status = "warning"
		}

		rec := models.Record{
			Timestamp: start.Add(time.Duration(rng.Intn(30*24)) * time.Hour),
			Value:     value,
			Status:    status,
			Dims: map[string]string{
				"equipment_id": equipmentIDs[rng.Intn(len(equipmentIDs))],
				"metric_name":  spec.name,
			},
			Extra: map[string]string{"unit": spec.unit},
		}
		if err := repo.Insert(ctx, models.Equipment, rec); err != nil {
			return err
		}
	}
	return nil
}

func weighted(rng *rand.Rand, values []string, weights []float64) string {
	r := rng.Float64()
	var cum float64
	for i, w := range weights {
		cum += w
		if r < cum {
			return values[i]
		}
	}
	return values[len(values)-1]
}
