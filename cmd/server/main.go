package main

import (
	"log"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MichaelUniHorus/dashboard-analytics/internal/config"
	"github.com/MichaelUniHorus/dashboard-analytics/internal/database"
	"github.com/MichaelUniHorus/dashboard-analytics/internal/handlers"
	"github.com/MichaelUniHorus/dashboard-analytics/internal/metrics"
	"github.com/MichaelUniHorus/dashboard-analytics/internal/models"
)

func main() {
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
	h := handlers.New(repo, cfg)

	r := chi.NewRouter()

	if cfg.Debug {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(metrics.Middleware)

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))

	// Pages
	r.Get("/", h.Index)
	r.Get("/transactions", h.TransactionsPage)
	r.Get("/equipment", h.EquipmentPage)

	// API
	r.Mount("/api/v1/transactions", h.APIRoutes(models.Transactions))
	r.Mount("/api/v1/equipment", h.APIRoutes(models.Equipment))

	// Operational
	r.Get("/health", h.Health)
	r.Handle("/metrics", metrics.Handler())

	log.Printf("Server starting on http://localhost:%s (store: %s)", cfg.ServerPort, dialect)
	for _, ip := range lanIPs() {
		log.Printf("LAN access: http://%s:%s", ip, cfg.ServerPort)
	}
	if err := http.ListenAndServe(":"+cfg.ServerPort, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func lanIPs() []string {
	var ips []string
	ifaces, err := net.Interfaces()
	if err != nil {
		return ips
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}
			if ip == nil {
				continue
			}
			ip = ip.To4()
			if ip == nil {
				continue
			}
			ips = append(ips, ip.String())
		}
	}
	return ips
}
