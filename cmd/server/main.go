package main

import (
	"fmt"
	"net/http"

	"omnicassion/config"
	"omnicassion/db"
	"omnicassion/db/mongo"
	"omnicassion/db/postgres"
	"omnicassion/handlers"
	"omnicassion/repository"
	"omnicassion/routes"
)

func main() {
	// Load config from .env or system environment
	cfg := config.LoadConfig()

	var invoiceRepo repository.InvoiceRepository
	var eventRepo repository.EventRepository
	var profileRepo repository.ProfileRepository

	switch cfg.DBType {
	case "postgres":
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		invoiceRepo = repository.NewPostgresInvoiceRepo(pg.Conn)
		eventRepo = repository.NewPostgresEventRepo(pg.Conn)
		profileRepo = repository.NewPostgresProfileRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		invoiceRepo = repository.NewMongoInvoiceRepo(mg.Client)
		eventRepo = repository.NewMongoEventRepo(mg.Client)
		profileRepo = repository.NewMongoProfileRepo(mg.Client)

	case "file":
		invoiceRepo = repository.NewFileInvoiceRepo(cfg.DataDir)
		eventRepo = repository.NewFileEventRepo(cfg.DataDir)
		profileRepo = repository.NewFileProfileRepo(cfg.DataDir)

	default:
		panic("DB_TYPE not supported")
	}

	// Handlers
	invoiceHandler := &handlers.InvoiceHandler{Repo: invoiceRepo, PDFDir: cfg.PDFDir}
	eventHandler := &handlers.EventHandler{Repo: eventRepo}
	profileHandler := &handlers.ProfileHandler{Repo: profileRepo}
	pdfHandler := &handlers.PDFHandler{
		Invoices:  invoiceRepo,
		Profiles:  profileRepo,
		SavePath:  cfg.PDFDir,
		AssetsDir: cfg.AssetsDir,
	}

	routes.SetupRoutes(invoiceHandler, eventHandler, profileHandler, pdfHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
