package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL string
	MongoURL    string
	DBType      string
	Port        string
	DataDir     string
	PDFDir      string
	AssetsDir   string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL: os.Getenv("POSTGRES_URL"),
		MongoURL:    os.Getenv("MONGO_URL"),
		DBType:      os.Getenv("DB_TYPE"),
		Port:        os.Getenv("PORT"),
		DataDir:     os.Getenv("DATA_DIR"),
		PDFDir:      os.Getenv("PDF_DIR"),
		AssetsDir:   os.Getenv("ASSETS_DIR"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBType == "" {
		cfg.DBType = "file"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if cfg.PDFDir == "" {
		cfg.PDFDir = "./pdfs"
	}
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = "./assets"
	}
	return cfg
}
