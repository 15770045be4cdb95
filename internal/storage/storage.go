package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/ferro-praxis/12week-training-program/internal/config"
)

type Storage struct {
	DB *sql.DB
}

func NewStorage() *Storage {
	// A .env file is optional; the config file or defaults cover the rest.
	_ = godotenv.Load()

	url := databaseURL()

	db, err := sql.Open("libsql", url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open db %s: %s", url, err)
		os.Exit(1)
	}

	if err := initializeDB(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v", err)
		os.Exit(1)
	}

	return &Storage{DB: db}
}

// databaseURL resolves the connection string: environment first, then the
// config file, then a local file database under the config dir.
func databaseURL() string {
	if url := os.Getenv("TRAINING_DATABASE_URL"); url != "" {
		return url
	}

	if cfg, err := config.LoadConfig(); err == nil && cfg.DB.ConnectionString != "" {
		return cfg.DB.ConnectionString
	}

	dir, err := config.Dir()
	if err != nil {
		return "file:./training.db?cache=shared&mode=rwc"
	}
	os.MkdirAll(dir, 0755)
	return "file:" + filepath.Join(dir, "training.db") + "?cache=shared&mode=rwc"
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS blobs (
            name TEXT PRIMARY KEY,
            data TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );
    `)
	return err
}
