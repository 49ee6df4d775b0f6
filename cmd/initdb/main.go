// Command initdb creates the catalog database file and its schema. The
// interactive binary never migrates; run this once before first use.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bibtui/internal/catalog"
)

func main() {
	dbPath := flag.String("db", "bibliographic_db/bib_data.db", "path to the sqlite database file")
	flag.Parse()

	if err := run(*dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Database initialised at %s\n", *dbPath)
}

func run(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := catalog.Migrate(db); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
