package catalog

import "gorm.io/gorm"

// Migrate creates the five catalog tables. Only cmd/initdb and tests call
// this; the interactive session assumes the schema already exists and never
// migrates.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&MasterEntry{},
		&Book{},
		&Article{},
		&Publisher{},
		&MonthYear{},
	)
}
