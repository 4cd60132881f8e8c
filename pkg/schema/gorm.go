package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models in foreign-key dependency order.
// Referenced tables come before the tables that reference them, so
// both AutoMigrate and insert loops can walk the slice front to back,
// and teardown can walk it back to front.
func AllModels() []interface{} {
	return []interface{}{
		&Team{},
		&Player{},
		&Coach{},
		&Game{},
		&GameStat{},
	}
}

// TableNames returns the table names in the same dependency order as
// AllModels.
func TableNames() []string {
	return []string{
		Team{}.TableName(),
		Player{}.TableName(),
		Coach{}.TableName(),
		Game{}.TableName(),
		GameStat{}.TableName(),
	}
}

// Migrate runs GORM AutoMigrate to create or update the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
