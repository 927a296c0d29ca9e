package postgres

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to PostgreSQL and migrates the users table. TranslateError
// lets duplicate-key violations surface as gorm.ErrDuplicatedKey so the
// repository can map them.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&UserModel{}); err != nil {
		return nil, err
	}

	return db, nil
}
