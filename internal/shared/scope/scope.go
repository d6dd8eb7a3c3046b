package scope

import (
	"time"

	"gorm.io/gorm"
)

// User membatasi query ke baris milik satu user.
func User(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// Between membatasi kolom waktu ke rentang inklusif [from, to].
func Between(column string, from, to time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ? AND "+column+" <= ?", from, to)
	}
}

// Optional menambahkan kondisi equality hanya jika value tidak kosong.
func Optional(column, value string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}
