package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Bind mengembalikan *gorm.DB baru yang semua query-nya berjalan di atas tx.
// Statement di-clone supaya ConnPool milik db induk tidak ikut berubah.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	bound := db.Session(&gorm.Session{Context: context.Background(), NewDB: true})
	bound.Statement.ConnPool = tx
	return bound
}
