// Package mock provides in-process stand-ins for external infrastructure.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/madrasah-accounts/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection that substitutes for
// PostgreSQL in integration tests.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens the shared test database and migrates the schema once.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the shared in-memory database alive.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	d := &Db{
		DbConn: dbConn,
		models: []any{
			&model.TransactionModel{},
			&model.CounterpartyModel{},
			&model.SavedSenderModel{},
		},
	}

	if err := dbConn.AutoMigrate(d.models...); err != nil {
		panic("failed to migrate test database. err: " + err.Error())
	}

	return d
}

// Reset clears every table between scenarios.
func (d *Db) Reset() error {
	for _, m := range d.models {
		if err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return fmt.Errorf("failed to clear table for %T: %w", m, err)
		}
	}
	// Restart autoincrement counters so scenario IDs are predictable.
	err := d.DbConn.Exec("DELETE FROM sqlite_sequence").Error
	if err != nil && err.Error() != "no such table: sqlite_sequence" {
		return err
	}
	return nil
}
