package data

import (
	"testing"

	"github.com/jmoiron/sqlx"
)

// setupTestDB подменяет MainDB базой в памяти со свежей схемой.
// Одно соединение в пуле: у :memory: каждое соединение — отдельная база.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("не удалось открыть базу в памяти: %v", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(GetSchema()); err != nil {
		db.Close()
		t.Fatalf("не удалось применить схему: %v", err)
	}

	prev := MainDB
	MainDB = db
	t.Cleanup(func() {
		MainDB = prev
		db.Close()
	})
}
