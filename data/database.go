package data

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // Драйвер SQLite, импортируется для побочных эффектов (регистрации драйвера)
)

var MainDB *sqlx.DB // Глобальная переменная для пула подключений к БД расписания

const defaultDbName = "MeetingServer.db"

// getDbPath определяет путь к файлу БД. База лежит в текущей рабочей
// директории: это предсказуемо и при `go run main.go`, и когда собранный
// бинарник кладут в корень проекта.
func getDbPath() (string, error) {
	currentWorkDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	dataSourceName := filepath.Join(currentWorkDir, defaultDbName)

	log.Printf("Using database file at: %s", dataSourceName)
	return dataSourceName, nil
}

// InitDB инициализирует подключение к базе данных расписания и применяет схему.
func InitDB() error {
	dataSourceName, err := getDbPath()
	if err != nil {
		return err
	}

	MainDB, err = sqlx.Connect("sqlite3", dataSourceName+"?_foreign_keys=on") // Включаем поддержку внешних ключей
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = MainDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	log.Println("Successfully connected to the database (MeetingServer.db).")

	schema := GetSchema()
	if _, err = MainDB.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	log.Println("Database schema applied successfully.")

	// Обновляем схему для добавления недостающих полей в Events
	if err = EnsureEventsSchemaUpgrade(); err != nil {
		return fmt.Errorf("failed to upgrade events schema: %w", err)
	}

	return nil
}

// GetMainDB возвращает текущее подключение к базе данных.
func GetMainDB() *sqlx.DB {
	return MainDB
}

// EnsureEventsSchemaUpgrade добавляет недостающие поля в таблицу Events.
// Колонки Chair и Category появились не в первой ревизии модели данных,
// поэтому базы, созданные ранними версиями, дополняются на месте.
func EnsureEventsSchemaUpgrade() error {
	for _, col := range []struct {
		name string
		ddl  string
	}{
		{"Chair", `ALTER TABLE Events ADD COLUMN Chair TEXT NOT NULL DEFAULT ''`},
		{"Category", `ALTER TABLE Events ADD COLUMN Category TEXT NOT NULL DEFAULT ''`},
	} {
		var exists bool
		err := MainDB.Get(&exists, `
			SELECT COUNT(*) > 0
			FROM pragma_table_info('Events')
			WHERE name = ?
		`, col.name)
		if err != nil {
			log.Printf("Ошибка проверки колонки %s: %v", col.name, err)
			continue
		}
		if !exists {
			if _, err = MainDB.Exec(col.ddl); err != nil {
				return fmt.Errorf("failed to add %s column: %w", col.name, err)
			}
			log.Printf("Добавлена колонка %s в таблицу Events", col.name)
		}
	}
	return nil
}
