package data

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"meeting_server_go/models"
	"meeting_server_go/schedule"
)

// ErrSessionNotFound возвращается операциями, которым нужна существующая
// сессия (экспорт, копирование недели). Отсутствие события при удалении,
// наоборот, ошибкой не считается.
var ErrSessionNotFound = errors.New("недельная сессия не найдена")

// GetOrCreateSession находит сессию по ISO-неделе даты или лениво создаёт
// её с окном понедельник..суббота. Идемпотентна: любые даты одной
// ISO-недели возвращают одну и ту же сессию.
func GetOrCreateSession(anyDate time.Time) (*models.WeekSession, error) {
	sid := schedule.SessionIDOf(anyDate)

	session, err := GetSessionByID(sid)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return session, nil
	}

	now := time.Now()
	session = &models.WeekSession{
		Id:        sid,
		WeekStart: schedule.MondayOf(anyDate).Format(schedule.DateLayout),
		WeekEnd:   schedule.SaturdayOf(anyDate).Format(schedule.DateLayout),
		CreatedAt: now,
		UpdatedAt: now,
	}

	// INSERT OR IGNORE + повторное чтение: два конкурентных первых запроса
	// к одной неделе не должны падать на уникальном ключе.
	query := `INSERT OR IGNORE INTO Sessions (Id, WeekStart, WeekEnd, CreatedAt, UpdatedAt)
	          VALUES (:Id, :WeekStart, :WeekEnd, :CreatedAt, :UpdatedAt)`
	if _, err := MainDB.NamedExec(query, session); err != nil {
		return nil, fmt.Errorf("GetOrCreateSession: ошибка при создании сессии %s: %w", sid, err)
	}
	log.Printf("Создана недельная сессия %s (%s .. %s)", sid, session.WeekStart, session.WeekEnd)

	return GetSessionByID(sid)
}

// GetSessionByID извлекает сессию по идентификатору.
// Возвращает (nil, nil), если сессии нет.
func GetSessionByID(sid string) (*models.WeekSession, error) {
	session := &models.WeekSession{}
	query := `SELECT Id, WeekStart, WeekEnd, CreatedAt, UpdatedAt FROM Sessions WHERE Id = ?`
	err := MainDB.Get(session, query, sid)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Не найдено
		}
		return nil, fmt.Errorf("GetSessionByID: ошибка при получении сессии %s: %w", sid, err)
	}
	return session, nil
}

// GetAllSessions извлекает все сессии, новые недели первыми.
func GetAllSessions() ([]models.WeekSession, error) {
	var sessions []models.WeekSession
	query := `SELECT Id, WeekStart, WeekEnd, CreatedAt, UpdatedAt FROM Sessions ORDER BY WeekStart DESC`
	if err := MainDB.Select(&sessions, query); err != nil {
		return nil, fmt.Errorf("GetAllSessions: ошибка при получении списка сессий: %w", err)
	}
	return sessions, nil
}

// ClearSessionEvents удаляет все события сессии, сохраняя саму сессию.
func ClearSessionEvents(sid string) error {
	session, err := GetSessionByID(sid)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}

	result, err := MainDB.Exec(`DELETE FROM Events WHERE SessionId = ?`, sid)
	if err != nil {
		return fmt.Errorf("ClearSessionEvents: ошибка при очистке сессии %s: %w", sid, err)
	}
	removed, _ := result.RowsAffected()
	log.Printf("Очищена сессия %s, удалено событий: %d", sid, removed)

	return touchSession(sid)
}

// touchSession обновляет UpdatedAt сессии после изменения её событий.
func touchSession(sid string) error {
	_, err := MainDB.Exec(`UPDATE Sessions SET UpdatedAt = ? WHERE Id = ?`, time.Now(), sid)
	if err != nil {
		return fmt.Errorf("touchSession: ошибка при обновлении сессии %s: %w", sid, err)
	}
	return nil
}
