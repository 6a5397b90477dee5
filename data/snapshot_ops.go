package data

import (
	"fmt"
	"log"
	"time"

	"meeting_server_go/models"
)

// BuildSnapshot собирает полный снимок документа расписания: все сессии
// с вложенными событиями. Это read-половина границы персистентности
// "загрузить всё / сохранить всё", которой пользуется бэкап.
func BuildSnapshot() (*models.BackupData, error) {
	sessions, err := GetAllSessions()
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		events, err := GetEventsBySessionID(sessions[i].Id)
		if err != nil {
			return nil, err
		}
		sessions[i].Events = events
	}
	return &models.BackupData{Sessions: sessions, ExportedAt: time.Now()}, nil
}

// RestoreSnapshot замещает всё содержимое базы содержимым снимка в одной
// транзакции: частичной записи не бывает, при любой ошибке база остаётся
// в прежнем состоянии. События с нарушенной валидацией пропускаются с
// записью в лог, остальные восстанавливаются.
func RestoreSnapshot(snapshot *models.BackupData) (int, error) {
	tx, err := MainDB.Beginx()
	if err != nil {
		return 0, fmt.Errorf("RestoreSnapshot: ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback() // После Commit откат становится no-op.

	// Events удаляются каскадом по внешнему ключу.
	if _, err := tx.Exec(`DELETE FROM Sessions`); err != nil {
		return 0, fmt.Errorf("RestoreSnapshot: ошибка очистки базы: %w", err)
	}

	now := time.Now()
	restored := 0
	for _, session := range snapshot.Sessions {
		s := session
		s.CreatedAt = now
		s.UpdatedAt = now
		query := `INSERT INTO Sessions (Id, WeekStart, WeekEnd, CreatedAt, UpdatedAt)
		          VALUES (:Id, :WeekStart, :WeekEnd, :CreatedAt, :UpdatedAt)`
		if _, err := tx.NamedExec(query, &s); err != nil {
			return 0, fmt.Errorf("RestoreSnapshot: ошибка восстановления сессии %s: %w", s.Id, err)
		}

		for _, ev := range session.Events {
			draft := models.UpsertEventRequest{
				Date:      ev.Date,
				HalfDay:   ev.HalfDay,
				StartTime: ev.StartTime,
				EndTime:   ev.EndTime,
				Title:     ev.Title,
				Category:  ev.Category,
				Chair:     ev.Chair,
				Attendees: ev.Attendees,
				Location:  ev.Location,
			}
			if _, cerr := CreateEventWithTx(tx, s.Id, draft); cerr != nil {
				log.Printf("RestoreSnapshot: событие %s сессии %s пропущено: %v", ev.Id, s.Id, cerr)
				continue
			}
			restored++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("RestoreSnapshot: ошибка фиксации транзакции: %w", err)
	}
	log.Printf("Снимок восстановлен: сессий %d, событий %d", len(snapshot.Sessions), restored)
	return restored, nil
}
