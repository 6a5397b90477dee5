package data

import (
	"fmt"
	"log"
	"time"

	"meeting_server_go/models"
	"meeting_server_go/schedule"
)

// CopyWeek переносит все события исходной сессии на целевую неделю,
// сохраняя смещение дня недели (0..5 от понедельника) и половину дня.
// Исходная сессия не изменяется; каждое скопированное событие получает
// новый UUID. Возвращает идентификатор целевой сессии и число
// скопированных событий.
//
// Отдельные события, которые не удалось перенести (повреждённая дата,
// смещение вне шестидневной недели), пропускаются с записью в лог —
// копирование целиком из-за них не прерывается.
func CopyWeek(sourceSessionID string, targetDate time.Time) (string, int, error) {
	source, err := GetSessionByID(sourceSessionID)
	if err != nil {
		return "", 0, err
	}
	if source == nil {
		return "", 0, ErrSessionNotFound
	}

	target, err := GetOrCreateSession(targetDate)
	if err != nil {
		return "", 0, err
	}

	events, err := GetEventsBySessionID(source.Id)
	if err != nil {
		return "", 0, err
	}

	sourceMonday, err := time.Parse(schedule.DateLayout, source.WeekStart)
	if err != nil {
		return "", 0, fmt.Errorf("CopyWeek: некорректное начало недели %q у сессии %s: %w", source.WeekStart, source.Id, err)
	}
	targetMonday, err := time.Parse(schedule.DateLayout, target.WeekStart)
	if err != nil {
		return "", 0, fmt.Errorf("CopyWeek: некорректное начало недели %q у сессии %s: %w", target.WeekStart, target.Id, err)
	}

	tx, err := MainDB.Beginx()
	if err != nil {
		return "", 0, fmt.Errorf("CopyWeek: ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback() // После Commit откат становится no-op.

	copied := 0
	for _, ev := range events {
		evDate, perr := time.Parse(schedule.DateLayout, ev.Date)
		if perr != nil {
			log.Printf("CopyWeek: событие %s пропущено, нечитаемая дата %q: %v", ev.Id, ev.Date, perr)
			continue
		}
		offset := int(evDate.Sub(sourceMonday).Hours() / 24)
		if offset < 0 || offset >= schedule.WeekDays {
			log.Printf("CopyWeek: событие %s пропущено, смещение %d вне недели", ev.Id, offset)
			continue
		}

		draft := models.UpsertEventRequest{
			Date:      targetMonday.AddDate(0, 0, offset).Format(schedule.DateLayout),
			HalfDay:   ev.HalfDay,
			StartTime: ev.StartTime,
			EndTime:   ev.EndTime,
			Title:     ev.Title,
			Category:  ev.Category,
			Chair:     ev.Chair,
			Attendees: ev.Attendees,
			Location:  ev.Location,
		}
		if _, cerr := CreateEventWithTx(tx, target.Id, draft); cerr != nil {
			log.Printf("CopyWeek: событие %s пропущено: %v", ev.Id, cerr)
			continue
		}
		copied++
	}

	if err := tx.Commit(); err != nil {
		return "", 0, fmt.Errorf("CopyWeek: ошибка фиксации транзакции: %w", err)
	}

	log.Printf("Скопирована неделя %s -> %s, событий: %d из %d", source.Id, target.Id, copied, len(events))
	if err := touchSession(target.Id); err != nil {
		return "", 0, err
	}
	return target.Id, copied, nil
}
