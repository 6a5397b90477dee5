package data

import (
	"errors"
	"fmt"
	"log"
	"time"

	"meeting_server_go/models"
	"meeting_server_go/schedule"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Ошибки валидации, возвращаемые пользователю как есть, поэтому текст
// на языке клиента (как в остальных сообщениях форм).
var (
	ErrInvalidTimeRange  = errors.New("Giờ kết thúc phải lớn hơn giờ bắt đầu.")
	ErrEmptyTitle        = errors.New("Tiêu đề không được để trống.")
	ErrDateOutsideWeek   = errors.New("Ngày không thuộc tuần của session này.")
	ErrMalformedDateTime = errors.New("Ngày hoặc giờ không đúng định dạng.")
)

// ValidateDraft проверяет черновик события и нормализует половину дня.
// Никаких записей в БД до успешной валидации не происходит: операция
// отклоняется атомарно.
func ValidateDraft(req *models.UpsertEventRequest) error {
	if req.Title == "" {
		return ErrEmptyTitle
	}
	if _, err := time.Parse(schedule.DateLayout, req.Date); err != nil {
		return ErrMalformedDateTime
	}

	start, err := schedule.ToMinutes(req.StartTime)
	if err != nil {
		return ErrMalformedDateTime
	}
	end, err := schedule.ToMinutes(req.EndTime)
	if err != nil {
		return ErrMalformedDateTime
	}
	if start >= end {
		return ErrInvalidTimeRange
	}

	// Половина дня по умолчанию определяется по времени начала.
	if req.HalfDay == "" {
		req.HalfDay = schedule.HalfDayOfMinutes(start)
	}
	if req.HalfDay != models.HalfDayMorning && req.HalfDay != models.HalfDayAfternoon {
		return ErrMalformedDateTime
	}
	return nil
}

// UpsertEvent создаёт или обновляет событие в рамках сессии.
// Непустой Id, совпадающий с существующим событием, означает замену на
// месте; иначе назначается свежий UUID и событие добавляется.
func UpsertEvent(session *models.WeekSession, req models.UpsertEventRequest) (*models.Event, error) {
	if err := ValidateDraft(&req); err != nil {
		return nil, err
	}
	if req.Date < session.WeekStart || req.Date > session.WeekEnd {
		return nil, ErrDateOutsideWeek
	}

	now := time.Now()
	ev := &models.Event{
		Id:        req.Id,
		SessionId: session.Id,
		Date:      req.Date,
		HalfDay:   req.HalfDay,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Title:     req.Title,
		Category:  req.Category,
		Chair:     req.Chair,
		Attendees: req.Attendees,
		Location:  req.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if ev.Id != "" {
		var exists bool
		err := MainDB.Get(&exists, `SELECT COUNT(*) > 0 FROM Events WHERE Id = ? AND SessionId = ?`, ev.Id, session.Id)
		if err != nil {
			return nil, fmt.Errorf("UpsertEvent: ошибка при поиске события %s: %w", ev.Id, err)
		}
		if exists {
			query := `UPDATE Events SET
			          Date = :Date, HalfDay = :HalfDay, StartTime = :StartTime, EndTime = :EndTime,
			          Title = :Title, Category = :Category, Chair = :Chair, Attendees = :Attendees,
			          Location = :Location, UpdatedAt = :UpdatedAt
			          WHERE Id = :Id AND SessionId = :SessionId`
			if _, err := MainDB.NamedExec(query, ev); err != nil {
				return nil, fmt.Errorf("UpsertEvent: ошибка при обновлении события %s: %w", ev.Id, err)
			}
			log.Printf("Обновлено событие %s в сессии %s", ev.Id, session.Id)
			return ev, touchSession(session.Id)
		}
		// Неизвестный Id трактуем как создание: клиент мог сохранить
		// черновик со старым идентификатором из другой недели.
	}

	ev.Id = uuid.New().String()
	if err := insertEvent(MainDB, ev); err != nil {
		return nil, err
	}
	log.Printf("Создано событие %s в сессии %s", ev.Id, session.Id)
	return ev, touchSession(session.Id)
}

// insertEvent принимает sqlx.Ext, чтобы работать и на *sqlx.DB, и на
// *sqlx.Tx: вставка используется также импортом и копированием недели
// внутри транзакций.
func insertEvent(e sqlx.Ext, ev *models.Event) error {
	query := `INSERT INTO Events (Id, SessionId, Date, HalfDay, StartTime, EndTime,
	          Title, Category, Chair, Attendees, Location, CreatedAt, UpdatedAt)
	          VALUES (:Id, :SessionId, :Date, :HalfDay, :StartTime, :EndTime,
	          :Title, :Category, :Chair, :Attendees, :Location, :CreatedAt, :UpdatedAt)`
	if _, err := sqlx.NamedExec(e, query, ev); err != nil {
		return fmt.Errorf("insertEvent: ошибка при вставке события %s: %w", ev.Id, err)
	}
	return nil
}

// CreateEventWithTx вставляет заведомо новое событие (свежий UUID) в рамках
// транзакции. Используется импортом и копированием недели: обе операции
// всегда создают события и никогда не обновляют существующие.
func CreateEventWithTx(tx *sqlx.Tx, sessionID string, req models.UpsertEventRequest) (*models.Event, error) {
	if err := ValidateDraft(&req); err != nil {
		return nil, err
	}

	now := time.Now()
	ev := &models.Event{
		Id:        uuid.New().String(),
		SessionId: sessionID,
		Date:      req.Date,
		HalfDay:   req.HalfDay,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Title:     req.Title,
		Category:  req.Category,
		Chair:     req.Chair,
		Attendees: req.Attendees,
		Location:  req.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := insertEvent(tx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// DeleteEvent удаляет событие по идентификатору. Отсутствие события —
// не ошибка: удаление уже удалённого считается выполненным.
func DeleteEvent(sessionID, eventID string) error {
	result, err := MainDB.Exec(`DELETE FROM Events WHERE Id = ? AND SessionId = ?`, eventID, sessionID)
	if err != nil {
		return fmt.Errorf("DeleteEvent: ошибка при удалении события %s: %w", eventID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Printf("DeleteEvent: событие %s в сессии %s не найдено, удалять нечего", eventID, sessionID)
		return nil
	}
	log.Printf("Удалено событие %s из сессии %s", eventID, sessionID)
	return touchSession(sessionID)
}

// GetEventsBySessionID извлекает события сессии в порядке показа:
// по дате, затем SÁNG перед CHIỀU, затем по времени начала.
func GetEventsBySessionID(sessionID string) ([]models.Event, error) {
	var events []models.Event
	query := `SELECT Id, SessionId, Date, HalfDay, StartTime, EndTime,
	          Title, Category, Chair, Attendees, Location, CreatedAt, UpdatedAt
	          FROM Events WHERE SessionId = ?
	          ORDER BY Date ASC, CASE HalfDay WHEN 'SÁNG' THEN 0 ELSE 1 END ASC, StartTime ASC, CreatedAt ASC`
	if err := MainDB.Select(&events, query, sessionID); err != nil {
		return nil, fmt.Errorf("GetEventsBySessionID: ошибка при получении событий сессии %s: %w", sessionID, err)
	}
	return events, nil
}
