package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"meeting_server_go/data"
	"meeting_server_go/models"
	"meeting_server_go/schedule"

	"github.com/gorilla/mux"
)

// eventView — событие вместе с производными флагами конфликтов.
// Флаги пересчитываются при каждом чтении и никогда не сохраняются.
type eventView struct {
	models.Event
	models.ConflictFlags
}

func buildEventViews(events []models.Event, report models.ConflictReport) []eventView {
	views := make([]eventView, 0, len(events))
	for _, ev := range events {
		views = append(views, eventView{Event: ev, ConflictFlags: report.FlagsFor(ev.Id)})
	}
	return views
}

// GetSessionsHandler возвращает список всех недельных сессий, новые первыми.
// GET /api/sessions
func GetSessionsHandler(w http.ResponseWriter, r *http.Request) {
	sessions, err := data.GetAllSessions()
	if err != nil {
		log.Printf("Ошибка при получении списка сессий: %v", err)
		respondError(w, http.StatusInternalServerError, "Не удалось получить список сессий.")
		return
	}
	respondJSON(w, http.StatusOK, sessions)
}

// GetCurrentSessionHandler открывает (или лениво создаёт) сессию недели,
// в которую попадает дата из query-параметра date (по умолчанию сегодня),
// и возвращает её события с флагами конфликтов. Параметр q фильтрует
// события подстрокой по всем полям.
// GET /api/sessions/current?date=2024-06-03&q=CEO
func GetCurrentSessionHandler(w http.ResponseWriter, r *http.Request) {
	anyDate := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse(schedule.DateLayout, dateStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Неверный формат даты, ожидается yyyy-MM-dd.")
			return
		}
		anyDate = parsed
	}

	session, err := data.GetOrCreateSession(anyDate)
	if err != nil {
		log.Printf("Ошибка при открытии сессии на дату %s: %v", anyDate.Format(schedule.DateLayout), err)
		respondError(w, http.StatusInternalServerError, "Не удалось открыть недельную сессию.")
		return
	}

	events, err := data.GetEventsBySessionID(session.Id)
	if err != nil {
		log.Printf("Ошибка при получении событий сессии %s: %v", session.Id, err)
		respondError(w, http.StatusInternalServerError, "Не удалось получить события сессии.")
		return
	}

	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	if q != "" {
		events = filterEvents(events, q)
	}

	// Конфликты считаются по отфильтрованному набору: отчёт отражает
	// ровно то, что увидит пользователь.
	report := schedule.ComputeConflicts(events)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"session": session,
		"events":  buildEventViews(events, report),
		"q":       q,
	})
}

// filterEvents оставляет события, чьё JSON-представление содержит
// подстроку запроса (без учёта регистра) — поиск по всем полям сразу.
func filterEvents(events []models.Event, q string) []models.Event {
	filtered := make([]models.Event, 0, len(events))
	for _, ev := range events {
		raw, err := json.Marshal(ev)
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(string(raw)), q) {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}

// GetSessionGridHandler возвращает проекцию недели в сетку
// 6 дней x 2 половины дня для предпросмотра.
// GET /api/sessions/{session_id}/grid
func GetSessionGridHandler(w http.ResponseWriter, r *http.Request) {
	sid := mux.Vars(r)["session_id"]

	session, err := data.GetSessionByID(sid)
	if err != nil {
		log.Printf("Ошибка при получении сессии %s: %v", sid, err)
		respondError(w, http.StatusInternalServerError, "Не удалось получить сессию.")
		return
	}
	if session == nil {
		respondError(w, http.StatusNotFound, "Không tìm thấy session.")
		return
	}

	events, err := data.GetEventsBySessionID(sid)
	if err != nil {
		log.Printf("Ошибка при получении событий сессии %s: %v", sid, err)
		respondError(w, http.StatusInternalServerError, "Не удалось получить события сессии.")
		return
	}

	grid, err := schedule.BuildGrid(*session, events)
	if err != nil {
		log.Printf("Ошибка при построении сетки сессии %s: %v", sid, err)
		respondError(w, http.StatusInternalServerError, "Не удалось построить сетку недели.")
		return
	}
	for _, warning := range grid.Warnings {
		log.Printf("Сессия %s: %s", sid, warning)
	}

	respondJSON(w, http.StatusOK, grid)
}
