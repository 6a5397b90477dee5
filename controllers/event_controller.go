package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"meeting_server_go/data"
	"meeting_server_go/models"
	"meeting_server_go/schedule"

	"github.com/gorilla/mux"
)

// UpsertEventHandler создаёт или обновляет событие. Сессия определяется
// по дате события и при необходимости создаётся лениво; пустой id в теле
// означает создание, непустой — обновление на месте.
// POST /api/events
func UpsertEventHandler(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса: "+err.Error())
		return
	}
	defer r.Body.Close()

	eventDate, err := time.Parse(schedule.DateLayout, req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, data.ErrMalformedDateTime.Error())
		return
	}

	session, err := data.GetOrCreateSession(eventDate)
	if err != nil {
		log.Printf("Ошибка при открытии сессии для даты %s: %v", req.Date, err)
		respondError(w, http.StatusInternalServerError, "Не удалось открыть недельную сессию.")
		return
	}

	ev, err := data.UpsertEvent(session, req)
	if err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Ошибка при сохранении события в сессии %s: %v", session.Id, err)
		respondError(w, http.StatusInternalServerError, "Не удалось сохранить событие.")
		return
	}

	respondJSON(w, http.StatusOK, ev)
}

// isValidationError отличает отказ валидации (ответ 400, состояние не
// изменилось) от внутренней ошибки хранилища.
func isValidationError(err error) bool {
	var parseErr *schedule.ParseError
	return errors.Is(err, data.ErrInvalidTimeRange) ||
		errors.Is(err, data.ErrEmptyTitle) ||
		errors.Is(err, data.ErrDateOutsideWeek) ||
		errors.Is(err, data.ErrMalformedDateTime) ||
		errors.As(err, &parseErr)
}

// DeleteEventHandler удаляет событие сессии. Удаление отсутствующего
// события — no-op и отвечает 200: повторная отправка формы не ошибка.
// DELETE /api/sessions/{session_id}/events/{event_id}
func DeleteEventHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sid := vars["session_id"]
	eventID := vars["event_id"]

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

	if err := data.DeleteEvent(sid, eventID); err != nil {
		log.Printf("Ошибка при удалении события %s из сессии %s: %v", eventID, sid, err)
		respondError(w, http.StatusInternalServerError, "Не удалось удалить событие.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": eventID})
}

// ClearSessionHandler удаляет все события сессии, сохраняя её саму.
// POST /api/sessions/{session_id}/clear
func ClearSessionHandler(w http.ResponseWriter, r *http.Request) {
	sid := mux.Vars(r)["session_id"]

	err := data.ClearSessionEvents(sid)
	if err != nil {
		if errors.Is(err, data.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, "Không tìm thấy session.")
			return
		}
		log.Printf("Ошибка при очистке сессии %s: %v", sid, err)
		respondError(w, http.StatusInternalServerError, "Не удалось очистить сессию.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "cleared", "session_id": sid})
}
