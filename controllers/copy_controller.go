package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"meeting_server_go/data"
	"meeting_server_go/schedule"
)

// copyWeekRequest — тело запроса на копирование недели.
type copyWeekRequest struct {
	SourceSessionId string `json:"source_session_id"`
	TargetDate      string `json:"target_date"`
}

// CopyWeekHandler копирует все события исходной сессии в неделю целевой
// даты с сохранением дня недели и времени. Целевая сессия создаётся
// лениво; исходная не изменяется.
// POST /api/copy-week
func CopyWeekHandler(w http.ResponseWriter, r *http.Request) {
	var req copyWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса: "+err.Error())
		return
	}
	defer r.Body.Close()

	if req.SourceSessionId == "" {
		respondError(w, http.StatusBadRequest, "Не указан source_session_id.")
		return
	}
	targetDate, err := time.Parse(schedule.DateLayout, req.TargetDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат даты, ожидается yyyy-MM-dd.")
		return
	}

	targetID, copied, err := data.CopyWeek(req.SourceSessionId, targetDate)
	if err != nil {
		if errors.Is(err, data.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, "Không tìm thấy session.")
			return
		}
		log.Printf("Ошибка при копировании недели %s: %v", req.SourceSessionId, err)
		respondError(w, http.StatusInternalServerError, "Не удалось скопировать неделю.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"source_session_id": req.SourceSessionId,
		"target_session_id": targetID,
		"copied":            copied,
	})
}
