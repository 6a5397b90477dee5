package controllers

import (
	"log"
	"net/http"

	"meeting_server_go/data"
	"meeting_server_go/export"
	"meeting_server_go/models"
	"meeting_server_go/schedule"

	"github.com/gorilla/mux"
)

// loadSessionWithEvents достаёт сессию и её события для выгрузок.
// Возвращает (nil, nil, true), если ответ уже отправлен.
func loadSessionWithEvents(w http.ResponseWriter, sid string) (*models.WeekSession, []models.Event, bool) {
	session, err := data.GetSessionByID(sid)
	if err != nil {
		log.Printf("Ошибка при получении сессии %s: %v", sid, err)
		respondError(w, http.StatusInternalServerError, "Не удалось получить сессию.")
		return nil, nil, true
	}
	if session == nil {
		respondError(w, http.StatusNotFound, "Không tìm thấy session.")
		return nil, nil, true
	}

	events, err := data.GetEventsBySessionID(sid)
	if err != nil {
		log.Printf("Ошибка при получении событий сессии %s: %v", sid, err)
		respondError(w, http.StatusInternalServerError, "Не удалось получить события сессии.")
		return nil, nil, true
	}
	return session, events, false
}

// ExportExcelHandler выгружает неделю как Excel-книгу: лист-список с
// раскраской по председательствующему и пометкой конфликтов плюс
// лист-сетка в формате, пригодном для обратного импорта.
// GET /api/export/{session_id}/excel
func ExportExcelHandler(w http.ResponseWriter, r *http.Request) {
	sid := mux.Vars(r)["session_id"]
	session, events, done := loadSessionWithEvents(w, sid)
	if done {
		return
	}

	report := schedule.ComputeConflicts(events)
	grid, err := schedule.BuildGrid(*session, events)
	if err != nil {
		log.Printf("Ошибка при построении сетки сессии %s: %v", sid, err)
		respondError(w, http.StatusInternalServerError, "Не удалось построить сетку недели.")
		return
	}
	for _, warning := range grid.Warnings {
		log.Printf("Сессия %s: %s", sid, warning)
	}

	workbook, err := export.BuildWorkbook(session, events, report, grid)
	if err != nil {
		log.Printf("Ошибка при сборке Excel для сессии %s: %v", sid, err)
		respondError(w, http.StatusInternalServerError, "Не удалось собрать Excel-файл.")
		return
	}

	fileName := export.WorkbookFileName(sid)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	if err := workbook.Write(w); err != nil {
		// Заголовки уже ушли, остаётся только залогировать.
		log.Printf("Ошибка при записи Excel-файла %s: %v", fileName, err)
		return
	}
	log.Printf("Выгружен Excel %s (%d событий)", fileName, len(events))
}

// ExportICSHandler выгружает неделю как iCalendar-файл.
// GET /api/export/{session_id}/ics
func ExportICSHandler(w http.ResponseWriter, r *http.Request) {
	sid := mux.Vars(r)["session_id"]
	session, events, done := loadSessionWithEvents(w, sid)
	if done {
		return
	}

	payload, err := export.BuildCalendar(session, events)
	if err != nil {
		log.Printf("Ошибка при сборке ICS для сессии %s: %v", sid, err)
		respondError(w, http.StatusInternalServerError, "Не удалось собрать календарный файл.")
		return
	}

	fileName := export.CalendarFileName(sid)
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	if _, err := w.Write([]byte(payload)); err != nil {
		log.Printf("Ошибка при записи ICS-файла %s: %v", fileName, err)
		return
	}
	log.Printf("Выгружен ICS %s (%d событий)", fileName, len(events))
}
