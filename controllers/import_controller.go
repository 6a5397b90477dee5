package controllers

import (
	"log"
	"net/http"
	"time"

	"meeting_server_go/data"
	"meeting_server_go/schedule"

	"github.com/xuri/excelize/v2"
)

// maxImportSize ограничивает размер загружаемой книги (10 МБ).
const maxImportSize = 10 << 20

// ImportGridHandler принимает Excel-файл с недельной сеткой и создаёт
// события в сессии недели, заданной полем формы date (по умолчанию —
// текущая неделя). Импорт всегда создаёт новые события; существующие не
// трогаются. Ошибки отдельных ячеек не прерывают импорт остальных —
// они возвращаются клиенту списком вместе с числом созданных событий.
// POST /api/import (multipart/form-data: file, date)
func ImportGridHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		respondError(w, http.StatusBadRequest, "Не удалось разобрать форму: "+err.Error())
		return
	}

	targetDate := time.Now()
	if dateStr := r.FormValue("date"); dateStr != "" {
		parsed, err := time.Parse(schedule.DateLayout, dateStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Неверный формат даты, ожидается yyyy-MM-dd.")
			return
		}
		targetDate = parsed
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Файл не передан в поле file.")
		return
	}
	defer file.Close()

	workbook, err := excelize.OpenReader(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Не удалось открыть Excel-файл: "+err.Error())
		return
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		respondError(w, http.StatusBadRequest, "Книга не содержит ни одного листа.")
		return
	}
	// Сетка читается с первого листа; при round-trip экспортированной книги
	// лист-список не содержит маркеров секций и даст пустой результат,
	// поэтому берём первый лист с маркерами.
	rows, sheetName, err := firstGridSheet(workbook, sheets)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Не удалось прочитать лист: "+err.Error())
		return
	}

	session, err := data.GetOrCreateSession(targetDate)
	if err != nil {
		log.Printf("Ошибка при открытии сессии на дату %s: %v", targetDate.Format(schedule.DateLayout), err)
		respondError(w, http.StatusInternalServerError, "Не удалось открыть недельную сессию.")
		return
	}

	monday, err := time.Parse(schedule.DateLayout, session.WeekStart)
	if err != nil {
		log.Printf("Некорректное начало недели %q у сессии %s: %v", session.WeekStart, session.Id, err)
		respondError(w, http.StatusInternalServerError, "Не удалось определить понедельник недели.")
		return
	}

	drafts, cellErrs := schedule.ParseImportGrid(rows, monday)

	imported, err := data.ImportDrafts(session.Id, drafts)
	if err != nil {
		log.Printf("Ошибка при импорте в сессию %s: %v", session.Id, err)
		respondError(w, http.StatusInternalServerError, "Не удалось сохранить импортированные события.")
		return
	}

	if cellErrs == nil {
		cellErrs = []schedule.CellError{}
	}
	log.Printf("Импорт %s (лист %q): создано %d событий, ошибок ячеек %d",
		header.Filename, sheetName, imported, len(cellErrs))

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"session_id":  session.Id,
		"imported":    imported,
		"cell_errors": cellErrs,
	})
}

// firstGridSheet возвращает строки первого листа, содержащего маркеры
// секций половин дня, либо первого листа книги, если маркеров нет нигде.
func firstGridSheet(workbook *excelize.File, sheets []string) ([][]string, string, error) {
	var fallback [][]string
	fallbackName := sheets[0]

	for i, name := range sheets {
		rows, err := workbook.GetRows(name)
		if err != nil {
			return nil, "", err
		}
		if i == 0 {
			fallback = rows
		}
		if hasSectionMarkers(rows) {
			return rows, name, nil
		}
	}
	return fallback, fallbackName, nil
}

func hasSectionMarkers(rows [][]string) bool {
	for _, row := range rows {
		if len(row) > 0 && schedule.HasHalfDayMarker(row[0]) {
			return true
		}
	}
	return false
}
