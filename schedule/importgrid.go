package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"meeting_server_go/models"
)

// Маркеры импортируемой сетки. Колонка 1 размечает секции половин дня,
// строка "GHI CHÚ" завершает разбор. Формат ячейки совпадает с тем, что
// пишет листовой экспорт "Lưới tuần", поэтому экспорт -> импорт образует
// round-trip.
const terminalMarker = "GHI CHÚ"

// Метки полей внутри тела события. Порядок строк произвольный,
// нераспознанные строки игнорируются.
const (
	labelChair     = "Chủ trì:"
	labelAttendees = "Tham dự:"
	labelLocation  = "Địa điểm:"
	labelCategory  = "Loại:"
)

// eventMarkerRe выделяет начало события в ячейке: "*HHhMM - HHhMM:".
var eventMarkerRe = regexp.MustCompile(`\*\s*(\d{1,2})h(\d{2})\s*-\s*(\d{1,2})h(\d{2})\s*:`)

// CellError — локализованная ошибка разбора одной ячейки. Ошибка одной
// ячейки не прерывает импорт остальных: контракт — частичный успех.
type CellError struct {
	Row    int    `json:"row"` // 1-based, как в таблице
	Col    int    `json:"col"`
	Reason string `json:"reason"`
}

func (e CellError) Error() string {
	return fmt.Sprintf("ячейка (строка %d, колонка %d): %s", e.Row, e.Col, e.Reason)
}

// HasHalfDayMarker сообщает, содержит ли текст маркер секции половины
// дня. Используется для выбора листа книги при импорте.
func HasHalfDayMarker(s string) bool {
	upper := strings.ToUpper(strings.TrimSpace(s))
	return strings.Contains(upper, models.HalfDayMorning) || strings.Contains(upper, models.HalfDayAfternoon)
}

// ParseImportGrid разбирает внешнюю табличную сетку (6 колонок дней недели,
// маркеры секций SÁNG/CHIỀU в первой колонке) в черновики событий,
// привязанные к целевой неделе: колонка N даёт дату targetMonday+(N-2) дней.
// Строки до первого маркера секции игнорируются; терминальная строка
// останавливает разбор.
func ParseImportGrid(rows [][]string, targetMonday time.Time) ([]models.UpsertEventRequest, []CellError) {
	monday := MondayOf(targetMonday)

	var drafts []models.UpsertEventRequest
	var cellErrs []CellError

	currentHalfDay := ""

scan:
	for r, row := range rows {
		if len(row) == 0 {
			continue
		}
		marker := strings.ToUpper(strings.TrimSpace(row[0]))
		switch {
		case strings.Contains(marker, terminalMarker):
			break scan
		case strings.Contains(marker, models.HalfDayMorning):
			currentHalfDay = models.HalfDayMorning
		case strings.Contains(marker, models.HalfDayAfternoon):
			currentHalfDay = models.HalfDayAfternoon
		}
		if currentHalfDay == "" {
			// Шапка таблицы до первой секции.
			continue
		}

		for offset := 0; offset < WeekDays; offset++ {
			col := offset + 1
			if col >= len(row) {
				break
			}
			cellText := row[col]
			if strings.TrimSpace(cellText) == "" {
				continue
			}
			date := monday.AddDate(0, 0, offset).Format(DateLayout)
			parsed, errs := parseCell(cellText, date, currentHalfDay, r+1, col+1)
			drafts = append(drafts, parsed...)
			cellErrs = append(cellErrs, errs...)
		}
	}

	return drafts, cellErrs
}

// parseCell разбирает одну ячейку: в ней может лежать несколько событий,
// каждое начинается с маркера "*HHhMM - HHhMM:".
func parseCell(text, date, halfDay string, row, col int) ([]models.UpsertEventRequest, []CellError) {
	matches := eventMarkerRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		if strings.Contains(text, "*") {
			// Похоже на событие, но диапазон времени не читается.
			return nil, []CellError{{Row: row, Col: col, Reason: "не удалось разобрать диапазон времени события"}}
		}
		// Свободный текст без маркеров — не событие, молча пропускаем.
		return nil, nil
	}

	var drafts []models.UpsertEventRequest
	var cellErrs []CellError

	for i, m := range matches {
		bodyStart := m[1]
		bodyEnd := len(text)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}

		startTime, endTime, err := timesFromMarker(text, m)
		if err != nil {
			cellErrs = append(cellErrs, CellError{Row: row, Col: col, Reason: err.Error()})
			continue
		}

		draft, err := draftFromBody(text[bodyStart:bodyEnd], date, halfDay, startTime, endTime)
		if err != nil {
			cellErrs = append(cellErrs, CellError{Row: row, Col: col, Reason: err.Error()})
			continue
		}
		drafts = append(drafts, draft)
	}

	return drafts, cellErrs
}

// timesFromMarker превращает группы маркера в "HH:MM"-строки и проверяет
// их корректность.
func timesFromMarker(text string, m []int) (string, string, error) {
	group := func(i int) int {
		v, _ := strconv.Atoi(text[m[2*i]:m[2*i+1]])
		return v
	}
	sh, sm, eh, em := group(1), group(2), group(3), group(4)
	if sh > 23 || sm > 59 || eh > 23 || em > 59 {
		return "", "", fmt.Errorf("время %02dh%02d - %02dh%02d вне допустимого диапазона", sh, sm, eh, em)
	}
	start := sh*60 + sm
	end := eh*60 + em
	if start >= end {
		return "", "", fmt.Errorf("время окончания %02dh%02d не позже времени начала %02dh%02d", eh, em, sh, sm)
	}
	return fmt.Sprintf("%02d:%02d", sh, sm), fmt.Sprintf("%02d:%02d", eh, em), nil
}

// draftFromBody собирает черновик события из свободного текста тела:
// первая непустая строка — название, дальше строки с известными метками.
func draftFromBody(body, date, halfDay, startTime, endTime string) (models.UpsertEventRequest, error) {
	draft := models.UpsertEventRequest{
		// Id пустой: импорт всегда создаёт новые события и никогда
		// не обновляет существующие.
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, labelChair):
			draft.Chair = strings.TrimSpace(strings.TrimPrefix(line, labelChair))
		case strings.HasPrefix(line, labelAttendees):
			draft.Attendees = strings.TrimSpace(strings.TrimPrefix(line, labelAttendees))
		case strings.HasPrefix(line, labelLocation):
			draft.Location = strings.TrimSpace(strings.TrimPrefix(line, labelLocation))
		case strings.HasPrefix(line, labelCategory):
			draft.Category = strings.TrimSpace(strings.TrimPrefix(line, labelCategory))
		case draft.Title == "":
			draft.Title = line
		}
		// Прочие строки после названия игнорируются.
	}

	if draft.Title == "" {
		return draft, fmt.Errorf("событие %s - %s без названия", startTime, endTime)
	}

	// Метка секции может расходиться с реальным временем (источник иногда
	// размечает строки неточно) — классификация по времени главнее.
	startMinutes, err := ToMinutes(startTime)
	if err != nil {
		return draft, err
	}
	if classified := HalfDayOfMinutes(startMinutes); classified != halfDay {
		draft.HalfDay = classified
	} else {
		draft.HalfDay = halfDay
	}

	return draft, nil
}
