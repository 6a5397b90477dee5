// Package export содержит коллабораторов выгрузки: Excel-книгу недели и
// календарь .ics. Ядро отдаёт сюда уже посчитанные данные (события,
// отчёт о конфликтах, сетку) — здесь только раскладка байтов и стилей.
package export

import (
	"fmt"
	"strings"
	"time"

	"meeting_server_go/models"
	"meeting_server_go/schedule"

	"github.com/xuri/excelize/v2"
)

const (
	listSheet = "Danh sách"
	gridSheet = "Lưới tuần"
)

// ConflictAnnotation дописывается к названию события, пересёкшегося по
// времени. Текст фиксирован: его ожидают и читатели выгрузки, и тесты.
const ConflictAnnotation = " ⚠️ TRÙNG GIỜ"

// Заголовки листа-списка.
var listHeaders = []string{"Ngày", "Buổi", "Giờ bắt đầu", "Giờ kết thúc", "Tiêu đề", "Loại", "Chủ trì", "Tham dự", "Địa điểm"}

// Ширины колонок листа-списка, подобраны под реальные данные.
var listColumnWidths = []float64{14, 10, 12, 12, 36, 16, 14, 26, 22}

// WorkbookFileName возвращает имя файла выгрузки недели.
func WorkbookFileName(sessionID string) string {
	return fmt.Sprintf("lich_hop_tuan_%s.xlsx", sessionID)
}

// BuildWorkbook собирает Excel-книгу недели из двух листов: список событий
// (с раскраской по председательствующему и пометкой конфликтов) и сетка
// 6 дней x 2 половины дня. Ячейки сетки сериализуются в формате импорта,
// так что выгруженную книгу можно загрузить обратно без потерь.
func BuildWorkbook(session *models.WeekSession, events []models.Event, report models.ConflictReport, grid *schedule.WeekGrid) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", listSheet); err != nil {
		return nil, fmt.Errorf("BuildWorkbook: %w", err)
	}
	if err := writeListSheet(f, session, events, report); err != nil {
		return nil, err
	}
	if err := writeGridSheet(f, grid); err != nil {
		return nil, err
	}
	return f, nil
}

func writeListSheet(f *excelize.File, session *models.WeekSession, events []models.Event, report models.ConflictReport) error {
	// Шапка: название и границы недели.
	if err := f.MergeCell(listSheet, "A1", "I1"); err != nil {
		return fmt.Errorf("writeListSheet: %w", err)
	}
	f.SetCellValue(listSheet, "A1", "LỊCH HỌP TUẦN "+models.CompanyName)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("writeListSheet: %w", err)
	}
	f.SetCellStyle(listSheet, "A1", "A1", titleStyle)

	if err := f.MergeCell(listSheet, "A2", "I2"); err != nil {
		return fmt.Errorf("writeListSheet: %w", err)
	}
	f.SetCellValue(listSheet, "A2", fmt.Sprintf("Tuần: %s -> %s",
		displayDate(session.WeekStart), displayDate(session.WeekEnd)))

	weekStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("writeListSheet: %w", err)
	}
	f.SetCellStyle(listSheet, "A2", "A2", weekStyle)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("writeListSheet: %w", err)
	}
	for col, header := range listHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 3)
		f.SetCellValue(listSheet, cell, header)
		f.SetCellStyle(listSheet, cell, cell, headerStyle)
	}

	thin := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	// Стили строк кэшируются по ключу (цвет, центрирование): NewStyle на
	// каждую ячейку раздувает книгу.
	styleCache := map[string]int{}
	rowStyle := func(fillColor string, centered bool) (int, error) {
		key := fmt.Sprintf("%s|%v", fillColor, centered)
		if id, ok := styleCache[key]; ok {
			return id, nil
		}
		style := &excelize.Style{
			Border:    thin,
			Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		}
		if centered {
			style.Alignment.Horizontal = "center"
		}
		if fillColor != "" {
			style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillColor}}
		}
		id, err := f.NewStyle(style)
		if err != nil {
			return 0, err
		}
		styleCache[key] = id
		return id, nil
	}

	for i, ev := range events {
		rowNum := 4 + i
		title := ev.Title
		if report.FlagsFor(ev.Id).TimeConflict {
			title += ConflictAnnotation
		}
		values := []interface{}{
			ev.Date, ev.HalfDay, ev.StartTime, ev.EndTime,
			title, ev.Category, ev.Chair, ev.Attendees, ev.Location,
		}

		fillColor := ""
		if hex, ok := models.ChairColors[ev.Chair]; ok {
			fillColor = excelColor(hex)
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			f.SetCellValue(listSheet, cell, value)
			// Первые четыре колонки (дата, буоi, времена) центрируются.
			styleID, err := rowStyle(fillColor, col < 4)
			if err != nil {
				return fmt.Errorf("writeListSheet: %w", err)
			}
			f.SetCellStyle(listSheet, cell, cell, styleID)
		}
	}

	for i, width := range listColumnWidths {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(listSheet, colName, colName, width)
	}
	return nil
}

// writeGridSheet пишет сетку недели: первая колонка — маркеры секций
// SÁNG/CHIỀU, колонки 2..7 — дни, терминальная строка GHI CHÚ. Формат
// ячеек совпадает с форматом, который понимает импорт.
func writeGridSheet(f *excelize.File, grid *schedule.WeekGrid) error {
	if _, err := f.NewSheet(gridSheet); err != nil {
		return fmt.Errorf("writeGridSheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("writeGridSheet: %w", err)
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("writeGridSheet: %w", err)
	}

	f.SetCellValue(gridSheet, "A1", "Buổi")
	f.SetCellStyle(gridSheet, "A1", "A1", headerStyle)
	for i, day := range grid.Days {
		cell, _ := excelize.CoordinatesToCellName(i+2, 1)
		f.SetCellValue(gridSheet, cell, fmt.Sprintf("%s (%s)", weekdayLabel(i), displayDate(day)))
		f.SetCellStyle(gridSheet, cell, cell, headerStyle)
	}

	for rowIdx, halfDay := range []string{models.HalfDayMorning, models.HalfDayAfternoon} {
		rowNum := rowIdx + 2
		marker, _ := excelize.CoordinatesToCellName(1, rowNum)
		f.SetCellValue(gridSheet, marker, halfDay)
		f.SetCellStyle(gridSheet, marker, marker, headerStyle)
		for i, day := range grid.Days {
			cell, _ := excelize.CoordinatesToCellName(i+2, rowNum)
			f.SetCellValue(gridSheet, cell, SerializeCell(grid.Buckets[day][halfDay]))
			f.SetCellStyle(gridSheet, cell, cell, cellStyle)
		}
	}

	terminal, _ := excelize.CoordinatesToCellName(1, 4)
	f.SetCellValue(gridSheet, terminal, "GHI CHÚ")

	f.SetColWidth(gridSheet, "A", "A", 10)
	if last, err := excelize.ColumnNumberToName(len(grid.Days) + 1); err == nil {
		f.SetColWidth(gridSheet, "B", last, 34)
	}
	return nil
}

// SerializeCell сериализует события одной ячейки сетки: каждое начинается
// с маркера "*HHhMM - HHhMM:", дальше название и помеченные строки полей.
func SerializeCell(events []models.Event) string {
	blocks := make([]string, 0, len(events))
	for _, ev := range events {
		lines := []string{fmt.Sprintf("*%s - %s: %s", markerTime(ev.StartTime), markerTime(ev.EndTime), ev.Title)}
		if ev.Chair != "" {
			lines = append(lines, "Chủ trì: "+ev.Chair)
		}
		if ev.Attendees != "" {
			lines = append(lines, "Tham dự: "+ev.Attendees)
		}
		if ev.Location != "" {
			lines = append(lines, "Địa điểm: "+ev.Location)
		}
		if ev.Category != "" {
			lines = append(lines, "Loại: "+ev.Category)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n")
}

// markerTime переводит "09:00" в "09h00" — формат маркеров сетки.
func markerTime(hhmm string) string {
	return strings.Replace(hhmm, ":", "h", 1)
}

// excelColor нормализует "#rrggbb" в верхнерегистровый RGB без решётки.
func excelColor(hexColor string) string {
	c := strings.TrimPrefix(strings.TrimSpace(hexColor), "#")
	if len(c) != 6 {
		return "000000"
	}
	return strings.ToUpper(c)
}

// displayDate переводит "yyyy-MM-dd" в "dd/MM/yyyy" для шапок.
func displayDate(isoDate string) string {
	d, err := time.Parse(schedule.DateLayout, isoDate)
	if err != nil {
		return isoDate
	}
	return d.Format("02/01/2006")
}

var weekdayNames = []string{"Thứ 2", "Thứ 3", "Thứ 4", "Thứ 5", "Thứ 6", "Thứ 7"}

func weekdayLabel(offset int) string {
	if offset < 0 || offset >= len(weekdayNames) {
		return ""
	}
	return weekdayNames[offset]
}
