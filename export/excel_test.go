package export

import (
	"strings"
	"testing"
	"time"

	"meeting_server_go/models"
	"meeting_server_go/schedule"
)

func weekSession() *models.WeekSession {
	return &models.WeekSession{
		Id:        "2024-W23",
		WeekStart: "2024-06-03",
		WeekEnd:   "2024-06-08",
	}
}

func weekEvents() []models.Event {
	return []models.Event{
		{
			Id: "ev1", SessionId: "2024-W23", Date: "2024-06-03",
			HalfDay: models.HalfDayMorning, StartTime: "09:00", EndTime: "10:00",
			Title: "Họp giao ban", Chair: "CEO", Attendees: "An, Bình",
			Location: "P.201", Category: "Họp nội bộ",
		},
		{
			Id: "ev2", SessionId: "2024-W23", Date: "2024-06-03",
			HalfDay: models.HalfDayMorning, StartTime: "09:30", EndTime: "10:30",
			Title: "Họp dự án", Location: "P.201",
		},
		{
			Id: "ev3", SessionId: "2024-W23", Date: "2024-06-05",
			HalfDay: models.HalfDayAfternoon, StartTime: "14:00", EndTime: "15:00",
			Title: "Họp khách hàng",
		},
	}
}

func TestWorkbookFileName(t *testing.T) {
	if got := WorkbookFileName("2024-W23"); got != "lich_hop_tuan_2024-W23.xlsx" {
		t.Errorf("WorkbookFileName = %q", got)
	}
	if got := CalendarFileName("2024-W23"); got != "lich_hop_tuan_2024-W23.ics" {
		t.Errorf("CalendarFileName = %q", got)
	}
}

func TestSerializeCell(t *testing.T) {
	got := SerializeCell(weekEvents()[:1])
	want := "*09h00 - 10h00: Họp giao ban\n" +
		"Chủ trì: CEO\n" +
		"Tham dự: An, Bình\n" +
		"Địa điểm: P.201\n" +
		"Loại: Họp nội bộ"
	if got != want {
		t.Errorf("SerializeCell =\n%q\nожидалось\n%q", got, want)
	}
}

func TestSerializeCellOmitsEmptyFields(t *testing.T) {
	got := SerializeCell(weekEvents()[2:])
	if got != "*14h00 - 15h00: Họp khách hàng" {
		t.Errorf("SerializeCell = %q", got)
	}
}

// Сериализованная ячейка читается импортом без потерь.
func TestSerializeCellRoundTrip(t *testing.T) {
	cell := SerializeCell(weekEvents()[:2])
	rows := [][]string{
		{"SÁNG", cell, "", "", "", "", ""},
	}
	monday := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)

	drafts, cellErrs := schedule.ParseImportGrid(rows, monday)
	if len(cellErrs) != 0 {
		t.Fatalf("ошибки разбора: %v", cellErrs)
	}
	if len(drafts) != 2 {
		t.Fatalf("ожидалось 2 черновика, получено %d", len(drafts))
	}

	src := weekEvents()
	for i, draft := range drafts {
		if draft.Title != src[i].Title || draft.StartTime != src[i].StartTime ||
			draft.EndTime != src[i].EndTime || draft.Chair != src[i].Chair ||
			draft.Attendees != src[i].Attendees || draft.Location != src[i].Location ||
			draft.Category != src[i].Category {
			t.Errorf("черновик %d расходится с исходным событием:\n%+v\n%+v", i, draft, src[i])
		}
		if draft.Date != "2024-06-03" || draft.HalfDay != models.HalfDayMorning {
			t.Errorf("черновик %d: неверные дата/половина дня: %+v", i, draft)
		}
	}
}

func TestBuildWorkbook(t *testing.T) {
	session := weekSession()
	events := weekEvents()
	report := schedule.ComputeConflicts(events)
	grid, err := schedule.BuildGrid(*session, events)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}

	f, err := BuildWorkbook(session, events, report, grid)
	if err != nil {
		t.Fatalf("BuildWorkbook: %v", err)
	}
	defer f.Close()

	// Шапка листа-списка.
	title, err := f.GetCellValue(listSheet, "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if !strings.Contains(title, models.CompanyName) {
		t.Errorf("в заголовке нет названия компании: %q", title)
	}

	// Пересёкшиеся по времени события помечены в названии.
	ev1Title, _ := f.GetCellValue(listSheet, "E4")
	if !strings.HasSuffix(ev1Title, ConflictAnnotation) {
		t.Errorf("ожидалась пометка конфликта: %q", ev1Title)
	}
	ev3Title, _ := f.GetCellValue(listSheet, "E6")
	if strings.Contains(ev3Title, ConflictAnnotation) {
		t.Errorf("событие без конфликта помечено: %q", ev3Title)
	}

	// Лист-сетка читается импортом обратно: полный round-trip через книгу.
	rows, err := f.GetRows(gridSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	monday := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	drafts, cellErrs := schedule.ParseImportGrid(rows, monday)
	if len(cellErrs) != 0 {
		t.Fatalf("ошибки разбора сетки: %v", cellErrs)
	}
	if len(drafts) != len(events) {
		t.Errorf("round-trip потерял события: %d из %d", len(drafts), len(events))
	}
}
