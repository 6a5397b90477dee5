package schedule

import (
	"testing"
	"time"

	"meeting_server_go/models"
)

func importMonday() time.Time {
	return time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
}

func TestParseImportGrid(t *testing.T) {
	rows := [][]string{
		{"Buổi", "Thứ 2 (03/06/2024)", "Thứ 3 (04/06/2024)", "Thứ 4", "Thứ 5", "Thứ 6", "Thứ 7"},
		{"SÁNG",
			"*09h00 - 10h00: Họp giao ban\nChủ trì: CEO\nTham dự: An, Bình\nĐịa điểm: P.201\nLoại: Họp nội bộ",
			"", "", "", "", ""},
		{"CHIỀU", "", "*14h00 - 15h30: Họp khách hàng\nĐịa điểm: P.105", "", "", "", ""},
		{"GHI CHÚ", "ghi chú tự do", "", "", "", "", ""},
		// Строки после терминальной не разбираются.
		{"SÁNG", "*08h00 - 09h00: Bị bỏ qua", "", "", "", "", ""},
	}

	drafts, cellErrs := ParseImportGrid(rows, importMonday())
	if len(cellErrs) != 0 {
		t.Fatalf("неожиданные ошибки ячеек: %v", cellErrs)
	}
	if len(drafts) != 2 {
		t.Fatalf("ожидалось 2 черновика, получено %d", len(drafts))
	}

	first := drafts[0]
	if first.Id != "" {
		t.Error("импорт всегда создаёт события, Id должен быть пустым")
	}
	if first.Date != "2024-06-03" || first.StartTime != "09:00" || first.EndTime != "10:00" {
		t.Errorf("неверные дата/времена первого события: %+v", first)
	}
	if first.Title != "Họp giao ban" || first.Chair != "CEO" || first.Attendees != "An, Bình" ||
		first.Location != "P.201" || first.Category != "Họp nội bộ" {
		t.Errorf("неверные поля первого события: %+v", first)
	}
	if first.HalfDay != models.HalfDayMorning {
		t.Errorf("первое событие должно быть SÁNG, получено %q", first.HalfDay)
	}

	second := drafts[1]
	if second.Date != "2024-06-04" || second.StartTime != "14:00" || second.EndTime != "15:30" {
		t.Errorf("неверные дата/времена второго события: %+v", second)
	}
	if second.Title != "Họp khách hàng" || second.Location != "P.105" {
		t.Errorf("неверные поля второго события: %+v", second)
	}
	if second.HalfDay != models.HalfDayAfternoon {
		t.Errorf("второе событие должно быть CHIỀU, получено %q", second.HalfDay)
	}
}

func TestParseImportGridHalfDayCorrection(t *testing.T) {
	// Метка секции расходится со временем: классификация по времени главнее.
	rows := [][]string{
		{"SÁNG", "*14h00 - 15h00: Họp chiều nhầm hàng", "", "", "", "", ""},
	}
	drafts, cellErrs := ParseImportGrid(rows, importMonday())
	if len(cellErrs) != 0 {
		t.Fatalf("неожиданные ошибки ячеек: %v", cellErrs)
	}
	if len(drafts) != 1 {
		t.Fatalf("ожидался 1 черновик, получено %d", len(drafts))
	}
	if drafts[0].HalfDay != models.HalfDayAfternoon {
		t.Errorf("половина дня не скорректирована: %q", drafts[0].HalfDay)
	}
}

func TestParseImportGridMultipleEventsPerCell(t *testing.T) {
	cell := "*08h00 - 09h00: Họp một\nChủ trì: A" +
		"\n*09h30 - 10h30: Họp hai\nChủ trì: B"
	rows := [][]string{
		{"SÁNG", cell, "", "", "", "", ""},
	}
	drafts, cellErrs := ParseImportGrid(rows, importMonday())
	if len(cellErrs) != 0 {
		t.Fatalf("неожиданные ошибки ячеек: %v", cellErrs)
	}
	if len(drafts) != 2 {
		t.Fatalf("ожидалось 2 черновика, получено %d", len(drafts))
	}
	if drafts[0].Title != "Họp một" || drafts[0].Chair != "A" {
		t.Errorf("первое событие разобрано неверно: %+v", drafts[0])
	}
	if drafts[1].Title != "Họp hai" || drafts[1].Chair != "B" {
		t.Errorf("второе событие разобрано неверно: %+v", drafts[1])
	}
}

func TestParseImportGridCellErrors(t *testing.T) {
	rows := [][]string{
		{"SÁNG",
			"*9h - 10h: без минут",           // маркер не читается
			"*10h00 - 09h00: конец раньше",   // диапазон задом наперёд
			"*11h00 - 12h00:\nChủ trì: CEO",  // нет названия
			"свободный текст без маркеров",   // молча пропускается
			"*08h00 - 09h00: Họp hợp lệ",
			""},
	}
	drafts, cellErrs := ParseImportGrid(rows, importMonday())
	if len(drafts) != 1 || drafts[0].Title != "Họp hợp lệ" {
		t.Fatalf("ожидался один валидный черновик, получено %+v", drafts)
	}
	if len(cellErrs) != 3 {
		t.Fatalf("ожидалось 3 ошибки ячеек, получено %d: %v", len(cellErrs), cellErrs)
	}
	// Координаты 1-based и указывают на исходную таблицу.
	if cellErrs[0].Row != 1 || cellErrs[0].Col != 2 {
		t.Errorf("неверные координаты первой ошибки: %+v", cellErrs[0])
	}
}

func TestHasHalfDayMarker(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"SÁNG", true},
		{" sáng ", true},
		{"CHIỀU", true},
		{"Buổi", false},
		{"", false},
	}
	for _, c := range cases {
		if got := HasHalfDayMarker(c.in); got != c.want {
			t.Errorf("HasHalfDayMarker(%q) = %v, ожидалось %v", c.in, got, c.want)
		}
	}
}
