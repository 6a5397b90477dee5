package schedule

import (
	"testing"

	"meeting_server_go/models"
)

func testSession() models.WeekSession {
	return models.WeekSession{
		Id:        "2024-W23",
		WeekStart: "2024-06-03",
		WeekEnd:   "2024-06-08",
	}
}

func TestBuildGridEmptyBuckets(t *testing.T) {
	grid, err := BuildGrid(testSession(), nil)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	if len(grid.Days) != WeekDays {
		t.Fatalf("ожидалось %d дней, получено %d", WeekDays, len(grid.Days))
	}
	if grid.Days[0] != "2024-06-03" || grid.Days[5] != "2024-06-08" {
		t.Errorf("неверные границы недели: %v", grid.Days)
	}
	// Обе корзины существуют для каждого дня, даже пустые.
	for _, day := range grid.Days {
		for _, halfDay := range []string{models.HalfDayMorning, models.HalfDayAfternoon} {
			bucket, ok := grid.Buckets[day][halfDay]
			if !ok {
				t.Errorf("корзина %s/%s отсутствует", day, halfDay)
			}
			if len(bucket) != 0 {
				t.Errorf("корзина %s/%s не пуста", day, halfDay)
			}
		}
	}
}

func TestBuildGridPlacementAndSorting(t *testing.T) {
	events := []models.Event{
		testEvent("late", "2024-06-03", models.HalfDayMorning, "10:00", "11:00", "", ""),
		testEvent("early", "2024-06-03", models.HalfDayMorning, "08:00", "09:00", "", ""),
		testEvent("pm", "2024-06-05", models.HalfDayAfternoon, "14:00", "15:00", "", ""),
	}
	grid, err := BuildGrid(testSession(), events)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}

	morning := grid.Buckets["2024-06-03"][models.HalfDayMorning]
	if len(morning) != 2 || morning[0].Id != "early" || morning[1].Id != "late" {
		t.Errorf("корзина понедельника не отсортирована по началу: %+v", morning)
	}
	afternoon := grid.Buckets["2024-06-05"][models.HalfDayAfternoon]
	if len(afternoon) != 1 || afternoon[0].Id != "pm" {
		t.Errorf("событие среды потеряно: %+v", afternoon)
	}
	if len(grid.Warnings) != 0 {
		t.Errorf("лишние предупреждения: %v", grid.Warnings)
	}
}

func TestBuildGridOutOfWeekEvent(t *testing.T) {
	events := []models.Event{
		testEvent("stray", "2024-06-10", models.HalfDayMorning, "09:00", "10:00", "", ""),
	}
	grid, err := BuildGrid(testSession(), events)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	if len(grid.Warnings) != 1 {
		t.Fatalf("ожидалось одно предупреждение, получено %d", len(grid.Warnings))
	}
	for _, day := range grid.Days {
		for _, bucket := range grid.Buckets[day] {
			if len(bucket) != 0 {
				t.Errorf("событие вне недели попало в сетку: %+v", bucket)
			}
		}
	}
}

func TestBuildGridRecoversHalfDay(t *testing.T) {
	// Неизвестная метка половины дня восстанавливается по времени начала.
	events := []models.Event{
		testEvent("x", "2024-06-03", "???", "14:00", "15:00", "", ""),
	}
	grid, err := BuildGrid(testSession(), events)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	afternoon := grid.Buckets["2024-06-03"][models.HalfDayAfternoon]
	if len(afternoon) != 1 {
		t.Fatalf("событие не восстановлено в CHIỀU: %+v", grid.Buckets["2024-06-03"])
	}
	if len(grid.Warnings) != 0 {
		t.Errorf("восстановление не должно давать предупреждений: %v", grid.Warnings)
	}
}
