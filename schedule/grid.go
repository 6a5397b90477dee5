package schedule

import (
	"fmt"
	"sort"
	"time"

	"meeting_server_go/models"
)

// WeekGrid — проекция недели в сетку 6 дней x 2 половины дня.
// Используется и предпросмотром, и экспортом.
type WeekGrid struct {
	// Days — шесть дат недели по порядку, "yyyy-MM-dd".
	Days []string `json:"days"`
	// Buckets: дата -> половина дня -> события, отсортированные по началу.
	Buckets map[string]map[string][]models.Event `json:"buckets"`
	// Warnings — события, чья дата не попала в окно недели. Такое возможно
	// только из-за повреждённых данных; событие исключается из сетки,
	// но проекция не падает.
	Warnings []string `json:"warnings,omitempty"`
}

// BuildGrid раскладывает события сессии по ячейкам (дата, половина дня).
// Для каждого из шести дней заранее создаются обе корзины, даже пустые:
// потребителям не приходится проверять наличие ключей.
func BuildGrid(session models.WeekSession, events []models.Event) (*WeekGrid, error) {
	weekStart, err := time.Parse(DateLayout, session.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("BuildGrid: некорректное начало недели %q: %w", session.WeekStart, err)
	}

	grid := &WeekGrid{
		Days:    make([]string, 0, WeekDays),
		Buckets: make(map[string]map[string][]models.Event, WeekDays),
	}
	for i := 0; i < WeekDays; i++ {
		day := weekStart.AddDate(0, 0, i).Format(DateLayout)
		grid.Days = append(grid.Days, day)
		grid.Buckets[day] = map[string][]models.Event{
			models.HalfDayMorning:   {},
			models.HalfDayAfternoon: {},
		}
	}

	for _, ev := range events {
		dayBuckets, ok := grid.Buckets[ev.Date]
		if !ok {
			grid.Warnings = append(grid.Warnings, fmt.Sprintf(
				"событие %s (%q) датировано %s вне недели %s..%s и исключено из сетки",
				ev.Id, ev.Title, ev.Date, session.WeekStart, session.WeekEnd))
			continue
		}
		halfDay := ev.HalfDay
		if _, ok := dayBuckets[halfDay]; !ok {
			// Неизвестная метка половины дня — восстанавливаем по времени начала.
			if classified, cerr := ClassifyHalfDay(ev.StartTime); cerr == nil {
				halfDay = classified
			} else {
				grid.Warnings = append(grid.Warnings, fmt.Sprintf(
					"событие %s (%q) имеет нечитаемую половину дня %q и исключено из сетки",
					ev.Id, ev.Title, ev.HalfDay))
				continue
			}
		}
		dayBuckets[halfDay] = append(dayBuckets[halfDay], ev)
	}

	// Внутри корзины события идут по времени начала.
	for _, dayBuckets := range grid.Buckets {
		for _, bucket := range dayBuckets {
			sortEventsByStart(bucket)
		}
	}

	return grid, nil
}

func sortEventsByStart(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		si, erri := ToMinutes(events[i].StartTime)
		sj, errj := ToMinutes(events[j].StartTime)
		if erri != nil || errj != nil {
			return false
		}
		return si < sj
	})
}
