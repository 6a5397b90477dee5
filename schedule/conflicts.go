package schedule

import (
	"sort"
	"strings"

	"meeting_server_go/models"
)

// groupKey — ключ группировки для поиска конфликтов: события на разных
// датах или в разных половинах дня не конфликтуют никогда.
type groupKey struct {
	date    string
	halfDay string
}

// timedEvent — событие с заранее разобранными минутами начала/конца.
type timedEvent struct {
	ev    models.Event
	start int
	end   int
}

// ComputeConflicts вычисляет три независимых признака пересечения для
// набора событий (обычно событий одной сессии, возможно отфильтрованных
// поиском). Внутри каждой группы (дата, половина дня) сравнивается каждая
// неупорядоченная пара, а не только соседи по сортировке: при трёх и более
// событиях пересечение не транзитивно по соседству, и сравнение только
// соседних пар пропускает накрывающие события.
//
// Сложность O(n²) на группу; групп больше десятка событий на практике
// не бывает.
func ComputeConflicts(events []models.Event) models.ConflictReport {
	report := models.ConflictReport{}

	groups := map[groupKey][]timedEvent{}
	for _, ev := range events {
		start, err := ToMinutes(ev.StartTime)
		if err != nil {
			// Событие с нечитаемым временем не может участвовать в
			// сравнении; валидация при записи такое не пропускает.
			continue
		}
		end, err := ToMinutes(ev.EndTime)
		if err != nil {
			continue
		}
		key := groupKey{date: ev.Date, halfDay: ev.HalfDay}
		groups[key] = append(groups[key], timedEvent{ev: ev, start: start, end: end})
	}

	for _, group := range groups {
		// Сортировка по началу, стабильная: при равном времени сохраняется
		// исходный порядок вставки.
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].start < group[j].start
		})

		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]
				if !timesOverlap(a, b) {
					continue
				}
				report.MarkTime(a.ev.Id, b.ev.Id)
				if locationsCollide(a.ev, b.ev) {
					report.MarkLocation(a.ev.Id, b.ev.Id)
				}
				if attendeesCollide(a.ev, b.ev) {
					report.MarkAttendee(a.ev.Id, b.ev.Id)
				}
			}
		}
	}

	return report
}

// timesOverlap — классическая проверка пересечения интервалов:
// max(start1, start2) < min(end1, end2).
func timesOverlap(a, b timedEvent) bool {
	lo := a.start
	if b.start > lo {
		lo = b.start
	}
	hi := a.end
	if b.end < hi {
		hi = b.end
	}
	return lo < hi
}

// locationsCollide — одинаковое непустое место. Совпадение места без
// пересечения по времени конфликтом не считается, поэтому вызывается
// только для пар, уже пересёкшихся по времени.
func locationsCollide(a, b models.Event) bool {
	la := strings.TrimSpace(a.Location)
	lb := strings.TrimSpace(b.Location)
	return la != "" && la == lb
}

// attendeesCollide — непустое пересечение множеств участников.
// Имена сравниваются как есть (после обрезки пробелов), без приведения
// регистра и нормализации диакритики — ровно так, как в исходных данных.
func attendeesCollide(a, b models.Event) bool {
	setA := SplitAttendees(a.Attendees)
	if len(setA) == 0 {
		return false
	}
	for name := range SplitAttendees(b.Attendees) {
		if _, ok := setA[name]; ok {
			return true
		}
	}
	return false
}

// SplitAttendees разбирает поле "Tham dự" (имена через запятую) в
// множество непустых имён с обрезанными пробелами.
func SplitAttendees(attendees string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, part := range strings.Split(attendees, ",") {
		name := strings.TrimSpace(part)
		if name != "" {
			set[name] = struct{}{}
		}
	}
	return set
}
