package export

import (
	"fmt"
	"strings"
	"time"

	"meeting_server_go/models"
	"meeting_server_go/schedule"

	ical "github.com/arran4/golang-ical"
)

// CalendarFileName возвращает имя файла календарной выгрузки недели.
func CalendarFileName(sessionID string) string {
	return fmt.Sprintf("lich_hop_tuan_%s.ics", sessionID)
}

// BuildCalendar собирает iCalendar-документ недели: по одному VEVENT на
// событие. UID = идентификатор события, DTSTART/DTEND — дата плюс время
// начала/конца. Времена штампуются как UTC без сдвига: расписание живёт
// в одной неявной локальной зоне.
func BuildCalendar(session *models.WeekSession, events []models.Event) (string, error) {
	cal := ical.NewCalendar()
	cal.SetProductId(fmt.Sprintf("-//%s//Meeting Calendar//VN", models.CompanyName))

	now := time.Now().UTC()
	for _, ev := range events {
		start, err := combineUTC(ev.Date, ev.StartTime)
		if err != nil {
			return "", fmt.Errorf("BuildCalendar: событие %s: %w", ev.Id, err)
		}
		end, err := combineUTC(ev.Date, ev.EndTime)
		if err != nil {
			return "", fmt.Errorf("BuildCalendar: событие %s: %w", ev.Id, err)
		}

		vevent := cal.AddEvent(ev.Id)
		vevent.SetDtStampTime(now)
		vevent.SetStartAt(start)
		vevent.SetEndAt(end)
		vevent.SetSummary(strings.ReplaceAll(ev.Title, "\n", " "))
		if desc := assembleDescription(ev); desc != "" {
			vevent.SetDescription(desc)
		}
		if ev.Location != "" {
			vevent.SetLocation(ev.Location)
		}
	}

	return cal.Serialize(), nil
}

// assembleDescription собирает описание из непустых полей события.
// Метки без диакритики — так сложился формат выгрузки.
func assembleDescription(ev models.Event) string {
	var parts []string
	if ev.Chair != "" {
		parts = append(parts, "Chu tri: "+ev.Chair)
	}
	if ev.Attendees != "" {
		parts = append(parts, "Tham du: "+ev.Attendees)
	}
	if ev.Category != "" {
		parts = append(parts, "Loai: "+ev.Category)
	}
	return strings.Join(parts, "\n")
}

// combineUTC склеивает дату "yyyy-MM-dd" и время "HH:mm" в момент времени
// с зоной UTC (стеночное время штампуется как есть).
func combineUTC(date, hhmm string) (time.Time, error) {
	d, err := time.Parse(schedule.DateLayout, date)
	if err != nil {
		return time.Time{}, err
	}
	minutes, err := schedule.ToMinutes(hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), minutes/60, minutes%60, 0, 0, time.UTC), nil
}
