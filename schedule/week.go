package schedule

import (
	"fmt"
	"time"
)

// DateLayout — формат дат во всём приложении и в БД.
const DateLayout = "2006-01-02"

// WeekDays — длина рабочей недели: понедельник..суббота.
const WeekDays = 6

// MondayOf возвращает понедельник недели, в которую попадает дата
// (сама дата, если это понедельник). Поскольку ISO-недели начинаются
// с понедельника, это одновременно и понедельник ISO-недели даты —
// Id сессии и её окно всегда выводятся из одной и той же недели.
func MondayOf(d time.Time) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	// В Go воскресенье = 0, поэтому сдвиг считается от (weekday+6)%7.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// SaturdayOf возвращает субботу той же недели: MondayOf + 5 дней.
func SaturdayOf(d time.Time) time.Time {
	return MondayOf(d).AddDate(0, 0, WeekDays-1)
}

// SessionIDOf выводит идентификатор недельной сессии по ISO-нумерации
// недель: "{ISOYear}-W{ISOWeek:02d}". На границе года ISO-год может
// отличаться от григорианского — это ожидаемое поведение ISO-8601.
func SessionIDOf(d time.Time) string {
	year, week := d.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
