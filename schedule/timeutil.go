package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"meeting_server_go/models"
)

// NoonMinutes — граница между SÁNG и CHIỀU в минутах от полуночи.
const NoonMinutes = 12 * 60

// ParseError возвращается при некорректной строке времени "HH:MM".
type ParseError struct {
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("некорректное время %q: %s", e.Value, e.Reason)
}

// ToMinutes разбирает время "HH:MM" в минуты от полуночи.
// Допустимы часы 0..23 и минуты 0..59, всё остальное — *ParseError.
func ToMinutes(hhmm string) (int, error) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 {
		return 0, &ParseError{Value: hhmm, Reason: "ожидается формат HH:MM"}
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &ParseError{Value: hhmm, Reason: "часы не являются числом"}
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &ParseError{Value: hhmm, Reason: "минуты не являются числом"}
	}
	if h < 0 || h > 23 {
		return 0, &ParseError{Value: hhmm, Reason: "часы вне диапазона 0..23"}
	}
	if m < 0 || m > 59 {
		return 0, &ParseError{Value: hhmm, Reason: "минуты вне диапазона 0..59"}
	}
	return h*60 + m, nil
}

// HalfDayOfMinutes классифицирует минуты от полуночи в половину дня.
func HalfDayOfMinutes(minutes int) string {
	if minutes < NoonMinutes {
		return models.HalfDayMorning
	}
	return models.HalfDayAfternoon
}

// ClassifyHalfDay определяет половину дня по времени начала "HH:MM".
// На корректном входе никогда не ошибается.
func ClassifyHalfDay(hhmm string) (string, error) {
	minutes, err := ToMinutes(hhmm)
	if err != nil {
		return "", err
	}
	return HalfDayOfMinutes(minutes), nil
}
