package models

import "time"

// WeekSession — недельная сессия (понедельник..суббота, 6 дней).
// Id детерминированно выводится из ISO-недели любой даты внутри окна:
// "{ISOYear}-W{ISOWeek:02d}". Две даты одной ISO-недели всегда дают один
// и тот же Id, в том числе на границе года.
type WeekSession struct {
	Id        string    `json:"id" db:"Id"`                // Например "2024-W23"
	WeekStart string    `json:"week_start" db:"WeekStart"` // Понедельник, "yyyy-MM-dd"
	WeekEnd   string    `json:"week_end" db:"WeekEnd"`     // Суббота = WeekStart + 5 дней
	CreatedAt time.Time `json:"-" db:"CreatedAt"`
	UpdatedAt time.Time `json:"-" db:"UpdatedAt"`

	// События заполняются отдельным запросом, в таблице Sessions их нет.
	Events []Event `json:"events,omitempty" db:"-"`
}
