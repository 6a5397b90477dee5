package models

import "time"

// Половины дня ("buổi" в исходных данных). Хранятся как текст,
// потому что клиент и экспорт оперируют именно этими метками.
const (
	HalfDayMorning   = "SÁNG"  // до 12:00
	HalfDayAfternoon = "CHIỀU" // с 12:00
)

// Event представляет одно совещание внутри недельной сессии.
// Флаги конфликтов здесь намеренно отсутствуют: они не хранятся,
// а пересчитываются при каждом чтении (см. ConflictReport).
type Event struct {
	Id        string `json:"id" db:"Id"`                 // UUID, назначается при создании и больше не меняется
	SessionId string `json:"session_id" db:"SessionId"`  // Внешний ключ к Sessions.Id
	Date      string `json:"date" db:"Date"`             // "yyyy-MM-dd", обязан попадать в окно недели сессии
	HalfDay   string `json:"half_day" db:"HalfDay"`      // SÁNG | CHIỀU
	StartTime string `json:"start_time" db:"StartTime"`  // "HH:mm"
	EndTime   string `json:"end_time" db:"EndTime"`      // "HH:mm", строго позже StartTime
	Title     string `json:"title" db:"Title"`
	Category  string `json:"category" db:"Category"`
	Chair     string `json:"chair" db:"Chair"`           // Председательствующий; ключ раскраски в экспорте
	Attendees string `json:"attendees" db:"Attendees"`   // Имена через запятую, разбираются только при сравнении
	Location  string `json:"location" db:"Location"`
	CreatedAt time.Time `json:"-" db:"CreatedAt"`
	UpdatedAt time.Time `json:"-" db:"UpdatedAt"`
}

// UpsertEventRequest — входной DTO для создания/обновления события.
// Пустой Id означает создание с новым UUID, непустой — обновление на месте.
type UpsertEventRequest struct {
	Id        string `json:"id"`
	Date      string `json:"date"`
	HalfDay   string `json:"half_day"`   // Пусто -> определяется по StartTime (до 12:00 = SÁNG)
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Chair     string `json:"chair"`
	Attendees string `json:"attendees"`
	Location  string `json:"location"`
}
