package models

// ConflictFlags — три независимых признака пересечения для одного события.
// Значения по умолчанию false; движок конфликтов только взводит их.
type ConflictFlags struct {
	TimeConflict     bool `json:"time_conflict"`
	LocationConflict bool `json:"location_conflict"`
	AttendeeConflict bool `json:"attendee_conflict"`
}

// ConflictReport — производная read-only проекция "id события -> флаги".
// Сознательно отделена от Event: флаги никогда не сохраняются в БД
// и пересчитываются при каждом чтении.
type ConflictReport map[string]*ConflictFlags

// FlagsFor возвращает флаги события (нулевые, если событие не участвует
// ни в одном конфликте). Удобно для шаблонов ответов и экспорта.
func (r ConflictReport) FlagsFor(eventID string) ConflictFlags {
	if f, ok := r[eventID]; ok && f != nil {
		return *f
	}
	return ConflictFlags{}
}

// ensure возвращает (создавая при необходимости) изменяемые флаги события.
func (r ConflictReport) ensure(eventID string) *ConflictFlags {
	f, ok := r[eventID]
	if !ok {
		f = &ConflictFlags{}
		r[eventID] = f
	}
	return f
}

// MarkTime взводит флаг пересечения по времени у обоих участников пары.
func (r ConflictReport) MarkTime(idA, idB string) {
	r.ensure(idA).TimeConflict = true
	r.ensure(idB).TimeConflict = true
}

// MarkLocation взводит флаг пересечения по месту у обоих участников пары.
func (r ConflictReport) MarkLocation(idA, idB string) {
	r.ensure(idA).LocationConflict = true
	r.ensure(idB).LocationConflict = true
}

// MarkAttendee взводит флаг пересечения по участникам у обоих участников пары.
func (r ConflictReport) MarkAttendee(idA, idB string) {
	r.ensure(idA).AttendeeConflict = true
	r.ensure(idB).AttendeeConflict = true
}
