package data

// GetSchema возвращает SQL-схему базы расписания: сначала Sessions,
// затем Events с внешним ключом на неё.
func GetSchema() string {
	return SessionsTable() + EventsTable()
}

func SessionsTable() string {
	return `
CREATE TABLE IF NOT EXISTS Sessions (
    Id TEXT PRIMARY KEY,        -- "{ISOYear}-W{ISOWeek:02d}", например "2024-W23"
    WeekStart TEXT NOT NULL,    -- Понедельник, "yyyy-MM-dd"
    WeekEnd TEXT NOT NULL,      -- Суббота = WeekStart + 5 дней
    CreatedAt DATETIME NOT NULL,
    UpdatedAt DATETIME NOT NULL
);
`
}

func EventsTable() string {
	return `
CREATE TABLE IF NOT EXISTS Events (
    Id TEXT PRIMARY KEY,        -- UUID
    SessionId TEXT NOT NULL,
    Date TEXT NOT NULL,         -- "yyyy-MM-dd", внутри окна недели сессии
    HalfDay TEXT NOT NULL,      -- 'SÁNG' | 'CHIỀU'
    StartTime TEXT NOT NULL,    -- "HH:mm"
    EndTime TEXT NOT NULL,
    Title TEXT NOT NULL,
    Category TEXT NOT NULL DEFAULT '',
    Chair TEXT NOT NULL DEFAULT '',
    Attendees TEXT NOT NULL DEFAULT '',
    Location TEXT NOT NULL DEFAULT '',
    CreatedAt DATETIME NOT NULL,
    UpdatedAt DATETIME NOT NULL,
    FOREIGN KEY (SessionId) REFERENCES Sessions(Id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_events_session ON Events(SessionId);
`
}
