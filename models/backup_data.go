package models

import "time"

// BackupData представляет полный снимок документа расписания: все недельные
// сессии вместе с их событиями. Это единица обмена для бэкапа и
// восстановления — частичных выгрузок не бывает.
type BackupData struct {
	Sessions   []WeekSession `json:"sessions"`
	ExportedAt time.Time     `json:"exportedAt"`
}
