package data

import (
	"fmt"
	"log"

	"meeting_server_go/models"
)

// ImportDrafts вставляет черновики событий в сессию одной транзакцией.
// Каждый черновик получает новый UUID; черновики с нарушенной валидацией
// пропускаются с записью в лог, остальные сохраняются. Возвращает число
// созданных событий.
func ImportDrafts(sessionID string, drafts []models.UpsertEventRequest) (int, error) {
	if len(drafts) == 0 {
		return 0, nil
	}

	tx, err := MainDB.Beginx()
	if err != nil {
		return 0, fmt.Errorf("ImportDrafts: ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback() // После Commit откат становится no-op.

	imported := 0
	for _, draft := range drafts {
		if _, cerr := CreateEventWithTx(tx, sessionID, draft); cerr != nil {
			log.Printf("ImportDrafts: черновик %q (%s) пропущен: %v", draft.Title, draft.Date, cerr)
			continue
		}
		imported++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("ImportDrafts: ошибка фиксации транзакции: %w", err)
	}

	if imported > 0 {
		if err := touchSession(sessionID); err != nil {
			return imported, err
		}
	}
	log.Printf("Импортировано %d из %d черновиков в сессию %s", imported, len(drafts), sessionID)
	return imported, nil
}
