package controllers

import (
	"net/http"

	"meeting_server_go/models"
)

// GetMetaHandler отдаёт справочники для клиентских форм: палитру
// председательствующих, типы встреч и переговорные.
// GET /api/meta
func GetMetaHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"company":      models.CompanyName,
		"chair_colors": models.ChairColors,
		"categories":   models.Categories,
		"rooms":        models.Rooms,
	})
}
