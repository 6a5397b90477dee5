package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"meeting_server_go/data"
	"meeting_server_go/models"
)

// backupFileName — имя файла выгружаемого снимка.
const backupFileName = "meeting_schedule_backup.json"

// maxBackupSize ограничивает размер загружаемого снимка (20 МБ).
const maxBackupSize = 20 << 20

// DownloadBackupHandler отдаёт полный снимок расписания одним JSON-файлом:
// все недельные сессии с вложенными событиями.
// GET /api/backup/json
func DownloadBackupHandler(w http.ResponseWriter, r *http.Request) {
	snapshot, err := data.BuildSnapshot()
	if err != nil {
		log.Printf("Ошибка при сборке снимка: %v", err)
		respondError(w, http.StatusInternalServerError, "Не удалось собрать резервную копию.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+backupFileName+`"`)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snapshot); err != nil {
		log.Printf("Ошибка при записи снимка: %v", err)
		return
	}
	log.Printf("Выгружен снимок: сессий %d", len(snapshot.Sessions))
}

// RestoreBackupHandler замещает всё содержимое базы снимком из
// загруженного JSON-файла. Операция атомарна: при ошибке база остаётся
// в прежнем состоянии.
// POST /api/backup/restore (multipart/form-data: file)
func RestoreBackupHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBackupSize)
	if err := r.ParseMultipartForm(maxBackupSize); err != nil {
		respondError(w, http.StatusBadRequest, "Не удалось разобрать форму: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Файл не передан в поле file.")
		return
	}
	defer file.Close()

	var snapshot models.BackupData
	if err := json.NewDecoder(file).Decode(&snapshot); err != nil {
		respondError(w, http.StatusBadRequest, "Не удалось прочитать снимок: "+err.Error())
		return
	}

	restored, err := data.RestoreSnapshot(&snapshot)
	if err != nil {
		log.Printf("Ошибка при восстановлении снимка %s: %v", header.Filename, err)
		respondError(w, http.StatusInternalServerError, "Не удалось восстановить резервную копию.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "restored",
		"sessions": len(snapshot.Sessions),
		"events":   restored,
	})
}
