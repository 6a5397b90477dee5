package controllers

import (
	"encoding/json"
	"log"
	"net/http"
)

// respondJSON пишет payload как JSON с указанным статусом.
func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			// Заголовки уже отправлены, http.Error здесь делать нельзя.
			log.Printf("Error encoding JSON response: %v", err)
		}
	}
}

// respondError пишет сообщение об ошибке как JSON {"error": ...}.
func respondError(w http.ResponseWriter, statusCode int, message string) {
	log.Printf("HTTP Error %d: %s", statusCode, message)
	respondJSON(w, statusCode, map[string]string{"error": message})
}
