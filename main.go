package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"meeting_server_go/controllers"
	"meeting_server_go/data"

	"github.com/gorilla/mux"
)

func main() {
	// Инициализация базы данных
	if err := data.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	router := mux.NewRouter()

	apiRouter := router.PathPrefix("/api").Subrouter()

	// Маршрут для проверки состояния сервера
	apiRouter.HandleFunc("/health", controllers.HealthCheck).Methods(http.MethodGet)

	// Справочники для клиентских форм
	apiRouter.HandleFunc("/meta", controllers.GetMetaHandler).Methods(http.MethodGet)

	// Недельные сессии
	sessionRouter := apiRouter.PathPrefix("/sessions").Subrouter()
	sessionRouter.HandleFunc("", controllers.GetSessionsHandler).Methods(http.MethodGet)
	sessionRouter.HandleFunc("/current", controllers.GetCurrentSessionHandler).Methods(http.MethodGet)
	sessionRouter.HandleFunc("/{session_id}/grid", controllers.GetSessionGridHandler).Methods(http.MethodGet)
	sessionRouter.HandleFunc("/{session_id}/clear", controllers.ClearSessionHandler).Methods(http.MethodPost)
	sessionRouter.HandleFunc("/{session_id}/events/{event_id}", controllers.DeleteEventHandler).Methods(http.MethodDelete)

	// События: создание и обновление одним запросом, сессия выбирается по дате
	apiRouter.HandleFunc("/events", controllers.UpsertEventHandler).Methods(http.MethodPost)

	// Импорт внешней сетки и копирование недели
	apiRouter.HandleFunc("/import", controllers.ImportGridHandler).Methods(http.MethodPost)
	apiRouter.HandleFunc("/copy-week", controllers.CopyWeekHandler).Methods(http.MethodPost)

	// Выгрузки недели
	exportRouter := apiRouter.PathPrefix("/export").Subrouter()
	exportRouter.HandleFunc("/{session_id}/excel", controllers.ExportExcelHandler).Methods(http.MethodGet)
	exportRouter.HandleFunc("/{session_id}/ics", controllers.ExportICSHandler).Methods(http.MethodGet)

	// Резервное копирование всего расписания
	backupRouter := apiRouter.PathPrefix("/backup").Subrouter()
	backupRouter.HandleFunc("/json", controllers.DownloadBackupHandler).Methods(http.MethodGet)
	backupRouter.HandleFunc("/restore", controllers.RestoreBackupHandler).Methods(http.MethodPost)

	// Базовый обработчик для проверки работы сервера
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "Привет! Сервер MeetingServerGO запущен. Используется gorilla/mux.")
	}).Methods(http.MethodGet)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Запуск сервера на порту :%s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}
