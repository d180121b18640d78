package cmd

import (
	"net/http"

	"a_notes_go/controllers"
	"a_notes_go/middleware"
	"a_notes_go/pkg/log"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP API сервер",
	RunE: func(cmd *cobra.Command, args []string) error {
		controllers.Setup(repo, cfg)

		router := mux.NewRouter()

		// Маршрут для проверки состояния сервера (открытый, без JWT)
		router.HandleFunc("/api/Service/status", controllers.HealthCheck).Methods(http.MethodGet)

		apiRouter := router.PathPrefix("/api").Subrouter()
		if cfg.Auth.Enabled() {
			// Маршрут аутентификации (открытый)
			router.HandleFunc("/api/auth/login", controllers.LoginHandler).Methods(http.MethodPost)
			apiRouter.Use(middleware.JWTMiddleware)
			log.S.Info("Защита API включена: требуется JWT")
		} else {
			log.S.Info("Пароль не задан: API открыт (локальный режим)")
		}

		// Маршруты для заметок
		// GET /api/notes - получить список, POST /api/notes - создать заметку
		apiRouter.HandleFunc("/notes", controllers.NotesCollectionHandler).Methods(http.MethodGet, http.MethodPost)
		// GET /api/note?id=X - получить заметку, PUT - обновить, DELETE - удалить
		apiRouter.HandleFunc("/note", controllers.NoteItemHandler).Methods(http.MethodGet, http.MethodPut, http.MethodDelete)
		apiRouter.HandleFunc("/notes/reorder", controllers.ReorderNotesHandler).Methods(http.MethodPost)
		apiRouter.HandleFunc("/notes/watch", controllers.WatchNotesHandler).Methods(http.MethodGet)
		apiRouter.HandleFunc("/trash/empty", controllers.EmptyTrashHandler).Methods(http.MethodPost)

		// Маршруты для папок
		apiRouter.HandleFunc("/folders", controllers.FoldersCollectionHandler).Methods(http.MethodGet, http.MethodPost)
		apiRouter.HandleFunc("/folders/watch", controllers.WatchFoldersHandler).Methods(http.MethodGet)
		apiRouter.HandleFunc("/folder", controllers.FolderItemHandler).Methods(http.MethodPut, http.MethodDelete)

		// Маршруты для бэкапа
		apiRouter.HandleFunc("/backup/export", controllers.ExportBackupHandler).Methods(http.MethodGet)
		apiRouter.HandleFunc("/backup/import", controllers.ImportBackupHandler).Methods(http.MethodPost)

		log.S.Infof("Запуск сервера на %s", cfg.Server.Addr)
		return http.ListenAndServe(cfg.Server.Addr, router)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
