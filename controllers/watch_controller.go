package controllers

import (
	"context"
	"net/http"

	"a_notes_go/pkg/log"
	"a_notes_go/state"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// Локальный однопользовательский сервер: происхождение не проверяем.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WatchNotesHandler — websocket-поток состояний главного списка:
// клиент получает свежее состояние при подключении и после каждого
// изменения заметок или папок. Поисковый запрос можно задать
// параметром q при подключении.
func WatchNotesHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.S.Errorf("WatchNotesHandler: ошибка апгрейда: %v", err)
		return
	}
	clientID := uuid.New().String()
	log.S.Infof("Подключен наблюдатель списка: %s", clientID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	defer conn.Close()

	holder := state.NewNotesList(repo)
	holder.Start(ctx)
	if q := r.URL.Query().Get("q"); q != "" {
		holder.SetSearchQuery(q)
	}

	// Читающий насос: замечает закрытие соединения клиентом.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.S.Infof("Отключен наблюдатель списка: %s", clientID)
			return
		case st := <-holder.Updates():
			if err := conn.WriteJSON(st); err != nil {
				log.S.Warnf("WatchNotesHandler: ошибка записи для %s: %v", clientID, err)
				return
			}
		}
	}
}

// WatchFoldersHandler — websocket-поток состояний набора папок:
// клиент (ящик навигации) получает свежий набор при подключении и
// после каждого создания, переименования или удаления папки.
func WatchFoldersHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.S.Errorf("WatchFoldersHandler: ошибка апгрейда: %v", err)
		return
	}
	clientID := uuid.New().String()
	log.S.Infof("Подключен наблюдатель папок: %s", clientID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	defer conn.Close()

	holder := state.NewFoldersList(repo)
	holder.Start(ctx)

	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.S.Infof("Отключен наблюдатель папок: %s", clientID)
			return
		case st := <-holder.Updates():
			if err := conn.WriteJSON(st); err != nil {
				log.S.Warnf("WatchFoldersHandler: ошибка записи для %s: %v", clientID, err)
				return
			}
		}
	}
}
