package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"a_notes_go/models"
	"a_notes_go/pkg/log"
	"a_notes_go/usecase"
)

// NotesCollectionHandler обрабатывает GET /api/notes и POST /api/notes.
//
// GET без параметров возвращает главный список (закреплённые впереди,
// далее по убыванию метки времени). Параметры:
//
//	filter=archived|deleted — архив или корзина
//	folder_id=X             — активные заметки папки в ручном порядке
//	q=подстрока             — регистрозависимый поиск по активным
//
// Пустой q не вызывает поиск — возвращается нефильтрованный список.
func NotesCollectionHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		listNotes(w, r)
	case http.MethodPost:
		createNote(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "Метод не разрешен.")
	}
}

func listNotes(w http.ResponseWriter, r *http.Request) {
	var (
		notes []models.Note
		err   error
	)

	q := r.URL.Query()
	switch {
	case q.Get("q") != "":
		notes, err = usecase.SearchNotes(repo, q.Get("q"))
	case q.Get("folder_id") != "":
		var folderID int64
		folderID, err = strconv.ParseInt(q.Get("folder_id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Неверный folder_id.")
			return
		}
		notes, err = usecase.GetNotesByFolder(repo, folderID)
	case q.Get("filter") == "archived":
		notes, err = repo.ListArchived()
	case q.Get("filter") == "deleted":
		notes, err = repo.ListDeleted()
	default:
		notes, err = usecase.GetNotes(repo)
	}

	if err != nil {
		log.S.Errorf("listNotes: %v", err)
		respondError(w, http.StatusInternalServerError, "Не удалось получить заметки: "+err.Error())
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}
	respondJSON(w, http.StatusOK, notes)
}

func createNote(w http.ResponseWriter, r *http.Request) {
	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса: "+err.Error())
		return
	}
	defer r.Body.Close()

	id, err := usecase.CreateNote(repo, note)
	if err != nil {
		log.S.Errorf("createNote: %v", err)
		respondError(w, http.StatusInternalServerError, "Не удалось создать заметку: "+err.Error())
		return
	}

	created, err := usecase.GetNoteByID(repo, id)
	if err != nil || created == nil {
		respondJSON(w, http.StatusCreated, map[string]int64{"id": id})
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// NoteItemHandler обрабатывает GET/PUT/DELETE /api/note?id=X.
//
// DELETE помечает заметку удалённой (корзина); с параметром permanent=1
// строка удаляется физически.
func NoteItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Параметр id обязателен и должен быть числом.")
		return
	}

	switch r.Method {
	case http.MethodGet:
		note, err := usecase.GetNoteByID(repo, id)
		if err != nil {
			log.S.Errorf("NoteItemHandler: %v", err)
			respondError(w, http.StatusInternalServerError, "Не удалось получить заметку: "+err.Error())
			return
		}
		if note == nil {
			respondError(w, http.StatusNotFound, "Заметка не найдена.")
			return
		}
		respondJSON(w, http.StatusOK, note)

	case http.MethodPut:
		var note models.Note
		if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
			respondError(w, http.StatusBadRequest, "Неверный формат запроса: "+err.Error())
			return
		}
		defer r.Body.Close()

		note.ID = id
		if err := usecase.UpdateNote(repo, note); err != nil {
			log.S.Errorf("NoteItemHandler: %v", err)
			respondError(w, http.StatusInternalServerError, "Не удалось обновить заметку: "+err.Error())
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})

	case http.MethodDelete:
		note, err := usecase.GetNoteByID(repo, id)
		if err != nil {
			log.S.Errorf("NoteItemHandler: %v", err)
			respondError(w, http.StatusInternalServerError, "Не удалось получить заметку: "+err.Error())
			return
		}
		if note == nil {
			respondError(w, http.StatusNotFound, "Заметка не найдена.")
			return
		}

		if r.URL.Query().Get("permanent") == "1" {
			err = repo.Purge(*note)
		} else {
			err = usecase.SoftDeleteNote(repo, *note)
		}
		if err != nil {
			log.S.Errorf("NoteItemHandler: %v", err)
			respondError(w, http.StatusInternalServerError, "Не удалось удалить заметку: "+err.Error())
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	default:
		respondError(w, http.StatusMethodNotAllowed, "Метод не разрешен.")
	}
}

// ReorderNotesHandler принимает полный упорядоченный набор заметок и
// сохраняет его как новый ручной порядок: позиция каждой заметки
// равна её рангу в присланной последовательности. Набор применяется
// атомарно.
func ReorderNotesHandler(w http.ResponseWriter, r *http.Request) {
	var notes []models.Note
	if err := json.NewDecoder(r.Body).Decode(&notes); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса: "+err.Error())
		return
	}
	defer r.Body.Close()

	for i := range notes {
		notes[i].Position = i
	}
	if err := usecase.ReorderNotes(repo, notes); err != nil {
		log.S.Errorf("ReorderNotesHandler: %v", err)
		respondError(w, http.StatusInternalServerError, "Не удалось сохранить порядок: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "reordered"})
}

// EmptyTrashHandler физически удаляет все заметки корзины.
func EmptyTrashHandler(w http.ResponseWriter, r *http.Request) {
	n, err := usecase.EmptyTrash(repo)
	if err != nil {
		log.S.Errorf("EmptyTrashHandler: %v", err)
		respondError(w, http.StatusInternalServerError, "Не удалось очистить корзину: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"removed": n})
}
