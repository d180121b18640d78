package controllers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"a_notes_go/models"
	"a_notes_go/pkg/log"
	"a_notes_go/usecase"
)

// FoldersCollectionHandler обрабатывает GET /api/folders и POST /api/folders.
func FoldersCollectionHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		folders, err := usecase.GetFolders(repo)
		if err != nil {
			log.S.Errorf("FoldersCollectionHandler: %v", err)
			respondError(w, http.StatusInternalServerError, "Не удалось получить папки: "+err.Error())
			return
		}
		if folders == nil {
			folders = []models.Folder{}
		}
		respondJSON(w, http.StatusOK, folders)

	case http.MethodPost:
		var folder models.Folder
		if err := json.NewDecoder(r.Body).Decode(&folder); err != nil {
			respondError(w, http.StatusBadRequest, "Неверный формат запроса: "+err.Error())
			return
		}
		defer r.Body.Close()

		id, err := usecase.CreateFolder(repo, folder.Name)
		if err != nil {
			log.S.Errorf("FoldersCollectionHandler: %v", err)
			respondError(w, http.StatusInternalServerError, "Не удалось создать папку: "+err.Error())
			return
		}
		if id == 0 {
			// Пустое имя: папка молча не создаётся.
			respondJSON(w, http.StatusOK, map[string]string{"status": "ignored"})
			return
		}
		respondJSON(w, http.StatusCreated, models.Folder{ID: id, Name: folder.Name})

	default:
		respondError(w, http.StatusMethodNotAllowed, "Метод не разрешен.")
	}
}

// FolderItemHandler обрабатывает PUT/DELETE /api/folder?id=X.
// Удаление не каскадирует: заметки папки остаются с висячей ссылкой.
func FolderItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Параметр id обязателен и должен быть числом.")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var folder models.Folder
		if err := json.NewDecoder(r.Body).Decode(&folder); err != nil {
			respondError(w, http.StatusBadRequest, "Неверный формат запроса: "+err.Error())
			return
		}
		defer r.Body.Close()

		folder.ID = id
		if err := usecase.RenameFolder(repo, folder); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respondError(w, http.StatusNotFound, "Папка не найдена.")
				return
			}
			log.S.Errorf("FolderItemHandler: %v", err)
			respondError(w, http.StatusInternalServerError, "Не удалось переименовать папку: "+err.Error())
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})

	case http.MethodDelete:
		if err := usecase.DeleteFolder(repo, models.Folder{ID: id}); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respondError(w, http.StatusNotFound, "Папка не найдена.")
				return
			}
			log.S.Errorf("FolderItemHandler: %v", err)
			respondError(w, http.StatusInternalServerError, "Не удалось удалить папку: "+err.Error())
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	default:
		respondError(w, http.StatusMethodNotAllowed, "Метод не разрешен.")
	}
}
