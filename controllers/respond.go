package controllers

import (
	"encoding/json"
	"net/http"

	"a_notes_go/config"
	"a_notes_go/repository"
)

// Пакетные зависимости контроллеров; задаются один раз при старте.
var (
	repo *repository.Repository
	cfg  *config.Config
)

// Setup связывает контроллеры с репозиторием и конфигурацией.
func Setup(r *repository.Repository, c *config.Config) {
	repo = r
	cfg = c
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
