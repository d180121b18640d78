// Package state содержит держатели состояния экранов: машины
// loading/success/error, перевод намерений пользователя в вызовы
// репозитория и оптимистичную локальную перестановку до записи в
// хранилище.
package state

import "a_notes_go/models"

// Status — фаза состояния списка.
type Status string

const (
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ListState — видимое UI состояние экрана со списком заметок.
type ListState struct {
	Status       Status        `json:"status"`
	Notes        []models.Note `json:"notes,omitempty"`
	SearchActive bool          `json:"searchActive,omitempty"`
	SearchQuery  string        `json:"searchQuery,omitempty"`
	Message      string        `json:"message,omitempty"` // текст ошибки при StatusError
}

// FoldersState — видимое UI состояние набора папок (ящик навигации).
type FoldersState struct {
	Status  Status          `json:"status"`
	Folders []models.Folder `json:"folders,omitempty"`
	Message string          `json:"message,omitempty"`
}
