package usecase

import (
	"strings"

	"a_notes_go/models"
	"a_notes_go/repository"
)

// CreateFolder создаёт папку с указанным именем. Пустое (или состоящее
// из пробелов) имя молча игнорируется — папка не создаётся, ошибки нет.
func CreateFolder(r *repository.Repository, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, nil
	}
	return r.CreateFolder(models.Folder{Name: name})
}

// GetFolders возвращает все папки.
func GetFolders(r *repository.Repository) ([]models.Folder, error) {
	return r.ListFolders()
}

// RenameFolder обновляет имя папки; пустое имя игнорируется.
func RenameFolder(r *repository.Repository, folder models.Folder) error {
	if strings.TrimSpace(folder.Name) == "" {
		return nil
	}
	return r.RenameFolder(folder)
}

// DeleteFolder удаляет папку без каскада по заметкам.
func DeleteFolder(r *repository.Repository, folder models.Folder) error {
	return r.DeleteFolder(folder)
}
