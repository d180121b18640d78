package data

import (
	"database/sql"
	"fmt"

	"a_notes_go/models"
	"a_notes_go/pkg/log"

	"github.com/jmoiron/sqlx"
)

// InsertFolder создает новую папку. Возвращает ID созданной папки.
func InsertFolder(folder *models.Folder) (int64, error) {
	result, err := DB.NamedExec(`INSERT INTO folders (name) VALUES (:name)`, folder)
	if err != nil {
		return 0, fmt.Errorf("InsertFolder: ошибка вставки папки: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("InsertFolder: ошибка получения LastInsertId: %w", err)
	}
	log.S.Debugf("Создана папка с ID: %d", id)
	return id, nil
}

// GetFolderByID извлекает папку по ее ID. Отсутствие записи — не ошибка.
func GetFolderByID(id int64) (*models.Folder, error) {
	folder := &models.Folder{}
	err := DB.Get(folder, `SELECT id, name FROM folders WHERE id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Папка не найдена
		}
		return nil, fmt.Errorf("GetFolderByID: ошибка получения папки ID %d: %w", id, err)
	}
	return folder, nil
}

// ListFolders извлекает все папки.
func ListFolders() ([]models.Folder, error) {
	var folders []models.Folder
	if err := DB.Select(&folders, `SELECT id, name FROM folders`); err != nil {
		return nil, fmt.Errorf("ListFolders: ошибка получения папок: %w", err)
	}
	return folders, nil
}

// UpdateFolder обновляет имя существующей папки.
func UpdateFolder(folder *models.Folder) error {
	result, err := DB.NamedExec(`UPDATE folders SET name = :name WHERE id = :id`, folder)
	if err != nil {
		return fmt.Errorf("UpdateFolder: ошибка обновления папки ID %d: %w", folder.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return sql.ErrNoRows // Не найдено для обновления
	}
	log.S.Debugf("Обновлена папка с ID: %d", folder.ID)
	return nil
}

// DeleteFolder удаляет папку. Заметки не удаляются и не переносятся:
// их folderId остаётся как есть и перестаёт разрешаться в имя.
func DeleteFolder(id int64) error {
	result, err := DB.Exec(`DELETE FROM folders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("DeleteFolder: ошибка удаления папки ID %d: %w", id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return sql.ErrNoRows // Не найдено для удаления
	}
	log.S.Debugf("Удалена папка с ID: %d", id)
	return nil
}

// insertFolderWithTx создает новую папку в рамках транзакции.
func insertFolderWithTx(tx *sqlx.Tx, folder *models.Folder) (int64, error) {
	result, err := tx.NamedExec(`INSERT INTO folders (name) VALUES (:name)`, folder)
	if err != nil {
		return 0, fmt.Errorf("insertFolderWithTx: ошибка вставки: %w", err)
	}
	newID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insertFolderWithTx: ошибка LastInsertId: %w", err)
	}
	return newID, nil
}
