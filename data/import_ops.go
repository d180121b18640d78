package data

import (
	"fmt"

	"a_notes_go/models"
	"a_notes_go/pkg/log"
)

// ImportAll дополняет хранилище содержимым документа бэкапа. Каждая
// входящая папка вставляется как новая (чужой ID отбрасывается), по ходу
// строится карта старый ID → новый ID; каждая заметка вставляется как
// новая, её ссылка на папку переписывается через эту карту (или
// обнуляется, если исходной папки в карте нет). Существующие данные
// не очищаются — повторный импорт дублирует содержимое.
//
// Вся последовательность выполняется в одной транзакции: наполовину
// применённый импорт наблюдать нельзя.
func ImportAll(folders []models.Folder, notes []models.NoteRecord) error {
	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("ImportAll: ошибка начала транзакции: %w", err)
	}

	folderIDMap := make(map[int64]int64, len(folders))
	for _, oldFolder := range folders {
		folder := models.Folder{Name: oldFolder.Name}
		newID, err := insertFolderWithTx(tx, &folder)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("ImportAll: %w", err)
		}
		folderIDMap[oldFolder.ID] = newID
	}

	for _, oldNote := range notes {
		note := oldNote
		note.ID = 0
		note.FolderID = nil
		if oldNote.FolderID != nil {
			if newID, ok := folderIDMap[*oldNote.FolderID]; ok {
				note.FolderID = &newID
			}
		}
		if _, err := insertNoteWithTx(tx, &note); err != nil {
			tx.Rollback()
			return fmt.Errorf("ImportAll: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ImportAll: ошибка фиксации транзакции: %w", err)
	}
	log.S.Infof("Импортировано папок: %d, заметок: %d", len(folders), len(notes))
	return nil
}
