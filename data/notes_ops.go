package data

import (
	"database/sql"
	"fmt"

	"a_notes_go/models"
	"a_notes_go/pkg/log"

	"github.com/jmoiron/sqlx"
)

const noteColumns = `id, title, content, color, textSize, timestamp, isPinned, isArchived, isDeleted, folderId, position`

// InsertNote создает новую заметку и возвращает присвоенный ID.
func InsertNote(note *models.NoteRecord) (int64, error) {
	query := `INSERT INTO notes (title, content, color, textSize, timestamp, isPinned, isArchived, isDeleted, folderId, position)
	          VALUES (:title, :content, :color, :textSize, :timestamp, :isPinned, :isArchived, :isDeleted, :folderId, :position)`

	result, err := DB.NamedExec(query, note)
	if err != nil {
		return 0, fmt.Errorf("InsertNote: ошибка вставки заметки: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("InsertNote: ошибка получения LastInsertId: %w", err)
	}
	log.S.Debugf("Создана заметка с ID: %d", id)
	return id, nil
}

// ReplaceNote полностью заменяет запись по её ID. Семантика хранилища —
// «вставить или заменить по идентичности»: запись с незанятым ID будет
// вставлена, строгого update-only здесь нет.
func ReplaceNote(note *models.NoteRecord) error {
	query := `INSERT OR REPLACE INTO notes (` + noteColumns + `)
	          VALUES (:id, :title, :content, :color, :textSize, :timestamp, :isPinned, :isArchived, :isDeleted, :folderId, :position)`

	if _, err := DB.NamedExec(query, note); err != nil {
		return fmt.Errorf("ReplaceNote: ошибка замены заметки ID %d: %w", note.ID, err)
	}
	log.S.Debugf("Обновлена заметка с ID: %d", note.ID)
	return nil
}

// GetNoteByID извлекает заметку по ее ID. Отсутствие записи — не ошибка.
func GetNoteByID(id int64) (*models.NoteRecord, error) {
	note := &models.NoteRecord{}
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = ?`
	err := DB.Get(note, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Не найдено
		}
		return nil, fmt.Errorf("GetNoteByID: ошибка получения заметки ID %d: %w", id, err)
	}
	return note, nil
}

// ListActiveNotes извлекает все не удалённые заметки: закреплённые
// впереди, внутри групп — по ручному порядку.
func ListActiveNotes() ([]models.NoteRecord, error) {
	var notes []models.NoteRecord
	query := `SELECT ` + noteColumns + ` FROM notes WHERE isDeleted = 0 ORDER BY isPinned DESC, position ASC`
	if err := DB.Select(&notes, query); err != nil {
		return nil, fmt.Errorf("ListActiveNotes: ошибка получения заметок: %w", err)
	}
	return notes, nil
}

// ListArchivedNotes извлекает архивные (и не удалённые) заметки.
func ListArchivedNotes() ([]models.NoteRecord, error) {
	var notes []models.NoteRecord
	query := `SELECT ` + noteColumns + ` FROM notes WHERE isArchived = 1 AND isDeleted = 0`
	if err := DB.Select(&notes, query); err != nil {
		return nil, fmt.Errorf("ListArchivedNotes: ошибка получения заметок: %w", err)
	}
	return notes, nil
}

// ListDeletedNotes извлекает содержимое корзины.
func ListDeletedNotes() ([]models.NoteRecord, error) {
	var notes []models.NoteRecord
	query := `SELECT ` + noteColumns + ` FROM notes WHERE isDeleted = 1`
	if err := DB.Select(&notes, query); err != nil {
		return nil, fmt.Errorf("ListDeletedNotes: ошибка получения заметок: %w", err)
	}
	return notes, nil
}

// ListNotesByFolder извлекает активные заметки папки в ручном порядке.
func ListNotesByFolder(folderID int64) ([]models.NoteRecord, error) {
	var notes []models.NoteRecord
	query := `SELECT ` + noteColumns + ` FROM notes WHERE folderId = ? AND isDeleted = 0 AND isArchived = 0 ORDER BY position ASC`
	if err := DB.Select(&notes, query, folderID); err != nil {
		return nil, fmt.Errorf("ListNotesByFolder: ошибка получения заметок папки %d: %w", folderID, err)
	}
	return notes, nil
}

// SearchNotes ищет регистрозависимое вхождение подстроки в заголовке или
// тексте. LIKE в SQLite не учитывает регистр для ASCII, поэтому instr.
// Область поиска — только активные заметки: ни корзина, ни архив не
// попадают в результаты.
func SearchNotes(query string) ([]models.NoteRecord, error) {
	var notes []models.NoteRecord
	q := `SELECT ` + noteColumns + ` FROM notes
	      WHERE (instr(title, ?) > 0 OR instr(content, ?) > 0) AND isDeleted = 0 AND isArchived = 0`
	if err := DB.Select(&notes, q, query, query); err != nil {
		return nil, fmt.Errorf("SearchNotes: ошибка поиска по запросу %q: %w", query, err)
	}
	return notes, nil
}

// ListAllNotes извлекает абсолютно все заметки (для экспорта).
func ListAllNotes() ([]models.NoteRecord, error) {
	var notes []models.NoteRecord
	query := `SELECT ` + noteColumns + ` FROM notes`
	if err := DB.Select(&notes, query); err != nil {
		return nil, fmt.Errorf("ListAllNotes: ошибка получения заметок: %w", err)
	}
	return notes, nil
}

// DeleteNoteByID физически удаляет заметку.
func DeleteNoteByID(id int64) error {
	result, err := DB.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("DeleteNoteByID: ошибка удаления заметки ID %d: %w", id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return sql.ErrNoRows // Не найдено для удаления
	}
	log.S.Debugf("Удалена заметка с ID: %d", id)
	return nil
}

// EmptyTrash физически удаляет все заметки с isDeleted=1 одной операцией.
// Возвращает число удалённых строк.
func EmptyTrash() (int64, error) {
	result, err := DB.Exec(`DELETE FROM notes WHERE isDeleted = 1`)
	if err != nil {
		return 0, fmt.Errorf("EmptyTrash: ошибка очистки корзины: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	log.S.Debugf("Корзина очищена, удалено заметок: %d", rowsAffected)
	return rowsAffected, nil
}

// ReorderNotes заменяет записи всего набора в одной транзакции: либо
// новый порядок сохраняется целиком, либо не сохраняется вовсе —
// частичное применение испортило бы относительный порядок.
func ReorderNotes(notes []models.NoteRecord) error {
	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("ReorderNotes: ошибка начала транзакции: %w", err)
	}
	for i := range notes {
		if err := replaceNoteWithTx(tx, &notes[i]); err != nil {
			tx.Rollback()
			return fmt.Errorf("ReorderNotes: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ReorderNotes: ошибка фиксации транзакции: %w", err)
	}
	return nil
}

// --- Функции, работающие с транзакциями ---

// insertNoteWithTx создает новую заметку в рамках транзакции.
func insertNoteWithTx(tx *sqlx.Tx, note *models.NoteRecord) (int64, error) {
	query := `INSERT INTO notes (title, content, color, textSize, timestamp, isPinned, isArchived, isDeleted, folderId, position)
	          VALUES (:title, :content, :color, :textSize, :timestamp, :isPinned, :isArchived, :isDeleted, :folderId, :position)`
	result, err := tx.NamedExec(query, note)
	if err != nil {
		return 0, fmt.Errorf("insertNoteWithTx: ошибка вставки: %w", err)
	}
	newID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insertNoteWithTx: ошибка LastInsertId: %w", err)
	}
	return newID, nil
}

// replaceNoteWithTx заменяет запись по ID в рамках транзакции.
func replaceNoteWithTx(tx *sqlx.Tx, note *models.NoteRecord) error {
	query := `INSERT OR REPLACE INTO notes (` + noteColumns + `)
	          VALUES (:id, :title, :content, :color, :textSize, :timestamp, :isPinned, :isArchived, :isDeleted, :folderId, :position)`
	if _, err := tx.NamedExec(query, note); err != nil {
		return fmt.Errorf("replaceNoteWithTx: ошибка замены ID %d: %w", note.ID, err)
	}
	return nil
}
