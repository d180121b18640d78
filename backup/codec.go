// Package backup сериализует полный набор папок и заметок в JSON-документ
// и восстанавливает его обратно. Идентификаторы в документе при импорте
// игнорируются — все записи вставляются заново.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"a_notes_go/models"
	"a_notes_go/pkg/log"
	"a_notes_go/repository"
)

// ErrNoData — в документе нет ни папок, ни заметок; хранилище не тронуто.
var ErrNoData = errors.New("no data found in file")

// Export снимает полный срез хранилища (включая архив и корзину),
// оборачивает его версией формата и меткой времени экспорта и пишет
// JSON-документ в w.
func Export(r *repository.Repository, w io.Writer) error {
	folders, notes, err := r.ExportAll()
	if err != nil {
		return fmt.Errorf("export: ошибка чтения хранилища: %w", err)
	}
	if folders == nil {
		folders = []models.Folder{}
	}
	if notes == nil {
		notes = []models.NoteRecord{}
	}

	doc := models.BackupData{
		Version:   models.BackupVersion,
		Timestamp: repository.NowMillis(),
		Folders:   folders,
		Notes:     notes,
	}
	if err := json.NewEncoder(w).Encode(&doc); err != nil {
		return fmt.Errorf("export: ошибка сериализации: %w", err)
	}
	log.S.Infof("Экспортировано папок: %d, заметок: %d", len(folders), len(notes))
	return nil
}

// ExportToFile пишет документ бэкапа в файл.
func ExportToFile(r *repository.Repository, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: ошибка создания файла %s: %w", path, err)
	}
	defer f.Close()
	return Export(r, f)
}

// Import разбирает документ бэкапа и дополняет им хранилище.
// Некорректный документ — ошибка, хранилище не тронуто. Документ без
// единой папки и заметки — ErrNoData, хранилище также не тронуто.
// Поле version записывается при экспорте, но здесь не проверяется —
// ветвления по версиям формата нет.
func Import(r *repository.Repository, rd io.Reader) error {
	var doc models.BackupData
	if err := json.NewDecoder(rd).Decode(&doc); err != nil {
		return fmt.Errorf("import: некорректный документ бэкапа: %w", err)
	}

	if len(doc.Folders) == 0 && len(doc.Notes) == 0 {
		return ErrNoData
	}

	if err := r.ImportAll(doc.Folders, doc.Notes); err != nil {
		return fmt.Errorf("import: ошибка восстановления: %w", err)
	}
	return nil
}

// ImportFromFile читает документ бэкапа из файла.
func ImportFromFile(r *repository.Repository, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("import: ошибка открытия файла %s: %w", path, err)
	}
	defer f.Close()
	return Import(r, f)
}
