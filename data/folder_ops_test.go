package data

import (
	"database/sql"
	"errors"
	"testing"

	"a_notes_go/models"
)

func TestFolderLifecycle(t *testing.T) {
	newTestDB(t)

	id, err := InsertFolder(&models.Folder{Name: "Личное"})
	if err != nil {
		t.Fatalf("InsertFolder: %v", err)
	}

	got, err := GetFolderByID(id)
	if err != nil || got == nil {
		t.Fatalf("GetFolderByID: %+v, %v", got, err)
	}
	if got.Name != "Личное" {
		t.Errorf("имя папки %q, ожидалось «Личное»", got.Name)
	}

	if err := UpdateFolder(&models.Folder{ID: id, Name: "Дом"}); err != nil {
		t.Fatalf("UpdateFolder: %v", err)
	}
	got, _ = GetFolderByID(id)
	if got.Name != "Дом" {
		t.Errorf("после переименования имя %q, ожидалось «Дом»", got.Name)
	}

	if err := UpdateFolder(&models.Folder{ID: 777, Name: "Нет"}); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("обновление несуществующей папки: ожидался sql.ErrNoRows, получено %v", err)
	}

	if err := DeleteFolder(id); err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}
	if err := DeleteFolder(id); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("повторное удаление: ожидался sql.ErrNoRows, получено %v", err)
	}
}

func TestDeleteFolderKeepsDanglingNotes(t *testing.T) {
	newTestDB(t)

	folderID, err := InsertFolder(&models.Folder{Name: "Проекты"})
	if err != nil {
		t.Fatal(err)
	}
	n := sampleNote("В папке", "")
	n.FolderID = &folderID
	noteID, err := InsertNote(n)
	if err != nil {
		t.Fatal(err)
	}

	if err := DeleteFolder(folderID); err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}

	// Заметка не удаляется и сохраняет осиротевшую ссылку.
	got, err := GetNoteByID(noteID)
	if err != nil || got == nil {
		t.Fatalf("заметка должна пережить удаление папки: %+v, %v", got, err)
	}
	if got.FolderID == nil || *got.FolderID != folderID {
		t.Errorf("folderId должен остаться %d, получено %v", folderID, got.FolderID)
	}
}

func TestImportAllRemapsFolderIDs(t *testing.T) {
	newTestDB(t)

	// Существующие данные, которые импорт не должен трогать.
	existingFolder, err := InsertFolder(&models.Folder{Name: "Старая"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := InsertNote(sampleNote("Старая заметка", "")); err != nil {
		t.Fatal(err)
	}

	// В документе папка несёт чужой ID; заметки ссылаются на него и на
	// заведомо неизвестный ID.
	docFolderID := int64(500)
	unknownID := int64(999)
	inFolder := *sampleNote("Импорт в папке", "")
	inFolder.FolderID = &docFolderID
	orphan := *sampleNote("Импорт без папки", "")
	orphan.FolderID = &unknownID

	err = ImportAll(
		[]models.Folder{{ID: docFolderID, Name: "Импортированная"}},
		[]models.NoteRecord{inFolder, orphan},
	)
	if err != nil {
		t.Fatalf("ImportAll: %v", err)
	}

	folders, err := ListFolders()
	if err != nil {
		t.Fatal(err)
	}
	if len(folders) != 2 {
		t.Fatalf("ожидалось 2 папки, получено %d", len(folders))
	}
	var newFolderID int64
	for _, f := range folders {
		if f.Name == "Импортированная" {
			newFolderID = f.ID
		}
	}
	if newFolderID == 0 || newFolderID == docFolderID {
		t.Fatalf("папке должен быть присвоен новый локальный ID, получено %d", newFolderID)
	}
	if newFolderID == existingFolder {
		t.Fatalf("импортированная папка совпала с существующей")
	}

	all, err := ListAllNotes()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("ожидалось 3 заметки, получено %d", len(all))
	}
	for _, n := range all {
		switch n.Title {
		case "Импорт в папке":
			if n.FolderID == nil || *n.FolderID != newFolderID {
				t.Errorf("ссылка на папку должна быть переписана на %d, получено %v", newFolderID, n.FolderID)
			}
		case "Импорт без папки":
			if n.FolderID != nil {
				t.Errorf("ссылка на неизвестную папку должна обнуляться, получено %v", *n.FolderID)
			}
		}
	}

	// Повторный импорт дополняет, а не заменяет.
	if err := ImportAll(nil, []models.NoteRecord{inFolder}); err != nil {
		t.Fatalf("повторный ImportAll: %v", err)
	}
	all, _ = ListAllNotes()
	if len(all) != 4 {
		t.Errorf("после повторного импорта ожидалось 4 заметки, получено %d", len(all))
	}
}
