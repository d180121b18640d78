package usecase

import (
	"testing"

	"a_notes_go/models"
)

func TestCreateFolderIgnoresBlankName(t *testing.T) {
	r := newTestRepo(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		id, err := CreateFolder(r, name)
		if err != nil {
			t.Fatalf("пустое имя %q не должно быть ошибкой: %v", name, err)
		}
		if id != 0 {
			t.Errorf("пустое имя %q не должно создавать папку, получен ID %d", name, id)
		}
	}

	folders, err := GetFolders(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(folders) != 0 {
		t.Errorf("папок быть не должно, получено %+v", folders)
	}
}

func TestRenameFolderIgnoresBlankName(t *testing.T) {
	r := newTestRepo(t)

	id, err := CreateFolder(r, "Дела")
	if err != nil || id == 0 {
		t.Fatalf("CreateFolder: %d, %v", id, err)
	}

	if err := RenameFolder(r, models.Folder{ID: id, Name: "  "}); err != nil {
		t.Fatalf("пустое имя при переименовании молча игнорируется: %v", err)
	}

	folders, _ := GetFolders(r)
	if len(folders) != 1 || folders[0].Name != "Дела" {
		t.Errorf("имя не должно было измениться, получено %+v", folders)
	}
}

func TestDeleteFolderLeavesNotes(t *testing.T) {
	r := newTestRepo(t)

	id, err := CreateFolder(r, "Учёба")
	if err != nil {
		t.Fatal(err)
	}

	n := note("Конспект", 0)
	n.FolderID = &id
	noteID, err := CreateNote(r, n)
	if err != nil {
		t.Fatal(err)
	}

	if err := DeleteFolder(r, models.Folder{ID: id}); err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}

	got, err := GetNoteByID(r, noteID)
	if err != nil || got == nil {
		t.Fatalf("заметка должна пережить удаление папки: %+v, %v", got, err)
	}
}
