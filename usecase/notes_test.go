package usecase

import (
	"testing"

	"a_notes_go/data"
	"a_notes_go/models"
	"a_notes_go/repository"
)

func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()
	if err := data.InitInMemory(); err != nil {
		t.Fatalf("не удалось открыть БД в памяти: %v", err)
	}
	t.Cleanup(func() { data.Close() })
	return repository.New()
}

func note(title string, ts int64) models.Note {
	return models.Note{NoteRecord: models.NoteRecord{
		Title:     title,
		Color:     models.DefaultColor,
		TextSize:  models.DefaultTextSize,
		Timestamp: ts,
	}}
}

func TestCreateNoteDefaults(t *testing.T) {
	r := newTestRepo(t)

	n := note("Новая", 0)
	n.IsPinned = true // флаги жизненного цикла при создании сбрасываются
	n.IsDeleted = true
	n.TextSize = 13 // вне допустимого набора
	n.ID = 77       // чужой ID отбрасывается

	id, err := CreateNote(r, n)
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if id == 77 {
		t.Error("присланный ID не должен сохраняться")
	}

	got, err := GetNoteByID(r, id)
	if err != nil || got == nil {
		t.Fatalf("GetNoteByID: %+v, %v", got, err)
	}
	if got.IsPinned || got.IsArchived || got.IsDeleted {
		t.Errorf("флаги должны быть сброшены: %+v", got.NoteRecord)
	}
	if got.TextSize != models.DefaultTextSize {
		t.Errorf("недопустимый размер текста должен заменяться на %d, получено %d", models.DefaultTextSize, got.TextSize)
	}
	if got.Timestamp == 0 {
		t.Error("временная метка не проставлена")
	}
}

func TestPinNoteToggles(t *testing.T) {
	r := newTestRepo(t)

	id, err := CreateNote(r, note("Закрепить", 0))
	if err != nil {
		t.Fatal(err)
	}
	got, _ := GetNoteByID(r, id)

	if err := PinNote(r, *got); err != nil {
		t.Fatalf("PinNote: %v", err)
	}
	got, _ = GetNoteByID(r, id)
	if !got.IsPinned {
		t.Fatal("заметка должна стать закреплённой")
	}

	if err := PinNote(r, *got); err != nil {
		t.Fatalf("повторный PinNote: %v", err)
	}
	got, _ = GetNoteByID(r, id)
	if got.IsPinned {
		t.Error("повторное переключение должно снять закрепление")
	}
}

func TestDefaultSort(t *testing.T) {
	mk := func(title string, ts int64, pinned, archived, deleted bool, pos int) models.Note {
		n := note(title, ts)
		n.IsPinned = models.BoolFromInt(pinned)
		n.IsArchived = models.BoolFromInt(archived)
		n.IsDeleted = models.BoolFromInt(deleted)
		n.Position = pos
		return n
	}

	// position задан нарочно вразнобой — главный список его игнорирует.
	input := []models.Note{
		mk("старая", 100, false, false, false, 0),
		mk("архив", 900, false, true, false, 1),
		mk("закреплённая старая", 50, true, false, false, 5),
		mk("удалённая", 950, false, false, true, 2),
		mk("новая", 800, false, false, false, 9),
		mk("закреплённая новая", 60, true, false, false, 3),
	}

	sorted := DefaultSort(input)

	want := []string{"закреплённая новая", "закреплённая старая", "новая", "старая"}
	if len(sorted) != len(want) {
		t.Fatalf("ожидалось %d заметок, получено %d", len(want), len(sorted))
	}
	for i, title := range want {
		if sorted[i].Title != title {
			t.Errorf("позиция %d: ожидалась %q, получена %q", i, title, sorted[i].Title)
		}
	}
}

func TestDefaultSortStable(t *testing.T) {
	// Одинаковые метки времени сохраняют исходный порядок.
	input := []models.Note{note("первая", 500), note("вторая", 500), note("третья", 500)}
	sorted := DefaultSort(input)
	for i, title := range []string{"первая", "вторая", "третья"} {
		if sorted[i].Title != title {
			t.Errorf("стабильность нарушена на позиции %d: %q", i, sorted[i].Title)
		}
	}
}

func TestMoveNote(t *testing.T) {
	src := []models.Note{note("a", 0), note("b", 0), note("c", 0), note("d", 0)}
	for i := range src {
		src[i].Position = i
	}

	moved := MoveNote(src, 0, 2)
	want := []string{"b", "c", "a", "d"}
	for i, title := range want {
		if moved[i].Title != title {
			t.Errorf("перенос вниз, позиция %d: ожидалась %q, получена %q", i, title, moved[i].Title)
		}
		if moved[i].Position != i {
			t.Errorf("позиция должна равняться рангу: элемент %d несёт %d", i, moved[i].Position)
		}
	}

	moved = MoveNote(src, 3, 0)
	want = []string{"d", "a", "b", "c"}
	for i, title := range want {
		if moved[i].Title != title {
			t.Errorf("перенос вверх, позиция %d: ожидалась %q, получена %q", i, title, moved[i].Title)
		}
	}

	// Исходный срез не меняется.
	for i, title := range []string{"a", "b", "c", "d"} {
		if src[i].Title != title || src[i].Position != i {
			t.Errorf("исходный срез изменён: %+v", src[i].NoteRecord)
		}
	}
}

func TestMoveNoteOutOfBounds(t *testing.T) {
	src := []models.Note{note("a", 0), note("b", 0)}
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		moved := MoveNote(src, c[0], c[1])
		if len(moved) != 2 || moved[0].Title != "a" || moved[1].Title != "b" {
			t.Errorf("индексы %v: ожидалась неизменённая копия, получено %+v", c, moved)
		}
	}
}

func TestSearchNotesThroughUsecase(t *testing.T) {
	r := newTestRepo(t)

	if _, err := CreateNote(r, note("Рецепт борща", 0)); err != nil {
		t.Fatal(err)
	}
	if _, err := CreateNote(r, note("рецепт салата", 0)); err != nil {
		t.Fatal(err)
	}

	found, err := SearchNotes(r, "Рецепт")
	if err != nil {
		t.Fatalf("SearchNotes: %v", err)
	}
	if len(found) != 1 || found[0].Title != "Рецепт борща" {
		t.Errorf("поиск регистрозависим: ожидалась одна заметка «Рецепт борща», получено %+v", found)
	}
}
