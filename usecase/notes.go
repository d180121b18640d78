// Package usecase содержит по одной небольшой операции на каждое
// действие пользователя. Состояния у операций нет — только оркестрация
// вызовов репозитория.
package usecase

import (
	"sort"

	"a_notes_go/models"
	"a_notes_go/repository"
)

// CreateNote сохраняет новую заметку с нулевыми флагами жизненного
// цикла и текущей временной меткой. Возвращает присвоенный ID.
func CreateNote(r *repository.Repository, note models.Note) (int64, error) {
	note.ID = 0
	note.IsPinned = false
	note.IsArchived = false
	note.IsDeleted = false
	note.Position = 0
	if note.Timestamp == 0 {
		note.Timestamp = repository.NowMillis()
	}
	if !models.ValidTextSize(note.TextSize) {
		note.TextSize = models.DefaultTextSize
	}
	return r.Insert(note)
}

// UpdateNote заменяет запись целиком, обновляя временную метку.
func UpdateNote(r *repository.Repository, note models.Note) error {
	note.Timestamp = repository.NowMillis()
	return r.Update(note)
}

// PinNote переключает флаг закрепления.
func PinNote(r *repository.Repository, note models.Note) error {
	note.IsPinned = !note.IsPinned
	return r.Update(note)
}

// ArchiveNote переключает флаг архива.
func ArchiveNote(r *repository.Repository, note models.Note) error {
	note.IsArchived = !note.IsArchived
	return r.Update(note)
}

// SoftDeleteNote помечает заметку удалённой (первая стадия удаления).
func SoftDeleteNote(r *repository.Repository, note models.Note) error {
	return r.SoftDelete(note)
}

// GetNoteByID возвращает заметку или nil, если её нет.
func GetNoteByID(r *repository.Repository, id int64) (*models.Note, error) {
	return r.GetByID(id)
}

// GetNotes возвращает главный список: архивные и удалённые отсекаются
// ещё раз (выборка их уже исключает, но слой перестраховывается),
// закреплённые впереди, внутри групп — по убыванию временной метки.
// Ручной position здесь сознательно игнорируется: он управляет только
// списками с перетаскиванием.
func GetNotes(r *repository.Repository) ([]models.Note, error) {
	notes, err := r.ListActive()
	if err != nil {
		return nil, err
	}
	return DefaultSort(notes), nil
}

// DefaultSort применяет порядок главного списка к произвольному набору.
func DefaultSort(notes []models.Note) []models.Note {
	filtered := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if !bool(n.IsDeleted) && !bool(n.IsArchived) {
			filtered = append(filtered, n)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].IsPinned != filtered[j].IsPinned {
			return bool(filtered[i].IsPinned)
		}
		return filtered[i].Timestamp > filtered[j].Timestamp
	})
	return filtered
}

// GetNotesByFolder возвращает активные заметки папки в ручном порядке.
func GetNotesByFolder(r *repository.Repository, folderID int64) ([]models.Note, error) {
	return r.ListByFolder(folderID)
}

// SearchNotes возвращает активные заметки с вхождением подстроки.
func SearchNotes(r *repository.Repository, query string) ([]models.Note, error) {
	return r.Search(query)
}

// MoveNote — чистый алгоритм перестановки: элемент с fromIndex
// извлекается, вставляется на toIndex, после чего каждой заметке
// последовательности присваивается position, равный её новому
// 0-базному рангу. Исходный срез не меняется.
func MoveNote(notes []models.Note, fromIndex, toIndex int) []models.Note {
	moved := make([]models.Note, len(notes))
	copy(moved, notes)
	if fromIndex < 0 || fromIndex >= len(moved) || toIndex < 0 || toIndex >= len(moved) {
		return moved
	}

	item := moved[fromIndex]
	moved = append(moved[:fromIndex], moved[fromIndex+1:]...)
	rest := make([]models.Note, 0, len(notes))
	rest = append(rest, moved[:toIndex]...)
	rest = append(rest, item)
	rest = append(rest, moved[toIndex:]...)

	for i := range rest {
		rest[i].Position = i
	}
	return rest
}

// ReorderNotes сохраняет пересчитанный порядок одной атомарной записью.
func ReorderNotes(r *repository.Repository, notes []models.Note) error {
	return r.Reorder(notes)
}

// EmptyTrash физически удаляет всё содержимое корзины.
func EmptyTrash(r *repository.Repository) (int64, error) {
	return r.EmptyTrash()
}
