package models

// DefaultColor — упакованный ARGB 0xFFFFFFFF («использовать цвет темы»).
// В знаковом 32-битном представлении это -1, так значение и хранится,
// чтобы ранее экспортированные документы читались без преобразований.
const DefaultColor int32 = -1

// DefaultTextSize — размер текста по умолчанию (пункты).
const DefaultTextSize = 16

// TextSizes — допустимый набор размеров текста заметки.
var TextSizes = []int{12, 14, 16, 18, 20, 24}

// ValidTextSize проверяет, входит ли размер в допустимый набор.
func ValidTextSize(size int) bool {
	for _, s := range TextSizes {
		if s == size {
			return true
		}
	}
	return false
}

// NoteRecord — строка таблицы notes. Поля JSON должны в точности
// совпадать со схемой документа бэкапа — менять имена нельзя.
type NoteRecord struct {
	ID         int64       `json:"id" db:"id"`
	Title      string      `json:"title" db:"title"`
	Content    string      `json:"content" db:"content"`
	Color      int32       `json:"color" db:"color"`
	TextSize   int         `json:"textSize" db:"textSize"`
	Timestamp  int64       `json:"timestamp" db:"timestamp"` // epoch millis
	IsPinned   BoolFromInt `json:"isPinned" db:"isPinned"`
	IsArchived BoolFromInt `json:"isArchived" db:"isArchived"`
	IsDeleted  BoolFromInt `json:"isDeleted" db:"isDeleted"`
	FolderID   *int64      `json:"folderId" db:"folderId"` // nil = вне папок
	Position   int         `json:"position" db:"position"`
}

// Note — доменная заметка: запись хранилища плюс отображаемое имя папки.
// Имя папки никогда не сохраняется — оно каждый раз выводится заново
// по текущему набору папок.
type Note struct {
	NoteRecord
	FolderName *string `json:"folderName,omitempty" db:"-"`
}

// Record возвращает запись для хранилища, отбрасывая имя папки.
func (n Note) Record() NoteRecord {
	return n.NoteRecord
}
