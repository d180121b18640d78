package models

// BackupVersion — версия формата документа бэкапа. Записывается при
// экспорте; при импорте поле не проверяется — ветвления по версиям
// формата пока нет.
const BackupVersion = 1

// BackupData представляет полную резервную копию данных: все папки и
// все заметки, включая архивные и удалённые. Поля JSON должны
// соответствовать ранее экспортированным файлам.
type BackupData struct {
	Version   int          `json:"version"`
	Timestamp int64        `json:"timestamp"` // epoch millis момента экспорта
	Folders   []Folder     `json:"folders"`
	Notes     []NoteRecord `json:"notes"`
}
