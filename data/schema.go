package data

// Схема развивается аддитивно, как и в мобильных версиях приложения:
// базовая версия 1 не знала ни размера текста, ни папок, ни ручного
// порядка — эти поля добавлялись миграциями 2..4. Новая установка
// проходит те же шаги, что и обновление старой.
const schemaVersion = 4

// Базовая схема (версия 1).
const baseSchema = `
CREATE TABLE IF NOT EXISTS notes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL DEFAULT '',
    color INTEGER NOT NULL DEFAULT -1,
    timestamp INTEGER NOT NULL DEFAULT 0,
    isPinned INTEGER NOT NULL DEFAULT 0,
    isArchived INTEGER NOT NULL DEFAULT 0,
    isDeleted INTEGER NOT NULL DEFAULT 0
);
`

// Версия 2: размер текста.
const upgradeTextSize = `ALTER TABLE notes ADD COLUMN textSize INTEGER NOT NULL DEFAULT 16`

// Версия 3: папки. Внешний ключ на folders сознательно не объявляется:
// удаление папки оставляет ссылку в заметке нетронутой (висячей),
// заметка просто становится «вне папок» при отображении.
const upgradeFolders = `
CREATE TABLE IF NOT EXISTS folders (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);
`

const upgradeFolderID = `ALTER TABLE notes ADD COLUMN folderId INTEGER`

// Версия 4: ручной порядок.
const upgradePosition = `ALTER TABLE notes ADD COLUMN position INTEGER NOT NULL DEFAULT 0`

// GetBaseSchema возвращает SQL-схему первой версии.
func GetBaseSchema() string {
	return baseSchema
}
