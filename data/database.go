package data

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"a_notes_go/pkg/log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // Драйвер SQLite, импортируется для побочных эффектов (регистрации драйвера)
)

var DB *sqlx.DB // Глобальная переменная для пула подключений к БД

const defaultDbName = "ANotes.db"

// DefaultPath определяет путь к файлу БД: текущая рабочая директория.
// Это наиболее предсказуемо и при `go run`, и когда собранный бинарник
// лежит в корне проекта.
func DefaultPath() (string, error) {
	currentWorkDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	return filepath.Join(currentWorkDir, defaultDbName), nil
}

// Init инициализирует подключение к базе данных SQLite и приводит схему
// к актуальной версии.
func Init(dataSourceName string) error {
	var err error
	DB, err = sqlx.Connect("sqlite3", dataSourceName)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// БД в памяти живёт в рамках одного соединения: пул из нескольких
	// соединений увидел бы разные пустые базы.
	if strings.Contains(dataSourceName, ":memory:") {
		DB.SetMaxOpenConns(1)
	}

	if err = DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	log.S.Infof("Successfully connected to the database (%s).", dataSourceName)

	if _, err = DB.Exec(GetBaseSchema()); err != nil {
		return fmt.Errorf("failed to execute base schema: %w", err)
	}

	if err = EnsureSchemaUpgrade(); err != nil {
		return fmt.Errorf("failed to upgrade schema: %w", err)
	}
	log.S.Info("Database schema applied successfully.")

	return nil
}

// InitInMemory открывает чистую БД в памяти (используется в тестах).
func InitInMemory() error {
	return Init(":memory:")
}

// Close закрывает подключение к БД.
func Close() error {
	if DB == nil {
		return nil
	}
	err := DB.Close()
	DB = nil
	return err
}

// columnExists проверяет наличие колонки в таблице.
func columnExists(table, column string) (bool, error) {
	var exists bool
	err := DB.Get(&exists, `
		SELECT COUNT(*) > 0
		FROM pragma_table_info(?)
		WHERE name = ?
	`, table, column)
	if err != nil {
		return false, fmt.Errorf("ошибка проверки колонки %s.%s: %w", table, column, err)
	}
	return exists, nil
}

// EnsureSchemaUpgrade добавляет недостающие поля и таблицы, повторяя
// исторические миграции, и фиксирует версию схемы в user_version.
func EnsureSchemaUpgrade() error {
	// Версия 2: textSize
	hasTextSize, err := columnExists("notes", "textSize")
	if err != nil {
		return err
	}
	if !hasTextSize {
		if _, err = DB.Exec(upgradeTextSize); err != nil {
			return fmt.Errorf("failed to add textSize column: %w", err)
		}
		log.S.Info("Добавлена колонка textSize в таблицу notes")
	}

	// Версия 3: folders + folderId
	if _, err = DB.Exec(upgradeFolders); err != nil {
		return fmt.Errorf("failed to create folders table: %w", err)
	}
	hasFolderID, err := columnExists("notes", "folderId")
	if err != nil {
		return err
	}
	if !hasFolderID {
		if _, err = DB.Exec(upgradeFolderID); err != nil {
			return fmt.Errorf("failed to add folderId column: %w", err)
		}
		log.S.Info("Добавлена колонка folderId в таблицу notes")
	}

	// Версия 4: position
	hasPosition, err := columnExists("notes", "position")
	if err != nil {
		return err
	}
	if !hasPosition {
		if _, err = DB.Exec(upgradePosition); err != nil {
			return fmt.Errorf("failed to add position column: %w", err)
		}
		log.S.Info("Добавлена колонка position в таблицу notes")
	}

	if _, err = DB.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}
