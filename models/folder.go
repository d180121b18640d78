package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// BoolFromInt - custom type для обработки bool значений из JSON как чисел или булев.
// Старые экспортированные документы могли записывать флаги как 0/1.
type BoolFromInt bool

// UnmarshalJSON реализует custom unmarshaling для BoolFromInt.
func (b *BoolFromInt) UnmarshalJSON(data []byte) error {
	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch v := value.(type) {
	case bool:
		*b = BoolFromInt(v)
	case float64:
		*b = BoolFromInt(v != 0)
	case string:
		*b = BoolFromInt(v == "true" || v == "1")
	default:
		*b = false
	}

	return nil
}

// MarshalJSON реализует custom marshaling для BoolFromInt.
func (b BoolFromInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// Scan реализует sql.Scanner: SQLite хранит флаги как INTEGER 0/1.
func (b *BoolFromInt) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*b = false
	case bool:
		*b = BoolFromInt(v)
	case int64:
		*b = BoolFromInt(v != 0)
	case []byte:
		*b = BoolFromInt(string(v) == "1" || string(v) == "true")
	case string:
		*b = BoolFromInt(v == "1" || v == "true")
	default:
		return fmt.Errorf("BoolFromInt: неподдерживаемый тип %T", value)
	}
	return nil
}

// Value реализует driver.Valuer.
func (b BoolFromInt) Value() (driver.Value, error) {
	return bool(b), nil
}

// Folder представляет собой папку для заметок.
type Folder struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
