package models

import (
	"encoding/json"
	"testing"
)

func TestBoolFromIntUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`1`, true},
		{`0`, false},
		{`"true"`, true},
		{`"1"`, true},
		{`"0"`, false},
		{`null`, false},
	}
	for _, c := range cases {
		var b BoolFromInt
		if err := json.Unmarshal([]byte(c.in), &b); err != nil {
			t.Errorf("%s: %v", c.in, err)
			continue
		}
		if bool(b) != c.want {
			t.Errorf("%s: получено %v, ожидалось %v", c.in, bool(b), c.want)
		}
	}
}

func TestNoteRecordJSONRoundTrip(t *testing.T) {
	folderID := int64(3)
	rec := NoteRecord{
		ID:        5,
		Title:     "Заметка",
		Content:   "текст",
		Color:     DefaultColor,
		TextSize:  20,
		Timestamp: 1700000000000,
		IsPinned:  true,
		FolderID:  &folderID,
		Position:  2,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}

	// Старый документ с числовыми флагами читается так же, как новый.
	legacy := `{"id":5,"title":"Заметка","content":"текст","color":-1,"textSize":20,` +
		`"timestamp":1700000000000,"isPinned":1,"isArchived":0,"isDeleted":0,"folderId":3,"position":2}`

	for _, doc := range []string{string(data), legacy} {
		var got NoteRecord
		if err := json.Unmarshal([]byte(doc), &got); err != nil {
			t.Fatalf("%s: %v", doc, err)
		}
		if got.ID != rec.ID || got.Title != rec.Title || got.Content != rec.Content ||
			got.Color != rec.Color || got.TextSize != rec.TextSize ||
			got.Timestamp != rec.Timestamp || got.Position != rec.Position {
			t.Errorf("запись не совпала: %+v", got)
		}
		if got.FolderID == nil || *got.FolderID != folderID {
			t.Errorf("folderId прочитан неверно: %v", got.FolderID)
		}
		if !got.IsPinned || got.IsArchived || got.IsDeleted {
			t.Errorf("флаги прочитаны неверно: %+v", got)
		}
	}
}
