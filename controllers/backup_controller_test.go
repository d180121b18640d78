package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"a_notes_go/models"
)

func importMultipart(t *testing.T, doc string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "a_notes_backup.json")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(doc)); err != nil {
		t.Fatal(err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/backup/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	ImportBackupHandler(rec, req)
	return rec
}

func TestExportBackupEndpoint(t *testing.T) {
	setupAPI(t)
	createNoteHTTP(t, "Для бэкапа", 100)

	req := httptest.NewRequest(http.MethodGet, "/api/backup/export", nil)
	rec := httptest.NewRecorder()
	ExportBackupHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("export: код %d, тело %s", rec.Code, rec.Body.String())
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "a_notes_backup.json") {
		t.Errorf("Content-Disposition: %q", cd)
	}

	var doc models.BackupData
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("документ не разбирается: %v", err)
	}
	if doc.Version != models.BackupVersion || len(doc.Notes) != 1 {
		t.Errorf("документ: version=%d, заметок %d", doc.Version, len(doc.Notes))
	}
}

func TestImportBackupEndpoint(t *testing.T) {
	setupAPI(t)

	doc := `{"version":1,"timestamp":0,"folders":[{"id":9,"name":"Из бэкапа"}],` +
		`"notes":[{"id":1,"title":"Импортированная","content":"","color":-1,"textSize":16,` +
		`"timestamp":100,"isPinned":false,"isArchived":false,"isDeleted":false,"folderId":9,"position":0}]}`

	rec := importMultipart(t, doc)
	if rec.Code != http.StatusOK {
		t.Fatalf("import: код %d, тело %s", rec.Code, rec.Body.String())
	}
	var status map[string]string
	json.NewDecoder(rec.Body).Decode(&status)
	if status["status"] != "Import Successful!" {
		t.Errorf("статус импорта: %+v", status)
	}

	notes := listNotesHTTP(t, "/api/notes")
	if len(notes) != 1 || notes[0].Title != "Импортированная" {
		t.Fatalf("после импорта: %+v", notes)
	}
	if notes[0].FolderName == nil || *notes[0].FolderName != "Из бэкапа" {
		t.Errorf("ссылка на папку должна переписаться на новую: %+v", notes[0])
	}
}

func TestImportBackupEmptyDocument(t *testing.T) {
	setupAPI(t)

	rec := importMultipart(t, `{"version":1,"timestamp":0,"folders":[],"notes":[]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("пустой документ: код %d", rec.Code)
	}
	var status map[string]string
	json.NewDecoder(rec.Body).Decode(&status)
	if status["status"] != "No data found in file." {
		t.Errorf("статус: %+v", status)
	}
}

func TestImportBackupMalformedDocument(t *testing.T) {
	setupAPI(t)
	createNoteHTTP(t, "Существующая", 100)

	rec := importMultipart(t, `{"folders": [truncated`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("некорректный документ: ожидался 400, получен %d", rec.Code)
	}

	if notes := listNotesHTTP(t, "/api/notes"); len(notes) != 1 {
		t.Errorf("хранилище не должно меняться, заметок: %d", len(notes))
	}

	rec = importMultipart(t, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("пустой файл: ожидался 400, получен %d", rec.Code)
	}
}
