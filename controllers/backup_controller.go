package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"a_notes_go/backup"
	"a_notes_go/pkg/log"

	"github.com/google/uuid"
)

const backupFileName = "a_notes_backup.json"

// ExportBackupHandler отдаёт полный документ бэкапа как скачиваемый
// JSON-файл. Копия документа дополнительно сохраняется на диске в
// директории бэкапов под уникальным именем.
func ExportBackupHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := backup.Export(repo, &buf); err != nil {
		log.S.Errorf("ExportBackupHandler: %v", err)
		respondError(w, http.StatusInternalServerError, "Export Failed: "+err.Error())
		return
	}

	// Серверная копия; неудача здесь не срывает сам экспорт.
	if err := os.MkdirAll(cfg.Backup.Dir, os.ModePerm); err != nil {
		log.S.Warnf("ExportBackupHandler: не удалось создать директорию бэкапов: %v", err)
	} else {
		name := time.Now().Format("20060102-150405") + "-" + uuid.New().String() + ".json"
		target := filepath.Join(cfg.Backup.Dir, name)
		if err := os.WriteFile(target, buf.Bytes(), 0644); err != nil {
			log.S.Warnf("ExportBackupHandler: не удалось записать копию %s: %v", target, err)
		} else {
			log.S.Infof("Серверная копия бэкапа сохранена: %s", target)
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+backupFileName+"\"")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// ImportBackupHandler принимает документ бэкапа как multipart-файл в
// поле "file" и дополняет им хранилище. Некорректный документ и документ
// без данных не меняют хранилище.
func ImportBackupHandler(w http.ResponseWriter, r *http.Request) {
	// Ограничим максимальный размер файла (50MB).
	r.Body = http.MaxBytesReader(w, r.Body, 50*1024*1024)
	if err := r.ParseMultipartForm(50 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "Error processing backup file: "+err.Error())
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Backup file is required in 'file' field")
		return
	}
	defer file.Close()

	log.S.Infof("Получен файл бэкапа: %s, размер: %d", handler.Filename, handler.Size)

	if err := backup.Import(repo, file); err != nil {
		if errors.Is(err, backup.ErrNoData) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "No data found in file."})
			return
		}
		log.S.Errorf("ImportBackupHandler: %v", err)
		respondError(w, http.StatusBadRequest, "Import Failed: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "Import Successful!"})
}
