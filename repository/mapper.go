package repository

import "a_notes_go/models"

// toDomain превращает запись хранилища в доменную заметку, прикрепляя
// переданное имя папки. Преобразование чистое и симметричное: обратный
// путь — models.Note.Record(), имя папки при этом отбрасывается.
func toDomain(rec models.NoteRecord, folderName *string) models.Note {
	return models.Note{NoteRecord: rec, FolderName: folderName}
}

// attachFolderNames выполняет соединение заметок с текущим набором папок:
// для каждой заметки имя её папки ищется заново. Висячая ссылка (папка
// удалена) просто не разрешается — заметка ведёт себя как «вне папок».
func attachFolderNames(recs []models.NoteRecord, folders []models.Folder) []models.Note {
	byID := make(map[int64]string, len(folders))
	for _, f := range folders {
		byID[f.ID] = f.Name
	}

	notes := make([]models.Note, 0, len(recs))
	for _, rec := range recs {
		var name *string
		if rec.FolderID != nil {
			if n, ok := byID[*rec.FolderID]; ok {
				name = &n
			}
		}
		notes = append(notes, toDomain(rec, name))
	}
	return notes
}
