package repository

import (
	"context"
	"time"

	"a_notes_go/data"
	"a_notes_go/models"
	"a_notes_go/pkg/log"
)

// Repository — единственный шлюз доменного кода к хранилищу. Все
// мутации проходят через него, чтобы живые выборки узнавали об
// изменениях. Ошибки хранилища пробрасываются как есть, своя
// классификация ошибок здесь не вводится.
type Repository struct {
	notesHub   *hub
	foldersHub *hub
}

func New() *Repository {
	return &Repository{
		notesHub:   newHub(),
		foldersHub: newHub(),
	}
}

// ListUpdate — одно излучение живой выборки заметок.
type ListUpdate struct {
	Notes []models.Note
	Err   error
}

// FoldersUpdate — одно излучение живой выборки папок.
type FoldersUpdate struct {
	Folders []models.Folder
	Err     error
}

// --- Одноразовые чтения ---

func (r *Repository) listJoined(load func() ([]models.NoteRecord, error)) ([]models.Note, error) {
	recs, err := load()
	if err != nil {
		return nil, err
	}
	folders, err := data.ListFolders()
	if err != nil {
		return nil, err
	}
	return attachFolderNames(recs, folders), nil
}

// ListActive возвращает не удалённые заметки с именами папок.
func (r *Repository) ListActive() ([]models.Note, error) {
	return r.listJoined(data.ListActiveNotes)
}

// ListArchived возвращает архивные заметки с именами папок.
func (r *Repository) ListArchived() ([]models.Note, error) {
	return r.listJoined(data.ListArchivedNotes)
}

// ListDeleted возвращает содержимое корзины с именами папок.
func (r *Repository) ListDeleted() ([]models.Note, error) {
	return r.listJoined(data.ListDeletedNotes)
}

// ListByFolder возвращает активные заметки папки в ручном порядке.
func (r *Repository) ListByFolder(folderID int64) ([]models.Note, error) {
	return r.listJoined(func() ([]models.NoteRecord, error) {
		return data.ListNotesByFolder(folderID)
	})
}

// Search ищет регистрозависимое вхождение подстроки среди активных
// заметок. Пустой запрос вызывающие обрабатывают сами (показывают
// нефильтрованный список), сюда он не попадает.
func (r *Repository) Search(query string) ([]models.Note, error) {
	return r.listJoined(func() ([]models.NoteRecord, error) {
		return data.SearchNotes(query)
	})
}

// GetByID возвращает заметку по ID; отсутствие записи — (nil, nil).
// Имя папки здесь не разрешается — экран деталей им не пользуется.
func (r *Repository) GetByID(id int64) (*models.Note, error) {
	rec, err := data.GetNoteByID(id)
	if err != nil || rec == nil {
		return nil, err
	}
	note := toDomain(*rec, nil)
	return &note, nil
}

// ListFolders возвращает все папки.
func (r *Repository) ListFolders() ([]models.Folder, error) {
	return data.ListFolders()
}

// --- Мутации заметок ---

// Insert сохраняет новую заметку и возвращает присвоенный ID.
func (r *Repository) Insert(note models.Note) (int64, error) {
	rec := note.Record()
	id, err := data.InsertNote(&rec)
	if err != nil {
		return 0, err
	}
	r.notesHub.notify()
	return id, nil
}

// Update заменяет запись целиком по её ID (вставка-или-замена).
func (r *Repository) Update(note models.Note) error {
	rec := note.Record()
	if err := data.ReplaceNote(&rec); err != nil {
		return err
	}
	r.notesHub.notify()
	return nil
}

// SoftDelete помечает заметку удалённой: она исчезает из активного и
// архивного списков и появляется в корзине.
func (r *Repository) SoftDelete(note models.Note) error {
	note.IsDeleted = true
	return r.Update(note)
}

// Purge физически удаляет заметку.
func (r *Repository) Purge(note models.Note) error {
	if err := data.DeleteNoteByID(note.ID); err != nil {
		return err
	}
	r.notesHub.notify()
	return nil
}

// EmptyTrash физически удаляет все помеченные удалёнными заметки.
// Возвращает число удалённых.
func (r *Repository) EmptyTrash() (int64, error) {
	n, err := data.EmptyTrash()
	if err != nil {
		return 0, err
	}
	r.notesHub.notify()
	return n, nil
}

// Reorder сохраняет свежевычисленные позиции всего набора одной
// транзакцией: с точки зрения вызывающего операция атомарна.
func (r *Repository) Reorder(notes []models.Note) error {
	recs := make([]models.NoteRecord, 0, len(notes))
	for _, n := range notes {
		recs = append(recs, n.Record())
	}
	if err := data.ReorderNotes(recs); err != nil {
		return err
	}
	r.notesHub.notify()
	return nil
}

// --- Мутации папок ---

// CreateFolder сохраняет новую папку и возвращает присвоенный ID.
func (r *Repository) CreateFolder(folder models.Folder) (int64, error) {
	id, err := data.InsertFolder(&folder)
	if err != nil {
		return 0, err
	}
	r.foldersHub.notify()
	return id, nil
}

// RenameFolder обновляет имя папки. Живые выборки заметок пересчитают
// соединение и покажут новое имя.
func (r *Repository) RenameFolder(folder models.Folder) error {
	if err := data.UpdateFolder(&folder); err != nil {
		return err
	}
	r.foldersHub.notify()
	return nil
}

// DeleteFolder удаляет только строку папки: заметки не трогаются,
// их ссылки остаются висячими.
func (r *Repository) DeleteFolder(folder models.Folder) error {
	if err := data.DeleteFolder(folder.ID); err != nil {
		return err
	}
	r.foldersHub.notify()
	return nil
}

// --- Бэкап ---

// ExportAll возвращает полный нефильтрованный набор папок и заметок,
// включая архивные и удалённые.
func (r *Repository) ExportAll() ([]models.Folder, []models.NoteRecord, error) {
	folders, err := data.ListFolders()
	if err != nil {
		return nil, nil, err
	}
	notes, err := data.ListAllNotes()
	if err != nil {
		return nil, nil, err
	}
	return folders, notes, nil
}

// ImportAll дополняет хранилище содержимым бэкапа (см. data.ImportAll).
func (r *Repository) ImportAll(folders []models.Folder, notes []models.NoteRecord) error {
	if err := data.ImportAll(folders, notes); err != nil {
		return err
	}
	r.foldersHub.notify()
	r.notesHub.notify()
	return nil
}

// --- Живые выборки ---

// watchJoin подписывается на оба потока изменений (заметки и папки),
// заново выполняет выборку с соединением при каждом сигнале и отдаёт
// результат единым потоком. Излучения схлопываются до последнего:
// медленный получатель видит только актуальное состояние.
func (r *Repository) watchJoin(ctx context.Context, load func() ([]models.Note, error)) <-chan ListUpdate {
	out := make(chan ListUpdate, 1)
	noteCh := r.notesHub.subscribe()
	folderCh := r.foldersHub.subscribe()

	emit := func() {
		notes, err := load()
		if err != nil {
			log.S.Errorf("живая выборка: %v", err)
		}
		select {
		case <-out:
		default:
		}
		out <- ListUpdate{Notes: notes, Err: err}
	}

	go func() {
		defer func() {
			r.notesHub.unsubscribe(noteCh)
			r.foldersHub.unsubscribe(folderCh)
			close(out)
		}()

		emit() // первоначальное состояние
		for {
			select {
			case <-ctx.Done():
				return
			case <-noteCh:
				emit()
			case <-folderCh:
				emit()
			}
		}
	}()
	return out
}

// WatchActive — живой активный список.
func (r *Repository) WatchActive(ctx context.Context) <-chan ListUpdate {
	return r.watchJoin(ctx, r.ListActive)
}

// WatchArchived — живой архивный список.
func (r *Repository) WatchArchived(ctx context.Context) <-chan ListUpdate {
	return r.watchJoin(ctx, r.ListArchived)
}

// WatchDeleted — живая корзина.
func (r *Repository) WatchDeleted(ctx context.Context) <-chan ListUpdate {
	return r.watchJoin(ctx, r.ListDeleted)
}

// WatchByFolder — живой список папки.
func (r *Repository) WatchByFolder(ctx context.Context, folderID int64) <-chan ListUpdate {
	return r.watchJoin(ctx, func() ([]models.Note, error) {
		return r.ListByFolder(folderID)
	})
}

// WatchSearch — живые результаты поиска.
func (r *Repository) WatchSearch(ctx context.Context, query string) <-chan ListUpdate {
	return r.watchJoin(ctx, func() ([]models.Note, error) {
		return r.Search(query)
	})
}

// WatchFolders — живой набор папок.
func (r *Repository) WatchFolders(ctx context.Context) <-chan FoldersUpdate {
	out := make(chan FoldersUpdate, 1)
	folderCh := r.foldersHub.subscribe()

	emit := func() {
		folders, err := data.ListFolders()
		if err != nil {
			log.S.Errorf("живая выборка папок: %v", err)
		}
		select {
		case <-out:
		default:
		}
		out <- FoldersUpdate{Folders: folders, Err: err}
	}

	go func() {
		defer func() {
			r.foldersHub.unsubscribe(folderCh)
			close(out)
		}()

		emit()
		for {
			select {
			case <-ctx.Done():
				return
			case <-folderCh:
				emit()
			}
		}
	}()
	return out
}

// NowMillis — текущий момент в миллисекундах эпохи, единый формат
// временных меток заметок.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
