package state

import (
	"context"
	"sync"

	"a_notes_go/models"
	"a_notes_go/pkg/log"
	"a_notes_go/repository"
	"a_notes_go/usecase"
)

// FolderNotes — держатель состояния экрана папки: живой список заметок
// папки в ручном порядке, своя оптимистичная перестановка и удаление
// самой папки.
type FolderNotes struct {
	repo   *repository.Repository
	folder models.Folder

	mu      sync.Mutex
	state   ListState
	updates chan ListState
}

func NewFolderNotes(repo *repository.Repository, folder models.Folder) *FolderNotes {
	return &FolderNotes{
		repo:    repo,
		folder:  folder,
		state:   ListState{Status: StatusLoading},
		updates: make(chan ListState, 1),
	}
}

// Folder возвращает папку экрана.
func (f *FolderNotes) Folder() models.Folder {
	return f.folder
}

// Updates — поток состояний; излучения схлопываются до последнего.
func (f *FolderNotes) Updates() <-chan ListState {
	return f.updates
}

// State возвращает текущее состояние.
func (f *FolderNotes) State() ListState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Start запускает подписку; останавливается вместе с контекстом.
func (f *FolderNotes) Start(ctx context.Context) {
	ch := f.repo.WatchByFolder(ctx, f.folder.ID)
	go func() {
		for upd := range ch {
			if upd.Err != nil {
				f.setState(ListState{Status: StatusError, Message: upd.Err.Error()})
				continue
			}
			f.setState(ListState{Status: StatusSuccess, Notes: upd.Notes})
		}
	}()
}

// setState заменяет состояние и излучает его; слив и отправка под
// одним замком, чтобы гонящиеся отправители не зависали на буфере.
func (f *FolderNotes) setState(s ListState) {
	f.mu.Lock()
	f.state = s
	select {
	case <-f.updates:
	default:
	}
	f.updates <- s
	f.mu.Unlock()
}

// OnNoteMoved — оптимистичная перестановка внутри папки с последующей
// атомарной записью позиций.
func (f *FolderNotes) OnNoteMoved(fromIndex, toIndex int) {
	f.mu.Lock()
	if f.state.Status != StatusSuccess {
		f.mu.Unlock()
		return
	}
	updated := usecase.MoveNote(f.state.Notes, fromIndex, toIndex)
	f.mu.Unlock()

	f.setState(ListState{Status: StatusSuccess, Notes: updated})
	if err := usecase.ReorderNotes(f.repo, updated); err != nil {
		log.S.Errorf("не удалось сохранить порядок заметок папки %d: %v", f.folder.ID, err)
	}
}

// DeleteFolder удаляет папку; заметки остаются с висячей ссылкой.
func (f *FolderNotes) DeleteFolder() error {
	return usecase.DeleteFolder(f.repo, f.folder)
}
