package state

import (
	"context"
	"sync"

	"a_notes_go/models"
	"a_notes_go/repository"
	"a_notes_go/usecase"
)

// FoldersList — держатель состояния набора папок: живая выборка для
// ящика навигации плюс операции создания и переименования.
type FoldersList struct {
	repo *repository.Repository

	mu      sync.Mutex
	state   FoldersState
	updates chan FoldersState
}

func NewFoldersList(repo *repository.Repository) *FoldersList {
	return &FoldersList{
		repo:    repo,
		state:   FoldersState{Status: StatusLoading},
		updates: make(chan FoldersState, 1),
	}
}

// Updates — поток состояний; излучения схлопываются до последнего.
func (f *FoldersList) Updates() <-chan FoldersState {
	return f.updates
}

// State возвращает текущее состояние.
func (f *FoldersList) State() FoldersState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Start запускает подписку; останавливается вместе с контекстом.
func (f *FoldersList) Start(ctx context.Context) {
	ch := f.repo.WatchFolders(ctx)
	go func() {
		for upd := range ch {
			if upd.Err != nil {
				f.setState(FoldersState{Status: StatusError, Message: upd.Err.Error()})
				continue
			}
			f.setState(FoldersState{Status: StatusSuccess, Folders: upd.Folders})
		}
	}()
}

// setState заменяет состояние и излучает его; слив и отправка под
// одним замком, чтобы гонящиеся отправители не зависали на буфере.
func (f *FoldersList) setState(s FoldersState) {
	f.mu.Lock()
	f.state = s
	select {
	case <-f.updates:
	default:
	}
	f.updates <- s
	f.mu.Unlock()
}

// CreateFolder создаёт папку (пустое имя молча игнорируется).
func (f *FoldersList) CreateFolder(name string) error {
	_, err := usecase.CreateFolder(f.repo, name)
	return err
}

// RenameFolder переименовывает папку (пустое имя молча игнорируется).
func (f *FoldersList) RenameFolder(folder models.Folder) error {
	return usecase.RenameFolder(f.repo, folder)
}
