package state

import (
	"context"
	"sync"

	"a_notes_go/repository"
	"a_notes_go/usecase"
)

// watchList — общая основа держателей без собственной логики:
// экраны архива и корзины просто отражают живую выборку.
type watchList struct {
	mu      sync.Mutex
	state   ListState
	updates chan ListState
}

func newWatchList() watchList {
	return watchList{
		state:   ListState{Status: StatusLoading},
		updates: make(chan ListState, 1),
	}
}

func (w *watchList) Updates() <-chan ListState {
	return w.updates
}

func (w *watchList) State() ListState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *watchList) consume(ch <-chan repository.ListUpdate) {
	go func() {
		for upd := range ch {
			if upd.Err != nil {
				w.setState(ListState{Status: StatusError, Message: upd.Err.Error()})
				continue
			}
			w.setState(ListState{Status: StatusSuccess, Notes: upd.Notes})
		}
	}()
}

// setState заменяет состояние и излучает его; слив и отправка под
// одним замком, чтобы гонящиеся отправители не зависали на буфере.
func (w *watchList) setState(s ListState) {
	w.mu.Lock()
	w.state = s
	select {
	case <-w.updates:
	default:
	}
	w.updates <- s
	w.mu.Unlock()
}

// ArchiveList — держатель состояния экрана архива.
type ArchiveList struct {
	watchList
	repo *repository.Repository
}

func NewArchiveList(repo *repository.Repository) *ArchiveList {
	return &ArchiveList{watchList: newWatchList(), repo: repo}
}

func (a *ArchiveList) Start(ctx context.Context) {
	a.consume(a.repo.WatchArchived(ctx))
}

// TrashList — держатель состояния экрана корзины.
type TrashList struct {
	watchList
	repo *repository.Repository
}

func NewTrashList(repo *repository.Repository) *TrashList {
	return &TrashList{watchList: newWatchList(), repo: repo}
}

func (t *TrashList) Start(ctx context.Context) {
	t.consume(t.repo.WatchDeleted(ctx))
}

// EmptyTrash физически удаляет всё содержимое корзины.
func (t *TrashList) EmptyTrash() (int64, error) {
	return usecase.EmptyTrash(t.repo)
}
