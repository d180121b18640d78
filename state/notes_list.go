package state

import (
	"context"
	"sync"

	"a_notes_go/models"
	"a_notes_go/pkg/log"
	"a_notes_go/repository"
	"a_notes_go/usecase"
)

// NotesList — держатель состояния главного списка. Без поискового
// запроса подписан на живую активную выборку; при заданном запросе
// переподписывается на живую выборку поиска. Перестановка применяется
// к локальному состоянию сразу (оптимистично) и лишь затем сохраняется.
//
// Отката оптимистичного состояния при неудачной записи нет:
// следующее излучение хранилища само приводит состояние в соответствие.
type NotesList struct {
	repo *repository.Repository

	mu        sync.Mutex
	state     ListState
	query     string
	updates   chan ListState
	ctx       context.Context
	stopWatch context.CancelFunc
}

func NewNotesList(repo *repository.Repository) *NotesList {
	return &NotesList{
		repo:    repo,
		state:   ListState{Status: StatusLoading},
		updates: make(chan ListState, 1),
	}
}

// Updates — поток состояний для наблюдающего экрана; излучения
// схлопываются до последнего.
func (l *NotesList) Updates() <-chan ListState {
	return l.updates
}

// State возвращает текущее состояние.
func (l *NotesList) State() ListState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Start запускает подписку; останавливается вместе с контекстом.
func (l *NotesList) Start(ctx context.Context) {
	l.mu.Lock()
	l.ctx = ctx
	query := l.query
	l.mu.Unlock()
	l.watch(query)
}

// watch переподписывает держатель: пустой запрос — живой активный
// список, иначе — живая выборка поиска. Предыдущая подписка гасится.
func (l *NotesList) watch(query string) {
	l.mu.Lock()
	if l.stopWatch != nil {
		l.stopWatch()
	}
	parent := l.ctx
	if parent == nil {
		parent = context.Background()
	}
	wctx, cancel := context.WithCancel(parent)
	l.stopWatch = cancel
	l.mu.Unlock()

	var ch <-chan repository.ListUpdate
	if query == "" {
		ch = l.repo.WatchActive(wctx)
	} else {
		ch = l.repo.WatchSearch(wctx, query)
	}
	go func() {
		for upd := range ch {
			l.apply(query, upd)
		}
	}()
}

// apply переводит излучение выборки в состояние экрана. Излучение
// погасшей подписки (запрос уже сменился) отбрасывается.
func (l *NotesList) apply(query string, upd repository.ListUpdate) {
	l.mu.Lock()
	current := l.query
	l.mu.Unlock()
	if query != current {
		return
	}

	if upd.Err != nil {
		l.setState(ListState{Status: StatusError, Message: upd.Err.Error()})
		return
	}
	if query == "" {
		l.setState(ListState{Status: StatusSuccess, Notes: usecase.DefaultSort(upd.Notes)})
		return
	}
	l.setState(ListState{
		Status:       StatusSuccess,
		Notes:        upd.Notes,
		SearchActive: true,
		SearchQuery:  query,
	})
}

// setState заменяет состояние и излучает его. Слив и отправка идут под
// одним замком: иначе два гонящихся отправителя могли бы оба пройти
// слив, и второй завис бы на записи в заполненный буфер.
func (l *NotesList) setState(s ListState) {
	l.mu.Lock()
	l.state = s
	select {
	case <-l.updates:
	default:
	}
	l.updates <- s
	l.mu.Unlock()
}

// SetSearchQuery меняет поисковый запрос и переподписывает выборку.
// Пустой запрос возвращает живой нефильтрованный список.
func (l *NotesList) SetSearchQuery(query string) {
	l.mu.Lock()
	l.query = query
	l.mu.Unlock()
	l.watch(query)
}

// OnNoteMoved обрабатывает перетаскивание: локальное состояние
// переписывается мгновенно, затем набор позиций сохраняется. Во время
// поиска перестановка игнорируется — порядок результатов не является
// ручным.
func (l *NotesList) OnNoteMoved(fromIndex, toIndex int) {
	l.mu.Lock()
	if l.query != "" || l.state.Status != StatusSuccess {
		l.mu.Unlock()
		return
	}
	updated := usecase.MoveNote(l.state.Notes, fromIndex, toIndex)
	l.mu.Unlock()

	l.setState(ListState{Status: StatusSuccess, Notes: updated})
	if err := usecase.ReorderNotes(l.repo, updated); err != nil {
		log.S.Errorf("не удалось сохранить порядок заметок: %v", err)
	}
}

// PinNote переключает закрепление заметки.
func (l *NotesList) PinNote(note models.Note) error {
	return usecase.PinNote(l.repo, note)
}

// ArchiveNote отправляет заметку в архив.
func (l *NotesList) ArchiveNote(note models.Note) error {
	note.IsArchived = true
	return usecase.UpdateNote(l.repo, note)
}

// DeleteNote мягко удаляет заметку (в корзину).
func (l *NotesList) DeleteNote(note models.Note) error {
	return usecase.SoftDeleteNote(l.repo, note)
}

// CreateFolder создаёт папку (пустое имя молча игнорируется).
func (l *NotesList) CreateFolder(name string) error {
	_, err := usecase.CreateFolder(l.repo, name)
	return err
}
