package service

import (
	"github.com/google/uuid"

	"pocketnotes/internal/domain/entity"
	"pocketnotes/internal/domain/events"
)

// NoteRepository is the persistence surface the state managers drive. It is
// the single choke point to the durable store: reads fail soft to an empty
// list, writes answer with a plain success flag and never leak store errors.
type NoteRepository interface {
	FetchAll() []*entity.Note
	Search(query string) []*entity.Note
	Create(title, content, category string) *entity.Note
	Update(note *entity.Note, title, content string, category *string) bool
	Delete(note *entity.Note) bool
	ToggleFavorite(note *entity.Note) bool
}

const deleteFailedMessage = "Failed to delete note"

// ListManager owns the note list a presentation layer renders and the
// commands it forwards. Every operation is synchronous and side-effect
// complete when it returns, so callers can re-query state immediately after.
//
// Index-based commands tolerate stale UI state: an out-of-range index is a
// silent no-op, not an error.
type ListManager struct {
	repo      NoteRepository
	notes     []*entity.Note
	listeners []listSub
}

type listSub struct {
	id       string
	listener events.ListListener
}

func NewListManager(repo NoteRepository) *ListManager {
	return &ListManager{repo: repo}
}

// AddListener registers l and returns a token usable with RemoveListener.
func (m *ListManager) AddListener(l events.ListListener) string {
	id := uuid.NewString()
	m.listeners = append(m.listeners, listSub{id: id, listener: l})
	return id
}

func (m *ListManager) RemoveListener(id string) {
	for i, sub := range m.listeners {
		if sub.id == id {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return
		}
	}
}

// Notes returns the current display copy of the list. It may be stale until
// the next Load.
func (m *ListManager) Notes() []*entity.Note {
	return m.notes
}

// Load replaces the list with a fresh fetch and always announces the change,
// identical content included.
func (m *ListManager) Load() {
	m.notes = m.repo.FetchAll()
	for _, sub := range m.listeners {
		sub.listener.OnListChanged()
	}
}

// RequestCreate routes the "new note" intent to the presentation layer. It
// does not touch any state itself.
func (m *ListManager) RequestCreate() {
	for _, sub := range m.listeners {
		sub.listener.OnShowDetail(nil, true)
	}
}

// Select opens the note at index for editing.
func (m *ListManager) Select(index int) {
	if index < 0 || index >= len(m.notes) {
		return
	}

	note := m.notes[index]
	for _, sub := range m.listeners {
		sub.listener.OnShowDetail(note, false)
	}
}

// Delete removes the note at index from the store. On success the list is
// re-fetched rather than spliced locally, so the in-memory order always
// mirrors the store. On failure the list is left untouched and listeners get
// a fixed error message.
func (m *ListManager) Delete(index int) {
	if index < 0 || index >= len(m.notes) {
		return
	}

	if !m.repo.Delete(m.notes[index]) {
		for _, sub := range m.listeners {
			sub.listener.OnError(deleteFailedMessage)
		}
		return
	}
	m.Load()
}

// ToggleFavorite flips the favorite flag of the note at index and
// re-fetches so listeners see the stored truth.
func (m *ListManager) ToggleFavorite(index int) {
	if index < 0 || index >= len(m.notes) {
		return
	}

	if !m.repo.ToggleFavorite(m.notes[index]) {
		for _, sub := range m.listeners {
			sub.listener.OnError(updateFailedMessage)
		}
		return
	}
	m.Load()
}
