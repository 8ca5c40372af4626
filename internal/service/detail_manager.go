package service

import (
	"strings"

	"github.com/google/uuid"

	"pocketnotes/internal/domain/entity"
	"pocketnotes/internal/domain/events"
)

const (
	emptyNoteMessage    = "Note must have either a title or content"
	updateFailedMessage = "Failed to update note"
)

// DetailManager owns a single edit-or-create session. The two constructors
// are the only way to build one, so an edit session always has a bound note.
//
// The session survives a rejected save; the caller may retry. A successful
// save ends the session from the presentation layer's point of view.
type DetailManager struct {
	repo      NoteRepository
	editing   *entity.Note // nil in create mode
	listeners []detailSub
}

type detailSub struct {
	id       string
	listener events.DetailListener
}

// NewCreateDetail starts a session that will create a new note on save.
func NewCreateDetail(repo NoteRepository) *DetailManager {
	return &DetailManager{repo: repo}
}

// NewEditDetail starts a session bound to an existing note.
func NewEditDetail(repo NoteRepository, note *entity.Note) *DetailManager {
	return &DetailManager{repo: repo, editing: note}
}

// AddListener registers l and returns a token usable with RemoveListener.
func (m *DetailManager) AddListener(l events.DetailListener) string {
	id := uuid.NewString()
	m.listeners = append(m.listeners, detailSub{id: id, listener: l})
	return id
}

func (m *DetailManager) RemoveListener(id string) {
	for i, sub := range m.listeners {
		if sub.id == id {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return
		}
	}
}

// IsCreatingNew reports whether saving will create a new note.
func (m *DetailManager) IsCreatingNew() bool {
	return m.editing == nil
}

// Note returns the bound note in edit mode, nil in create mode.
func (m *DetailManager) Note() *entity.Note {
	return m.editing
}

// Save validates and persists the session. A note with neither title nor
// content is rejected before any store access. In create mode the save
// always succeeds from the caller's point of view; in edit mode a failed
// persist surfaces as a fixed error message.
func (m *DetailManager) Save(title, content string) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" && content == "" {
		m.emitError(emptyNoteMessage)
		return
	}

	if m.editing == nil {
		m.repo.Create(title, content, entity.DefaultCategory)
		m.emitSaved()
		return
	}

	if !m.repo.Update(m.editing, title, content, nil) {
		m.emitError(updateFailedMessage)
		return
	}
	m.emitSaved()
}

func (m *DetailManager) emitSaved() {
	for _, sub := range m.listeners {
		sub.listener.OnSaved()
	}
}

func (m *DetailManager) emitError(message string) {
	for _, sub := range m.listeners {
		sub.listener.OnError(message)
	}
}
