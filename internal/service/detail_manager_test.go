package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocketnotes/internal/domain/entity"
)

type recordingDetailListener struct {
	saved  int
	errors []string
}

func (r *recordingDetailListener) OnSaved() {
	r.saved++
}

func (r *recordingDetailListener) OnError(message string) {
	r.errors = append(r.errors, message)
}

func TestSaveRejectsNoteWithNoTitleAndNoContent(t *testing.T) {
	blanks := [][2]string{
		{"", ""},
		{"   ", "\n"},
		{"\t", "  \r\n "},
	}

	for _, pair := range blanks {
		repo := newFakeRepo()
		manager := NewCreateDetail(repo)
		listener := &recordingDetailListener{}
		manager.AddListener(listener)

		manager.Save(pair[0], pair[1])

		assert.Equal(t, []string{"Note must have either a title or content"}, listener.errors)
		assert.Zero(t, listener.saved)
		assert.Empty(t, repo.created, "validation must happen before any store access")
		assert.Empty(t, repo.updated)
	}
}

func TestSaveInCreateModePersistsTrimmedNote(t *testing.T) {
	repo := newFakeRepo()
	manager := NewCreateDetail(repo)
	listener := &recordingDetailListener{}
	manager.AddListener(listener)

	assert.True(t, manager.IsCreatingNew())
	assert.Nil(t, manager.Note())

	manager.Save("  Shopping  ", "  Milk, eggs  ")

	require.Len(t, repo.created, 1)
	assert.Equal(t, "Shopping", repo.created[0].Title)
	assert.Equal(t, "Milk, eggs", repo.created[0].Content)
	assert.Equal(t, entity.DefaultCategory, repo.created[0].Category)
	assert.Equal(t, 1, listener.saved)
	assert.Empty(t, listener.errors)
}

func TestSaveInEditModeUpdatesBoundNote(t *testing.T) {
	note := &entity.Note{ID: 7, Title: "old", Content: "old", Category: "Personal"}
	repo := newFakeRepo(note)
	manager := NewEditDetail(repo, note)
	listener := &recordingDetailListener{}
	manager.AddListener(listener)

	assert.False(t, manager.IsCreatingNew())
	assert.Same(t, note, manager.Note())

	manager.Save("new title", "new content")

	require.Len(t, repo.updated, 1)
	assert.Equal(t, "new title", note.Title)
	assert.Equal(t, "new content", note.Content)
	assert.Nil(t, repo.lastCategory, "editing must leave the category unspecified")
	assert.Equal(t, "Personal", note.Category)
	assert.Equal(t, 1, listener.saved)
}

func TestSaveInEditModeSurfacesUpdateFailure(t *testing.T) {
	note := &entity.Note{ID: 7, Title: "old"}
	repo := newFakeRepo(note)
	repo.updateOK = false
	manager := NewEditDetail(repo, note)
	listener := &recordingDetailListener{}
	manager.AddListener(listener)

	manager.Save("new", "new")

	assert.Zero(t, listener.saved)
	assert.Equal(t, []string{"Failed to update note"}, listener.errors)
}

func TestSessionSurvivesRejectedSave(t *testing.T) {
	repo := newFakeRepo()
	manager := NewCreateDetail(repo)
	listener := &recordingDetailListener{}
	manager.AddListener(listener)

	manager.Save("", "")
	manager.Save("second try", "")

	require.Len(t, repo.created, 1)
	assert.Equal(t, "second try", repo.created[0].Title)
	assert.Equal(t, 1, listener.saved)
}
