package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocketnotes/internal/contract"
	"pocketnotes/internal/domain/entity"
	"pocketnotes/internal/utils/apierror"
	"pocketnotes/internal/validators"
)

func newTestService(repo NoteStore) *DefaultNoteService {
	validate := validator.New()
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	return NewNoteService(repo, validate)
}

func TestGetAllNotesMapsEntities(t *testing.T) {
	repo := newFakeRepo(&entity.Note{
		ID:        1,
		Title:     "Groceries",
		Content:   "milk",
		Category:  "General",
		ColorHex:  "#FF6B6B",
		CreatedAt: 1_700_000_000_000,
		UpdatedAt: 1_700_000_000_000,
	})
	svc := newTestService(repo)

	notes := svc.GetAllNotes("")

	require.Len(t, notes, 1)
	assert.Equal(t, "Groceries", notes[0].Title)
	assert.Equal(t, "2023-11-14T22:13:20Z", notes[0].CreatedAt)
	assert.Equal(t, "2023-11-14T22:13:20Z", notes[0].UpdatedAt)
}

func TestGetAllNotesDelegatesSearch(t *testing.T) {
	repo := newFakeRepo(
		&entity.Note{ID: 1, Title: "Workout"},
		&entity.Note{ID: 2, Title: "Groceries"},
	)
	svc := newTestService(repo)

	notes := svc.GetAllNotes("work")

	require.Len(t, notes, 1)
	assert.Equal(t, "Workout", notes[0].Title)
}

func TestCreateNoteRejectsBlankNote(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, apierr := svc.CreateNote(&contract.CreateNoteRequest{Title: "   ", Content: " \n "})

	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
	assert.Equal(t, apierror.EmptyNoteError, apierr)
	assert.Empty(t, repo.created)
}

func TestCreateNoteSanitizesInput(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	note, apierr := svc.CreateNote(&contract.CreateNoteRequest{Title: "  Hi  ", Content: "  there  "})

	require.Nil(t, apierr)
	assert.Equal(t, "Hi", note.Title)
	assert.Equal(t, "there", note.Content)
}

func TestUpdateNotePartialCategory(t *testing.T) {
	repo := newFakeRepo(&entity.Note{ID: 5, Title: "t", Content: "c", Category: "Personal"})
	svc := newTestService(repo)

	_, apierr := svc.UpdateNote(5, &contract.UpdateNoteRequest{Title: "X", Content: "Y"})
	require.Nil(t, apierr)
	assert.Nil(t, repo.lastCategory)

	work := "Work"
	resp, apierr := svc.UpdateNote(5, &contract.UpdateNoteRequest{Title: "X", Content: "Y", Category: &work})
	require.Nil(t, apierr)
	require.NotNil(t, repo.lastCategory)
	assert.Equal(t, "Work", resp.Category)
}

func TestUpdateNoteUnknownID(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, apierr := svc.UpdateNote(404, &contract.UpdateNoteRequest{Title: "X"})

	assert.Equal(t, apierror.NotFoundError, apierr)
}

func TestDeleteNote(t *testing.T) {
	repo := newFakeRepo(&entity.Note{ID: 9, Title: "bye"})
	svc := newTestService(repo)

	assert.Nil(t, svc.DeleteNote(9))
	assert.Len(t, repo.deleted, 1)

	assert.Equal(t, apierror.NotFoundError, svc.DeleteNote(9))
}

func TestServiceMasksStoreErrors(t *testing.T) {
	repo := newFakeRepo()
	repo.findErr = errors.New("disk exploded")
	svc := newTestService(repo)

	_, apierr := svc.GetNoteByID(1)

	// the store-internal detail never crosses the boundary
	assert.Equal(t, apierror.InternalServerError, apierr)
}

func TestToggleFavoriteService(t *testing.T) {
	repo := newFakeRepo(&entity.Note{ID: 3, Title: "fav"})
	svc := newTestService(repo)

	resp, apierr := svc.ToggleFavorite(3)
	require.Nil(t, apierr)
	assert.True(t, resp.IsFavorite)

	repo.favoriteOK = false
	_, apierr = svc.ToggleFavorite(3)
	assert.Equal(t, apierror.InternalServerError, apierr)
}

func TestPersistHookIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	assert.Nil(t, svc.Persist())
	assert.Nil(t, svc.Persist())

	repo.flushOK = false
	assert.Equal(t, apierror.InternalServerError, svc.Persist())
}
