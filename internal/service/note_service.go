package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"pocketnotes/internal/contract"
	"pocketnotes/internal/domain/entity"
	"pocketnotes/internal/utils"
	"pocketnotes/internal/utils/apierror"
)

// NoteStore widens NoteRepository with the lookups the HTTP surface needs.
type NoteStore interface {
	NoteRepository
	FindByID(id int64) (*entity.Note, error)
	Flush() bool
}

// DefaultNoteService adapts the repository to the REST surface: request
// validation, id resolution and apierror mapping happen here, persistence
// stays behind the repository.
type DefaultNoteService struct {
	Repo     NoteStore
	Validate *validator.Validate
}

func NewNoteService(repo NoteStore, validate *validator.Validate) *DefaultNoteService {
	return &DefaultNoteService{
		Repo:     repo,
		Validate: validate,
	}
}

// GetAllNotes lists notes, filtered by query when it is non-empty. Reads
// fail soft, so this never produces an error response, only an empty list.
func (n *DefaultNoteService) GetAllNotes(query string) []*contract.NoteResponse {
	var notes []*entity.Note
	if query == "" {
		notes = n.Repo.FetchAll()
	} else {
		notes = n.Repo.Search(query)
	}

	resp := make([]*contract.NoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
	}
	return resp
}

func (n *DefaultNoteService) GetNoteByID(noteId int64) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, err := n.Repo.FindByID(noteId)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NotFoundError
	}
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) CreateNote(req *contract.CreateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if req.Title == "" && req.Content == "" {
		return nil, apierror.EmptyNoteError
	}

	note := n.Repo.Create(req.Title, req.Content, req.Category)
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) UpdateNote(noteId int64, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if req.Title == "" && req.Content == "" {
		return nil, apierror.EmptyNoteError
	}

	note, err := n.Repo.FindByID(noteId)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NotFoundError
	}

	if !n.Repo.Update(note, req.Title, req.Content, req.Category) {
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) DeleteNote(noteId int64) apierror.ErrorResponse {
	note, err := n.Repo.FindByID(noteId)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return apierror.InternalServerError
	}

	if note == nil {
		return apierror.NotFoundError
	}

	if !n.Repo.Delete(note) {
		return apierror.InternalServerError
	}
	return nil
}

func (n *DefaultNoteService) ToggleFavorite(noteId int64) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, err := n.Repo.FindByID(noteId)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NotFoundError
	}

	if !n.Repo.ToggleFavorite(note) {
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

// Persist is the "persist now" lifecycle hook exposed over HTTP; hosts call
// it before suspending the process. Idempotent.
func (n *DefaultNoteService) Persist() apierror.ErrorResponse {
	if !n.Repo.Flush() {
		return apierror.InternalServerError
	}
	return nil
}

func toNoteResponse(note *entity.Note) *contract.NoteResponse {
	return &contract.NoteResponse{
		ID:         note.ID,
		Title:      note.Title,
		Content:    note.Content,
		Category:   note.Category,
		ColorHex:   note.ColorHex,
		IsFavorite: note.IsFavorite,
		CreatedAt:  utils.FormatEpoch(note.CreatedAt),
		UpdatedAt:  utils.FormatEpoch(note.UpdatedAt),
	}
}
