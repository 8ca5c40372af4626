package repository

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"pocketnotes/internal/domain/entity"
	"pocketnotes/internal/domain/sqlite"
	"pocketnotes/internal/utils"
	"pocketnotes/internal/utils/uid"
)

// ColorPalette is the fixed set of display colors a new note may be tagged
// with. Picks are uniform; the chosen color never changes afterwards.
var ColorPalette = [9]string{
	"#FF6B6B", "#FFD93D", "#6BCB77",
	"#4D96FF", "#9D4EDD", "#FF9F1C",
	"#2EC4B6", "#E07A5F", "#8D99AE",
}

// DefaultNoteRepository is the sole gateway between application logic and
// the sqlite store. Store errors never cross this boundary: reads degrade to
// an empty list, writes answer with a plain success flag.
type DefaultNoteRepository struct {
	db  *gorm.DB
	rng *rand.Rand
	now func() int64
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return NewNoteRepositoryWithSource(db, rand.NewSource(time.Now().UnixNano()))
}

// NewNoteRepositoryWithSource injects the random source used for color
// assignment so callers can make palette picks deterministic.
func NewNoteRepositoryWithSource(db *gorm.DB, src rand.Source) *DefaultNoteRepository {
	return &DefaultNoteRepository{
		db:  db,
		rng: rand.New(src),
		now: utils.NowUTC,
	}
}

// FetchAll returns every note, most recently touched first. A store failure
// degrades to an empty result: the list screen should never hard-fail, only
// appear empty.
func (d *DefaultNoteRepository) FetchAll() []*entity.Note {
	var notes []*entity.Note
	err := d.db.
		Order("updated_at DESC, id DESC").
		Find(&notes).Error
	if err != nil {
		log.Errorf("failed to fetch notes: %v", err)
		return []*entity.Note{}
	}
	return notes
}

// Search matches the query case-insensitively against title or content.
// Same ordering and failure policy as FetchAll.
func (d *DefaultNoteRepository) Search(query string) []*entity.Note {
	pattern := "%" + strings.ToLower(query) + "%"

	var notes []*entity.Note
	err := d.db.
		Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern).
		Order("updated_at DESC, id DESC").
		Find(&notes).Error
	if err != nil {
		log.Errorf("failed to search notes for %q: %v", query, err)
		return []*entity.Note{}
	}
	return notes
}

// Create builds and persists a new note. Title and content are trimmed, the
// category falls back to the default when unspecified, and the note gets an
// ID, a palette color and matching created/updated timestamps. Construction
// never fails from the caller's point of view; a failed persist only shows
// up in the log.
func (d *DefaultNoteRepository) Create(title, content, category string) *entity.Note {
	if category == "" {
		category = entity.DefaultCategory
	}

	now := d.now()
	note := &entity.Note{
		ID:         uid.Generate(),
		Title:      strings.TrimSpace(title),
		Content:    strings.TrimSpace(content),
		Category:   category,
		ColorHex:   ColorPalette[d.rng.Intn(len(ColorPalette))],
		IsFavorite: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := d.db.Create(note).Error; err != nil {
		log.Errorf("failed to persist note %d: %v", note.ID, err)
		return note
	}

	sqlite.Flush(d.db)
	return note
}

// Update persists new title/content for an existing note. A nil category
// leaves the stored category unchanged; UpdatedAt is always refreshed.
func (d *DefaultNoteRepository) Update(note *entity.Note, title, content string, category *string) bool {
	note.Title = strings.TrimSpace(title)
	note.Content = strings.TrimSpace(content)
	if category != nil {
		note.Category = *category
	}
	note.UpdatedAt = d.now()

	if err := d.db.Save(note).Error; err != nil {
		log.Errorf("failed to update note %d: %v", note.ID, err)
		return false
	}

	sqlite.Flush(d.db)
	return true
}

// Delete removes the note from the store.
func (d *DefaultNoteRepository) Delete(note *entity.Note) bool {
	if err := d.db.Delete(note).Error; err != nil {
		log.Errorf("failed to delete note %d: %v", note.ID, err)
		return false
	}

	sqlite.Flush(d.db)
	return true
}

// ToggleFavorite flips the favorite flag in place. The flag is display
// metadata, so UpdatedAt is left alone and the listing order is unaffected;
// UpdateColumn writes the single column without touching any other field.
func (d *DefaultNoteRepository) ToggleFavorite(note *entity.Note) bool {
	note.IsFavorite = !note.IsFavorite

	if err := d.db.Model(note).UpdateColumn("is_favorite", note.IsFavorite).Error; err != nil {
		log.Errorf("failed to toggle favorite on note %d: %v", note.ID, err)
		note.IsFavorite = !note.IsFavorite
		return false
	}

	sqlite.Flush(d.db)
	return true
}

// FindByID resolves a single note, returning (nil, nil) when absent.
func (d *DefaultNoteRepository) FindByID(id int64) (*entity.Note, error) {
	var note entity.Note
	err := d.db.First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Flush commits any pending store changes; hosts call this before
// suspend/terminate.
func (d *DefaultNoteRepository) Flush() bool {
	return sqlite.Flush(d.db)
}
