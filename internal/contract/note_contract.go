package contract

const (
	MaxTitleLength    = 120
	MaxContentLength  = 1_000_000
	MaxCategoryLength = 40
)

type NoteResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	ColorHex   string `json:"color_hex"`
	IsFavorite bool   `json:"is_favorite"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// Title and content are individually optional; the "at least one of them"
// rule is a domain check, not a validator tag.
type CreateNoteRequest struct {
	Title    string `json:"title" validate:"max=120"`
	Content  string `json:"content" validate:"max=1000000"`
	Category string `json:"category" validate:"omitempty,notblank,max=40"`
}

// A nil category means "leave it unchanged"; an empty one is rejected.
type UpdateNoteRequest struct {
	Title    string  `json:"title" validate:"max=120"`
	Content  string  `json:"content" validate:"max=1000000"`
	Category *string `json:"category" validate:"omitempty,notblank,max=40"`
}
