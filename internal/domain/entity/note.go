package entity

// DefaultCategory is assigned to notes created without an explicit category.
const DefaultCategory = "General"

// Note is the single domain entity: a user-authored title/content pair plus
// display metadata. ID, CreatedAt and ColorHex are assigned once at creation
// and never change afterwards. Timestamps are epoch millis, UTC, stamped by
// the repository's clock; gorm's own second-resolution time tracking is
// disabled so it cannot overwrite them.
type Note struct {
	ID         int64  `gorm:"primaryKey"`
	Title      string
	Content    string
	Category   string `gorm:"not null"`
	ColorHex   string `gorm:"not null"`
	IsFavorite bool   `gorm:"not null"`
	CreatedAt  int64  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt  int64  `gorm:"not null;index;autoUpdateTime:false"`
}
