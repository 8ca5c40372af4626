package events

import "pocketnotes/internal/domain/entity"

// ListListener receives list-screen state changes. Callbacks fire
// synchronously on the goroutine that triggered them, in registration order.
type ListListener interface {
	// OnListChanged fires on every load, even when the content is identical.
	OnListChanged()

	// OnShowDetail asks the presentation layer to open the note editor.
	// note is nil exactly when isCreatingNew is true.
	OnShowDetail(note *entity.Note, isCreatingNew bool)

	OnError(message string)
}

// DetailListener receives the outcome of an edit/create session.
type DetailListener interface {
	OnSaved()
	OnError(message string)
}
