package types

import "fmt"

// ------------------------------
// Response Types
// ------------------------------

// EnqueueAck acknowledges that an async job was accepted by the executor.
// It does not mean the write has reached the server yet.
type EnqueueAck struct {
	SectionID int64  `json:"sectionId"`
	Status    string `json:"status"`
}

// NoteConflictError is returned when a note save loses an optimistic-lock
// race. Latest carries the server's current note so the caller can show the
// winning version to the user.
type NoteConflictError struct {
	Message string `json:"message"`
	Latest  *Note  `json:"latestNote,omitempty"`
}

func (e *NoteConflictError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("note conflict: %s", e.Message)
	}
	return "note conflict: note was updated by someone else"
}
