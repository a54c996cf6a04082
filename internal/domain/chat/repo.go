package chat

import (
	"context"

	"github.com/google/uuid"
)

// MessageRepository defines the persistence interface for chat messages.
// Append-only: insert and select only.
type MessageRepository interface {
	Create(ctx context.Context, m *Message) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Message, int, error)
}

// NoteRepository defines the persistence interface for clinical notes.
// Append-only: insert and select only.
type NoteRepository interface {
	Create(ctx context.Context, n *Note) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Note, int, error)
}
