package patient

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence interface for patients. Records are
// append-only; no update or delete is exposed.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	// FindByDetails returns the patient exactly matching the (name, age, sex)
	// triple, or nil when no row matches. When duplicate rows exist the
	// earliest-created row wins.
	FindByDetails(ctx context.Context, name string, age int, sex Sex) (*Patient, error)
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
}
