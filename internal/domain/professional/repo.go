package professional

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence interface for professionals. Records are
// append-only; no update or delete is exposed.
type Repository interface {
	Create(ctx context.Context, p *Professional) error
	GetByID(ctx context.Context, id uuid.UUID) (*Professional, error)
	List(ctx context.Context, limit, offset int) ([]*Professional, int, error)
}
