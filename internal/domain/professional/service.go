package professional

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register validates and inserts a new professional record. The name is
// trimmed before storage; category and role must come from the fixed sets.
func (s *Service) Register(ctx context.Context, name, category, role string) (*Professional, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("professional name is required")
	}
	if !ValidCategory(category) {
		return nil, fmt.Errorf("unknown category %q", category)
	}
	if !ValidRole(category, role) {
		return nil, fmt.Errorf("role %q is not valid for category %q", role, category)
	}

	p := &Professional{Name: name, Category: category, Role: role}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Professional, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Professional, int, error) {
	return s.repo.List(ctx, limit, offset)
}
