package patient

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register validates and inserts a new patient record. Name and history are
// trimmed before storage. Registering never checks for an existing match:
// the intake flow decides whether a duplicate triple is intentional.
func (s *Service) Register(ctx context.Context, name string, age int, sex Sex, history string) (*Patient, error) {
	p := &Patient{
		Name:    strings.TrimSpace(name),
		Age:     age,
		Sex:     sex,
		History: strings.TrimSpace(history),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Match looks up an existing patient by the exact (name, age, sex) triple.
// The name is trimmed before comparison; matching is otherwise case
// sensitive. Returns (nil, nil) when no patient matches.
func (s *Service) Match(ctx context.Context, name string, age int, sex Sex) (*Patient, error) {
	return s.repo.FindByDetails(ctx, strings.TrimSpace(name), age, sex)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}
