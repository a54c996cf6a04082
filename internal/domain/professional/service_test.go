package professional

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockRepo struct {
	pros map[uuid.UUID]*Professional
}

func newMockRepo() *mockRepo {
	return &mockRepo{pros: make(map[uuid.UUID]*Professional)}
}

func (m *mockRepo) Create(_ context.Context, p *Professional) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	m.pros[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Professional, error) {
	p, ok := m.pros[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Professional, int, error) {
	var result []*Professional
	for _, p := range m.pros {
		result = append(result, p)
	}
	total := len(result)
	if offset >= len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

func newTestService() *Service {
	return NewService(newMockRepo())
}

// -- Tests --

func TestRegister(t *testing.T) {
	svc := newTestService()

	p, err := svc.Register(context.Background(), "  Dr. Amaka Obi  ", "Medical Professionals", "Doctor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
	if p.Name != "Dr. Amaka Obi" {
		t.Errorf("name = %q, want trimmed name", p.Name)
	}
}

func TestRegister_EmptyName(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Register(context.Background(), "   ", "Medical Professionals", "Doctor"); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestRegister_UnknownCategory(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Register(context.Background(), "Sam", "Astrologers", "Doctor"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestRegister_RoleCategoryMismatch(t *testing.T) {
	svc := newTestService()

	// Doctor is not in the Support Staff role set.
	if _, err := svc.Register(context.Background(), "Sam", "Support Staff", "Doctor"); err == nil {
		t.Error("expected error for role outside category")
	}
}

func TestRolesFor(t *testing.T) {
	roles := RolesFor("Allied Health Professionals")
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(roles))
	}
	if roles[0] != "Physiotherapy" {
		t.Errorf("roles[0] = %q, want Physiotherapy", roles[0])
	}

	if RolesFor("Nonexistent") != nil {
		t.Error("expected nil for unknown category")
	}
}

func TestValidRole(t *testing.T) {
	if !ValidRole("Support Staff", "Receptionist") {
		t.Error("Receptionist should be valid for Support Staff")
	}
	if ValidRole("Support Staff", "Dentist") {
		t.Error("Dentist should not be valid for Support Staff")
	}
}
