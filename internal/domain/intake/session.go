package intake

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/marcellina/marcellina/internal/domain/chat"
	"github.com/marcellina/marcellina/internal/domain/patient"
)

// PatientForm is the editable patient form field cache. It survives the
// match/no-match branch and the review detour so re-entering the form
// pre-fills the previously entered values.
type PatientForm struct {
	Name    string      `json:"name"`
	Age     int         `json:"age"`
	Sex     patient.Sex `json:"sex"`
	History string      `json:"history"`
}

// ReviewData is the transient payload shown at the patient_review stage: the
// matched patient plus their prior notes and conversation.
type ReviewData struct {
	Patient  *patient.Patient `json:"patient"`
	Notes    []*chat.Note     `json:"notes"`
	Messages []*chat.Message  `json:"messages"`
}

// Session is the explicit intake session context. It holds at most one
// active professional and one active patient. A session has a single writer;
// concurrent sessions never share a Session value.
type Session struct {
	ID               uuid.UUID        `json:"id"`
	Stage            Stage            `json:"stage"`
	ProfessionalID   uuid.UUID        `json:"professional_id"`
	ProfessionalName string           `json:"professional_name"`
	PatientID        uuid.UUID        `json:"patient_id"`
	ChatMode         ChatMode         `json:"chat_mode,omitempty"`
	Form             PatientForm      `json:"form"`
	Candidate        *PatientForm     `json:"candidate,omitempty"`
	Review           *ReviewData      `json:"review,omitempty"`
	Notes            *chat.NoteBuffer `json:"-"`
	CreatedAt        time.Time        `json:"created_at"`
}

// Store is the in-memory session registry owned by the handler layer.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*Session)}
}

// Create registers a fresh session at the initial stage.
func (s *Store) Create() *Session {
	sess := &Session{
		ID:        uuid.New(),
		Stage:     StageProGreeting,
		Form:      PatientForm{Sex: patient.SexMale},
		Notes:     chat.NewNoteBuffer(),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

func parseSessionID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid session id %q", raw)
	}
	return id, nil
}

// Get returns the session with the given id.
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s not found", id)
	}
	return sess, nil
}
