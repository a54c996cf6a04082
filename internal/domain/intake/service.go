package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marcellina/marcellina/internal/domain/chat"
	"github.com/marcellina/marcellina/internal/domain/patient"
	"github.com/marcellina/marcellina/internal/domain/professional"
)

// ErrWrongStage marks a transition attempted from a stage that does not
// offer it. Handlers map it to 409 Conflict.
var ErrWrongStage = errors.New("action not available at this stage")

// ErrInvalid marks a rejected user input. Handlers map it to 400; any other
// transition error is a storage failure and surfaces as 500.
var ErrInvalid = errors.New("invalid input")

// reviewHistoryLimit bounds how much prior context the review screen loads.
const reviewHistoryLimit = 100

// Service drives the intake wizard. Every transition validates the session's
// current stage before mutating it, so a stale or replayed request cannot
// push a session into an inconsistent state.
type Service struct {
	store         *Store
	professionals *professional.Service
	patients      *patient.Service
	chat          *chat.Service
}

func NewService(store *Store, professionals *professional.Service, patients *patient.Service, chatSvc *chat.Service) *Service {
	return &Service{
		store:         store,
		professionals: professionals,
		patients:      patients,
		chat:          chatSvc,
	}
}

// Start opens a new session at the greeting stage.
func (s *Service) Start() *Session {
	return s.store.Create()
}

// Get returns the session with the given id.
func (s *Service) Get(id string) (*Session, error) {
	parsed, err := parseSessionID(id)
	if err != nil {
		return nil, err
	}
	return s.store.Get(parsed)
}

// SubmitProfessional identifies the active professional and advances the
// session to the patient form.
func (s *Service) SubmitProfessional(ctx context.Context, sess *Session, name, category, role string) error {
	if sess.Stage != StageProGreeting {
		return fmt.Errorf("%w: submit professional from %s", ErrWrongStage, sess.Stage)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: professional name is required", ErrInvalid)
	}
	if !professional.ValidCategory(category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalid, category)
	}
	if !professional.ValidRole(category, role) {
		return fmt.Errorf("%w: role %q is not valid for category %q", ErrInvalid, role, category)
	}

	p, err := s.professionals.Register(ctx, name, category, role)
	if err != nil {
		return err
	}

	sess.ProfessionalID = p.ID
	sess.ProfessionalName = p.Name
	sess.Stage = StagePatientForm
	return nil
}

// SubmitPatientForm records the form fields and runs the matcher. A full
// (name, age, sex) match moves the session to the review stage with the
// matched patient's prior notes and conversation loaded; no match arms the
// new-patient confirmation instead. Nothing is persisted either way.
func (s *Service) SubmitPatientForm(ctx context.Context, sess *Session, form PatientForm) error {
	if sess.Stage != StagePatientForm {
		return fmt.Errorf("%w: submit patient form from %s", ErrWrongStage, sess.Stage)
	}

	probe := &patient.Patient{Name: form.Name, Age: form.Age, Sex: form.Sex}
	if err := probe.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	sess.Form = form

	match, err := s.patients.Match(ctx, form.Name, form.Age, form.Sex)
	if err != nil {
		return err
	}
	if match == nil {
		sess.Candidate = &form
		return nil
	}

	review, err := s.loadReview(ctx, match)
	if err != nil {
		return err
	}
	sess.Candidate = nil
	sess.Review = review
	sess.Stage = StagePatientReview
	return nil
}

// ConfirmCandidate creates the patient record shown in the new-patient
// confirmation and enters chat in new mode.
func (s *Service) ConfirmCandidate(ctx context.Context, sess *Session) error {
	if sess.Stage != StagePatientForm || sess.Candidate == nil {
		return fmt.Errorf("%w: no pending new-patient confirmation", ErrWrongStage)
	}

	c := sess.Candidate
	p, err := s.patients.Register(ctx, c.Name, c.Age, c.Sex, c.History)
	if err != nil {
		return err
	}

	sess.PatientID = p.ID
	sess.ChatMode = ModeNew
	sess.Candidate = nil
	sess.Stage = StageChat
	return nil
}

// EditCandidate cancels the new-patient confirmation and reopens the form.
// The cached field values are kept so the form comes back pre-filled.
func (s *Service) EditCandidate(sess *Session) error {
	if sess.Stage != StagePatientForm || sess.Candidate == nil {
		return fmt.Errorf("%w: no pending new-patient confirmation", ErrWrongStage)
	}
	sess.Candidate = nil
	return nil
}

// ContinueWithPatient accepts the reviewed match and enters chat in
// existing mode. No new record is created.
func (s *Service) ContinueWithPatient(sess *Session) error {
	if sess.Stage != StagePatientReview || sess.Review == nil {
		return fmt.Errorf("%w: continue from %s", ErrWrongStage, sess.Stage)
	}

	sess.PatientID = sess.Review.Patient.ID
	sess.ChatMode = ModeExisting
	sess.Review = nil
	sess.Stage = StageChat
	return nil
}

// RegisterNewPatient rejects the reviewed match and inserts a fresh record
// from the cached form values, then enters chat in new mode. The new row may
// share its (name, age, sex) triple with the rejected match.
func (s *Service) RegisterNewPatient(ctx context.Context, sess *Session) error {
	if sess.Stage != StagePatientReview || sess.Review == nil {
		return fmt.Errorf("%w: register new from %s", ErrWrongStage, sess.Stage)
	}

	f := sess.Form
	p, err := s.patients.Register(ctx, f.Name, f.Age, f.Sex, f.History)
	if err != nil {
		return err
	}

	sess.PatientID = p.ID
	sess.ChatMode = ModeNew
	sess.Review = nil
	sess.Stage = StageChat
	return nil
}

// Back moves the session to the previous stage. Transient branch state is
// discarded; the form field cache is kept. Chat and the greeting have no
// previous stage.
func (s *Service) Back(sess *Session) error {
	switch sess.Stage {
	case StagePatientForm:
		sess.Candidate = nil
		sess.Stage = StageProGreeting
		return nil
	case StagePatientReview:
		sess.Review = nil
		sess.Stage = StagePatientForm
		return nil
	default:
		return fmt.Errorf("%w: back from %s", ErrWrongStage, sess.Stage)
	}
}

// SendMessage runs one chat turn for the session's active patient and
// professional.
func (s *Service) SendMessage(ctx context.Context, sess *Session, text string) (string, error) {
	if sess.Stage != StageChat {
		return "", fmt.Errorf("%w: send message from %s", ErrWrongStage, sess.Stage)
	}
	return s.chat.HandleTurn(ctx, sess.PatientID, sess.ProfessionalID, sess.Notes, text)
}

func (s *Service) loadReview(ctx context.Context, p *patient.Patient) (*ReviewData, error) {
	notes, _, err := s.chat.Notes(ctx, p.ID, reviewHistoryLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("load prior notes: %w", err)
	}
	msgs, _, err := s.chat.History(ctx, p.ID, reviewHistoryLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("load prior messages: %w", err)
	}
	return &ReviewData{Patient: p, Notes: notes, Messages: msgs}, nil
}
