package chat

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/marcellina/marcellina/internal/agent"
)

// -- Mock Repositories --

type mockMessageRepo struct {
	msgs []*Message
	fail bool
}

func (m *mockMessageRepo) Create(_ context.Context, msg *Message) error {
	if m.fail {
		return fmt.Errorf("storage down")
	}
	msg.ID = uuid.New()
	msg.CreatedAt = time.Now()
	m.msgs = append(m.msgs, msg)
	return nil
}

func (m *mockMessageRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*Message, int, error) {
	var result []*Message
	for _, msg := range m.msgs {
		if msg.PatientID == patientID {
			result = append(result, msg)
		}
	}
	return result, len(result), nil
}

type mockNoteRepo struct {
	notes []*Note
}

func (m *mockNoteRepo) Create(_ context.Context, n *Note) error {
	n.ID = uuid.New()
	n.CreatedAt = time.Now()
	m.notes = append(m.notes, n)
	return nil
}

func (m *mockNoteRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*Note, int, error) {
	var result []*Note
	for _, n := range m.notes {
		if n.PatientID == patientID {
			result = append(result, n)
		}
	}
	return result, len(result), nil
}

// mockAgent counts invocations and can draft a note through the toolset.
type mockAgent struct {
	invocations int
	reply       string
	err         error
	draftNote   string
}

func (m *mockAgent) Invoke(_ context.Context, turns []agent.Turn, tools *agent.Toolset) (string, error) {
	m.invocations++
	if m.err != nil {
		return "", m.err
	}
	if m.draftNote != "" {
		if _, err := tools.Call("clinical_note_generator", m.draftNote); err != nil {
			return "", err
		}
	}
	return m.reply, nil
}

func newTestOrchestrator(a agent.Client) (*Service, *mockMessageRepo, *mockNoteRepo) {
	msgs := &mockMessageRepo{}
	notes := &mockNoteRepo{}
	return NewService(msgs, notes, a), msgs, notes
}

// -- Tests --

func TestHandleTurn_InScope(t *testing.T) {
	a := &mockAgent{reply: "Elevated temperature suggests infection."}
	svc, msgs, notes := newTestOrchestrator(a)
	buffer := NewNoteBuffer()
	pid, prid := uuid.New(), uuid.New()

	reply, err := svc.HandleTurn(context.Background(), pid, prid, buffer, "patient has a fever")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != a.reply {
		t.Errorf("reply = %q, want agent reply", reply)
	}
	if a.invocations != 1 {
		t.Errorf("agent invocations = %d, want 1", a.invocations)
	}
	if len(msgs.msgs) != 2 {
		t.Fatalf("expected 2 logged messages, got %d", len(msgs.msgs))
	}
	if msgs.msgs[0].Sender != SenderUser || msgs.msgs[1].Sender != SenderAssistant {
		t.Error("expected user message then assistant message")
	}
	if len(notes.notes) != 0 {
		t.Errorf("expected 0 notes when no note tool fired, got %d", len(notes.notes))
	}
	if buffer.Len() != 0 {
		t.Error("buffer must be empty after a completed turn")
	}
}

func TestHandleTurn_OutOfScope_NeverInvokesAgent(t *testing.T) {
	a := &mockAgent{reply: "should never be seen"}
	svc, msgs, _ := newTestOrchestrator(a)
	buffer := NewNoteBuffer()

	reply, err := svc.HandleTurn(context.Background(), uuid.New(), uuid.New(), buffer, "best football recipe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.invocations != 0 {
		t.Errorf("agent invocations = %d, want 0", a.invocations)
	}

	lines := strings.Split(reply, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rejection lines, got %d", len(lines))
	}

	// Both the question and the rejection are still logged.
	if len(msgs.msgs) != 2 {
		t.Fatalf("expected 2 logged messages, got %d", len(msgs.msgs))
	}
	if msgs.msgs[1].Body != reply {
		t.Error("assistant log should carry the rejection text")
	}
}

func TestHandleTurn_AgentFailure(t *testing.T) {
	a := &mockAgent{err: fmt.Errorf("model unavailable")}
	svc, msgs, _ := newTestOrchestrator(a)
	buffer := NewNoteBuffer()

	reply, err := svc.HandleTurn(context.Background(), uuid.New(), uuid.New(), buffer, "patient has a fever")
	if err != nil {
		t.Fatalf("agent failure must not fail the turn: %v", err)
	}
	if !strings.Contains(reply, "Could not process") || !strings.Contains(reply, "model unavailable") {
		t.Errorf("reply = %q, want error reply embedding the reason", reply)
	}
	if a.invocations != 1 {
		t.Errorf("agent invocations = %d, want 1 (no retry)", a.invocations)
	}
	if len(msgs.msgs) != 2 {
		t.Errorf("expected turn to complete with 2 logged messages, got %d", len(msgs.msgs))
	}
}

func TestHandleTurn_FlushesDraftedNotes(t *testing.T) {
	a := &mockAgent{reply: "Drafted a note.", draftNote: "fever, productive cough"}
	svc, _, notes := newTestOrchestrator(a)
	buffer := NewNoteBuffer()
	pid, prid := uuid.New(), uuid.New()

	if _, err := svc.HandleTurn(context.Background(), pid, prid, buffer, "patient has a fever"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes.notes) != 1 {
		t.Fatalf("expected 1 flushed note, got %d", len(notes.notes))
	}
	n := notes.notes[0]
	if n.PatientID != pid || n.ProfessionalID != prid {
		t.Error("note must reference the turn's patient and professional")
	}
	if !strings.Contains(n.Body, "fever, productive cough") {
		t.Errorf("note body = %q", n.Body)
	}
	if buffer.Len() != 0 {
		t.Error("buffer must be drained after flush")
	}
}

func TestHandleTurn_StorageFailureIsFatal(t *testing.T) {
	a := &mockAgent{reply: "ok"}
	svc, msgs, _ := newTestOrchestrator(a)
	msgs.fail = true
	buffer := NewNoteBuffer()

	if _, err := svc.HandleTurn(context.Background(), uuid.New(), uuid.New(), buffer, "fever"); err == nil {
		t.Error("expected storage error to propagate")
	}
	if a.invocations != 0 {
		t.Error("agent must not be invoked when the user message cannot be logged")
	}
}

func TestNoteBuffer_Drain(t *testing.T) {
	b := NewNoteBuffer()
	b.Add("one")
	b.Add("two")

	notes := b.Drain()
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if b.Len() != 0 {
		t.Error("buffer should be empty after drain")
	}
	if got := b.Drain(); len(got) != 0 {
		t.Error("second drain should return nothing")
	}
}
