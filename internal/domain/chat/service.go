package chat

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/marcellina/marcellina/internal/agent"
)

// Service is the chat orchestrator: it owns the per-turn pipeline of logging,
// gating, agent dispatch and note flushing.
type Service struct {
	messages MessageRepository
	notes    NoteRepository
	client   agent.Client
}

func NewService(messages MessageRepository, notes NoteRepository, client agent.Client) *Service {
	return &Service{messages: messages, notes: notes, client: client}
}

// HandleTurn runs one user turn end to end:
//
//  1. persist the user's message unconditionally;
//  2. classify; rejected input yields the fixed rejection reply without
//     touching the agent;
//  3. accepted input goes to the agent with the system instruction and the
//     five-tool capability set; an agent failure becomes a visible reply
//     carrying the error and is not retried;
//  4. persist the assistant's reply unconditionally;
//  5. flush notes drafted during the turn and clear the buffer.
//
// Storage errors abort the turn and propagate; the store is a required
// dependency with no fallback.
func (s *Service) HandleTurn(ctx context.Context, patientID, professionalID uuid.UUID, buffer *NoteBuffer, text string) (string, error) {
	userMsg := &Message{
		PatientID:      patientID,
		ProfessionalID: professionalID,
		Sender:         SenderUser,
		Body:           text,
	}
	if err := s.messages.Create(ctx, userMsg); err != nil {
		return "", fmt.Errorf("log user message: %w", err)
	}

	var reply string
	inScope, rejection := Classify(text)
	if !inScope {
		reply = rejection
	} else {
		turns := []agent.Turn{
			{Role: agent.RoleSystem, Content: agent.SystemPrompt},
			{Role: agent.RoleUser, Content: text},
		}
		tools := agent.NewToolset(buffer.Add)
		out, err := s.client.Invoke(ctx, turns, tools)
		if err != nil {
			reply = fmt.Sprintf("Could not process: %v", err)
		} else {
			reply = out
		}
	}

	assistantMsg := &Message{
		PatientID:      patientID,
		ProfessionalID: professionalID,
		Sender:         SenderAssistant,
		Body:           reply,
	}
	if err := s.messages.Create(ctx, assistantMsg); err != nil {
		return "", fmt.Errorf("log assistant reply: %w", err)
	}

	if err := s.flushNotes(ctx, patientID, professionalID, buffer); err != nil {
		return "", err
	}

	return reply, nil
}

// flushNotes persists every buffered SOAP note and clears the buffer.
func (s *Service) flushNotes(ctx context.Context, patientID, professionalID uuid.UUID, buffer *NoteBuffer) error {
	for _, body := range buffer.Drain() {
		note := &Note{
			PatientID:      patientID,
			ProfessionalID: professionalID,
			Body:           body,
		}
		if err := s.notes.Create(ctx, note); err != nil {
			return fmt.Errorf("flush clinical note: %w", err)
		}
	}
	return nil
}

// History returns the persisted conversation for a patient.
func (s *Service) History(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Message, int, error) {
	return s.messages.ListByPatient(ctx, patientID, limit, offset)
}

// Notes returns the persisted SOAP notes for a patient.
func (s *Service) Notes(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Note, int, error) {
	return s.notes.ListByPatient(ctx, patientID, limit, offset)
}
