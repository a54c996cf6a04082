package chat

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// -- Message Repository --

type messageRepoPG struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) MessageRepository {
	return &messageRepoPG{pool: pool}
}

const messageColumns = `id, patient_id, professional_id, sender, body, created_at`

func (r *messageRepoPG) Create(ctx context.Context, m *Message) error {
	m.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO chat_message (id, patient_id, professional_id, sender, body)
		VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.PatientID, m.ProfessionalID, string(m.Sender), m.Body,
	)
	return err
}

func (r *messageRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Message, int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM chat_message WHERE patient_id = $1`, patientID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+messageColumns+` FROM chat_message
		WHERE patient_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var msgs []*Message
	for rows.Next() {
		var m Message
		var sender string
		if err := rows.Scan(&m.ID, &m.PatientID, &m.ProfessionalID, &sender, &m.Body, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		m.Sender = Sender(sender)
		msgs = append(msgs, &m)
	}
	return msgs, total, nil
}

// -- Note Repository --

type noteRepoPG struct {
	pool *pgxpool.Pool
}

func NewNoteRepo(pool *pgxpool.Pool) NoteRepository {
	return &noteRepoPG{pool: pool}
}

const noteColumns = `id, patient_id, professional_id, body, created_at`

func (r *noteRepoPG) Create(ctx context.Context, n *Note) error {
	n.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO clinical_note (id, patient_id, professional_id, body)
		VALUES ($1, $2, $3, $4)`,
		n.ID, n.PatientID, n.ProfessionalID, n.Body,
	)
	return err
}

func (r *noteRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Note, int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM clinical_note WHERE patient_id = $1`, patientID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+noteColumns+` FROM clinical_note
		WHERE patient_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notes []*Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.PatientID, &n.ProfessionalID, &n.Body, &n.CreatedAt); err != nil {
			return nil, 0, err
		}
		notes = append(notes, &n)
	}
	return notes, total, nil
}
