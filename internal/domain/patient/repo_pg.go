package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const columns = `id, name, age, sex, history, created_at`

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patient (id, name, age, sex, history)
		VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Name, p.Age, string(p.Sex), p.History,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return r.scan(r.pool.QueryRow(ctx, `SELECT `+columns+` FROM patient WHERE id = $1`, id))
}

func (r *repoPG) FindByDetails(ctx context.Context, name string, age int, sex Sex) (*Patient, error) {
	p, err := r.scan(r.pool.QueryRow(ctx, `
		SELECT `+columns+` FROM patient
		WHERE name = $1 AND age = $2 AND sex = $3
		ORDER BY created_at, id
		LIMIT 1`,
		name, age, string(sex),
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patient`).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+columns+` FROM patient ORDER BY created_at LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		patients = append(patients, p)
	}
	return patients, total, nil
}

func (r *repoPG) scan(row pgx.Row) (*Patient, error) {
	var p Patient
	var sex string
	err := row.Scan(&p.ID, &p.Name, &p.Age, &sex, &p.History, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Sex = Sex(sex)
	return &p, nil
}

func (r *repoPG) scanRow(rows pgx.Rows) (*Patient, error) {
	var p Patient
	var sex string
	err := rows.Scan(&p.ID, &p.Name, &p.Age, &sex, &p.History, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Sex = Sex(sex)
	return &p, nil
}
