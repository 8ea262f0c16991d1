package repository

import (
	"context"
	"sync"
	"time"

	"intern-match/internal/database"
	"intern-match/internal/domain/profile"

	"github.com/google/uuid"
)

type MemoryPostingRepository struct {
	mu    sync.RWMutex
	items []profile.Posting
	now   func() time.Time
}

func NewMemoryPostingRepository() *MemoryPostingRepository {
	return &MemoryPostingRepository{now: time.Now}
}

func (r *MemoryPostingRepository) List(_ context.Context) ([]profile.Posting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]profile.Posting, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (r *MemoryPostingRepository) Append(_ context.Context, p profile.Posting) (profile.Posting, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.now().UTC()
	}
	p = p.Clone()

	r.mu.Lock()
	r.items = append(r.items, p)
	r.mu.Unlock()

	return p.Clone(), nil
}

func (r *MemoryPostingRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

type PostgresPostingRepository struct {
	db database.DB
}

func NewPostgresPostingRepository(db database.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{db: db}
}

func (r *PostgresPostingRepository) List(ctx context.Context) ([]profile.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, company, location, department, duration, stipend, work_mode,
		        description, required_skills, requirements, benefits, deadline,
		        interview_process, mentorship, created_at
		 FROM postings
		 ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Posting, 0)
	for rows.Next() {
		var p profile.Posting
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Company, &p.Location, &p.Department, &p.Duration, &p.Stipend, &p.WorkMode,
			&p.Description, &p.RequiredSkills, &p.Requirements, &p.Benefits, &p.Deadline,
			&p.InterviewProcess, &p.Mentorship, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		if p.Benefits == nil {
			p.Benefits = []string{}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPostingRepository) Append(ctx context.Context, p profile.Posting) (profile.Posting, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Benefits == nil {
		p.Benefits = []string{}
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO postings (
			id, title, company, location, department, duration, stipend, work_mode,
			description, required_skills, requirements, benefits, deadline,
			interview_process, mentorship
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING created_at`,
		p.ID, p.Title, p.Company, p.Location, p.Department, p.Duration, p.Stipend, p.WorkMode,
		p.Description, p.RequiredSkills, p.Requirements, p.Benefits, p.Deadline,
		p.InterviewProcess, p.Mentorship,
	)
	if err := row.Scan(&p.CreatedAt); err != nil {
		return profile.Posting{}, err
	}
	return p, nil
}

func (r *PostgresPostingRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM postings`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

var (
	_ profile.PostingRepository = (*MemoryPostingRepository)(nil)
	_ profile.PostingRepository = (*PostgresPostingRepository)(nil)
)
