package repository

import (
	"context"
	"sync"
	"time"

	"intern-match/internal/database"
	"intern-match/internal/domain/profile"

	"github.com/google/uuid"
)

type MemoryCandidateRepository struct {
	mu    sync.RWMutex
	items []profile.Candidate
	now   func() time.Time
}

func NewMemoryCandidateRepository() *MemoryCandidateRepository {
	return &MemoryCandidateRepository{now: time.Now}
}

func (r *MemoryCandidateRepository) List(_ context.Context) ([]profile.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]profile.Candidate, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c.Clone())
	}
	return out, nil
}

func (r *MemoryCandidateRepository) Append(_ context.Context, c profile.Candidate) (profile.Candidate, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.now().UTC()
	}
	c = c.Clone()

	r.mu.Lock()
	r.items = append(r.items, c)
	r.mu.Unlock()

	return c.Clone(), nil
}

func (r *MemoryCandidateRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) List(ctx context.Context) ([]profile.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, phone, education, institution, graduation_year,
		        skills, experience, interests, availability, work_mode,
		        certifications, portfolio, linkedin, github, resume_score, created_at
		 FROM candidates
		 ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Candidate, 0)
	for rows.Next() {
		var c profile.Candidate
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.Education, &c.Institution, &c.GraduationYear,
			&c.Skills, &c.Experience, &c.Interests, &c.Availability, &c.WorkMode,
			&c.Certifications, &c.Portfolio, &c.LinkedIn, &c.GitHub, &c.ResumeScore, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		if c.Certifications == nil {
			c.Certifications = []string{}
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) Append(ctx context.Context, c profile.Candidate) (profile.Candidate, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Certifications == nil {
		c.Certifications = []string{}
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO candidates (
			id, name, email, phone, education, institution, graduation_year,
			skills, experience, interests, availability, work_mode,
			certifications, portfolio, linkedin, github, resume_score
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		 RETURNING created_at`,
		c.ID, c.Name, c.Email, c.Phone, c.Education, c.Institution, c.GraduationYear,
		c.Skills, c.Experience, c.Interests, c.Availability, c.WorkMode,
		c.Certifications, c.Portfolio, c.LinkedIn, c.GitHub, c.ResumeScore,
	)
	if err := row.Scan(&c.CreatedAt); err != nil {
		return profile.Candidate{}, err
	}
	return c, nil
}

func (r *PostgresCandidateRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

var (
	_ profile.CandidateRepository = (*MemoryCandidateRepository)(nil)
	_ profile.CandidateRepository = (*PostgresCandidateRepository)(nil)
)
