package profile

import "context"

// CandidateRepository stores candidate records. List returns a point-in-time
// snapshot; later appends are never visible through a returned slice.
type CandidateRepository interface {
	List(ctx context.Context) ([]Candidate, error)
	Append(ctx context.Context, c Candidate) (Candidate, error)
	Count(ctx context.Context) (int, error)
}

type PostingRepository interface {
	List(ctx context.Context) ([]Posting, error)
	Append(ctx context.Context, p Posting) (Posting, error)
	Count(ctx context.Context) (int, error)
}
