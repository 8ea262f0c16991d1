package usecase

import (
	"context"
	"log"

	"intern-match/internal/domain/matching"
	"intern-match/internal/domain/profile"
)

const (
	MessageNoPostings   = "No internships available"
	MessageNoCandidates = "No candidates available"

	maxTopN = 100
)

type PostingMatch struct {
	Posting         profile.Posting
	MatchScore      float64
	SimilarityScore float64
	SkillScore      float64
	MatchedSkills   []string
}

type CandidateMatch struct {
	Candidate       profile.Candidate
	MatchScore      float64
	SimilarityScore float64
	SkillScore      float64
	MatchedSkills   []string
}

type PairMatch struct {
	Candidate       profile.Candidate
	Posting         profile.Posting
	MatchScore      float64
	SimilarityScore float64
	SkillScore      float64
	MatchedSkills   []string
}

type MatchingUsecase interface {
	// MatchesForCandidate ranks stored postings for c. When no posting is
	// stored it returns an empty list and MessageNoPostings.
	MatchesForCandidate(ctx context.Context, c profile.Candidate, topN int) ([]PostingMatch, string, error)
	MatchesForPosting(ctx context.Context, p profile.Posting, topN int) ([]CandidateMatch, string, error)
	MatchAll(ctx context.Context, topN int) ([]PairMatch, error)
}

type Matching struct {
	candidates  profile.CandidateRepository
	postings    profile.PostingRepository
	ranker      *matching.Ranker
	defaultTopN int
	logger      *log.Logger
}

func NewMatchingUsecase(
	candidates profile.CandidateRepository,
	postings profile.PostingRepository,
	ranker *matching.Ranker,
	defaultTopN int,
	logger *log.Logger,
) *Matching {
	if logger == nil {
		logger = log.Default()
	}
	if defaultTopN <= 0 {
		defaultTopN = matching.DefaultTopN
	}
	return &Matching{
		candidates:  candidates,
		postings:    postings,
		ranker:      ranker,
		defaultTopN: defaultTopN,
		logger:      logger,
	}
}

func (u *Matching) limit(topN int) int {
	if topN <= 0 {
		return u.defaultTopN
	}
	if topN > maxTopN {
		return maxTopN
	}
	return topN
}

func (u *Matching) MatchesForCandidate(ctx context.Context, c profile.Candidate, topN int) ([]PostingMatch, string, error) {
	postings, err := u.postings.List(ctx)
	if err != nil {
		u.logger.Printf("[Matching] list postings failed err=%v", err)
		return nil, "", ErrInternal
	}
	if len(postings) == 0 {
		return []PostingMatch{}, MessageNoPostings, nil
	}

	results := u.ranker.MatchCandidate(c.Matching(), profile.PostingsForMatching(postings), u.limit(topN))

	out := make([]PostingMatch, 0, len(results))
	for _, r := range results {
		out = append(out, PostingMatch{
			Posting:         postings[r.PostingIndex],
			MatchScore:      r.CombinedScore,
			SimilarityScore: r.SimilarityScore,
			SkillScore:      r.SkillScore,
			MatchedSkills:   r.MatchedSkills,
		})
	}
	return out, "", nil
}

func (u *Matching) MatchesForPosting(ctx context.Context, p profile.Posting, topN int) ([]CandidateMatch, string, error) {
	candidates, err := u.candidates.List(ctx)
	if err != nil {
		u.logger.Printf("[Matching] list candidates failed err=%v", err)
		return nil, "", ErrInternal
	}
	if len(candidates) == 0 {
		return []CandidateMatch{}, MessageNoCandidates, nil
	}

	results := u.ranker.MatchPosting(p.Matching(), profile.CandidatesForMatching(candidates), u.limit(topN))

	out := make([]CandidateMatch, 0, len(results))
	for _, r := range results {
		out = append(out, CandidateMatch{
			Candidate:       candidates[r.CandidateIndex],
			MatchScore:      r.CombinedScore,
			SimilarityScore: r.SimilarityScore,
			SkillScore:      r.SkillScore,
			MatchedSkills:   r.MatchedSkills,
		})
	}
	return out, "", nil
}

// MatchAll ranks the full candidate x posting grid of the current snapshot.
func (u *Matching) MatchAll(ctx context.Context, topN int) ([]PairMatch, error) {
	candidates, err := u.candidates.List(ctx)
	if err != nil {
		u.logger.Printf("[Matching] list candidates failed err=%v", err)
		return nil, ErrInternal
	}
	postings, err := u.postings.List(ctx)
	if err != nil {
		u.logger.Printf("[Matching] list postings failed err=%v", err)
		return nil, ErrInternal
	}

	results := u.ranker.Rank(
		profile.CandidatesForMatching(candidates),
		profile.PostingsForMatching(postings),
		u.limit(topN),
	)

	out := make([]PairMatch, 0, len(results))
	for _, r := range results {
		out = append(out, PairMatch{
			Candidate:       candidates[r.CandidateIndex],
			Posting:         postings[r.PostingIndex],
			MatchScore:      r.CombinedScore,
			SimilarityScore: r.SimilarityScore,
			SkillScore:      r.SkillScore,
			MatchedSkills:   r.MatchedSkills,
		})
	}
	return out, nil
}

var _ MatchingUsecase = (*Matching)(nil)
