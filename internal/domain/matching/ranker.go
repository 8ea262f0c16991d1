package matching

import (
	"log"
	"math"
	"sort"
	"time"
)

const (
	DefaultTopN = 10

	SimilarityWeight = 60.0
	SkillWeight      = 40.0
)

type Result struct {
	CandidateIndex int
	PostingIndex   int
	Candidate      Candidate
	Posting        Posting

	// CombinedScore is SimilarityScore + SkillScore rounded to 2 decimals.
	CombinedScore   float64
	SimilarityScore float64
	SkillScore      float64
	MatchedSkills   []string
}

type Observer interface {
	ObserveRanking(pairs int, duration time.Duration, degraded bool)
}

type Ranker struct {
	fit      func(docs []string) (VectorSpace, error)
	logger   *log.Logger
	observer Observer
}

func NewRanker(maxFeatures int, logger *log.Logger, observer Observer) *Ranker {
	if logger == nil {
		logger = log.Default()
	}
	return &Ranker{fit: NewVectorizer(maxFeatures).FitTransform, logger: logger, observer: observer}
}

// Rank scores every candidate/posting pair and returns the best topN,
// ordered by CombinedScore descending and by (candidate, posting) order on
// ties. It never fails: degenerate input and internal faults yield an empty
// slice.
func (r *Ranker) Rank(candidates []Candidate, postings []Posting, topN int) (out []Result) {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if len(candidates) == 0 || len(postings) == 0 || len(candidates)+len(postings) < 2 {
		return []Result{}
	}

	start := time.Now()
	pairs := len(candidates) * len(postings)
	degraded := false
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Printf("[Matching] rank degraded candidates=%d postings=%d err=%v", len(candidates), len(postings), rec)
			degraded = true
			out = []Result{}
		}
		if r.observer != nil {
			r.observer.ObserveRanking(pairs, time.Since(start), degraded)
		}
	}()

	docs := make([]string, 0, len(candidates)+len(postings))
	for _, c := range candidates {
		docs = append(docs, c.Document())
	}
	for _, p := range postings {
		docs = append(docs, p.Document())
	}

	space, err := r.fit(docs)
	if err != nil {
		r.logger.Printf("[Matching] fit vector space failed docs=%d err=%v", len(docs), err)
		degraded = true
		return []Result{}
	}
	candVecs := space.Vectors[:len(candidates)]
	postVecs := space.Vectors[len(candidates):]

	results := make([]Result, 0, pairs)
	for i, c := range candidates {
		for j, p := range postings {
			sim := Cosine(candVecs[i], postVecs[j]) * SimilarityWeight
			overlap := ScoreSkillOverlap(c.Skills, p.RequiredSkills)
			skill := overlap.Percent / 100 * SkillWeight

			results = append(results, Result{
				CandidateIndex:  i,
				PostingIndex:    j,
				Candidate:       c,
				Posting:         p,
				CombinedScore:   Round2(sim + skill),
				SimilarityScore: sim,
				SkillScore:      skill,
				MatchedSkills:   overlap.Matched,
			})
		}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].CombinedScore > results[b].CombinedScore
	})

	if len(results) > topN {
		results = results[:topN]
	}
	return results
}

// MatchCandidate ranks postings for a single candidate. The grid is ranked
// with twice the requested limit before truncating.
func (r *Ranker) MatchCandidate(candidate Candidate, postings []Posting, topN int) []Result {
	if topN <= 0 {
		topN = DefaultTopN
	}
	res := r.Rank([]Candidate{candidate}, postings, topN*2)
	if len(res) > topN {
		res = res[:topN]
	}
	return res
}

func (r *Ranker) MatchPosting(posting Posting, candidates []Candidate, topN int) []Result {
	if topN <= 0 {
		topN = DefaultTopN
	}
	res := r.Rank(candidates, []Posting{posting}, topN*2)
	if len(res) > topN {
		res = res[:topN]
	}
	return res
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
