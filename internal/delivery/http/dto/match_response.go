package dto

import (
	"intern-match/internal/domain/matching"
	"intern-match/internal/usecase"
)

type MatchScores struct {
	MatchScore      float64  `json:"match_score"`
	SimilarityScore float64  `json:"similarity_score"`
	SkillScore      float64  `json:"skill_score"`
	MatchedSkills   []string `json:"matched_skills"`
}

func newMatchScores(total, sim, skill float64, matched []string) MatchScores {
	if matched == nil {
		matched = []string{}
	}
	return MatchScores{
		MatchScore:      total,
		SimilarityScore: matching.Round2(sim),
		SkillScore:      matching.Round2(skill),
		MatchedSkills:   matched,
	}
}

type PostingMatchResponse struct {
	PostingResponse
	MatchScores
}

type CandidateMatchResponse struct {
	CandidateResponse
	MatchScores
}

type PairMatchResponse struct {
	Candidate CandidateResponse `json:"candidate"`
	Posting   PostingResponse   `json:"posting"`
	MatchScores
}

type MatchListResponse[T any] struct {
	Matches      []T    `json:"matches"`
	TotalMatches int    `json:"total_matches"`
	Message      string `json:"message,omitempty"`
}

func NewPostingMatches(items []usecase.PostingMatch, message string) MatchListResponse[PostingMatchResponse] {
	out := make([]PostingMatchResponse, 0, len(items))
	for _, it := range items {
		out = append(out, PostingMatchResponse{
			PostingResponse: NewPostingResponse(it.Posting),
			MatchScores:     newMatchScores(it.MatchScore, it.SimilarityScore, it.SkillScore, it.MatchedSkills),
		})
	}
	return MatchListResponse[PostingMatchResponse]{Matches: out, TotalMatches: len(out), Message: message}
}

func NewCandidateMatches(items []usecase.CandidateMatch, message string) MatchListResponse[CandidateMatchResponse] {
	out := make([]CandidateMatchResponse, 0, len(items))
	for _, it := range items {
		out = append(out, CandidateMatchResponse{
			CandidateResponse: NewCandidateResponse(it.Candidate),
			MatchScores:       newMatchScores(it.MatchScore, it.SimilarityScore, it.SkillScore, it.MatchedSkills),
		})
	}
	return MatchListResponse[CandidateMatchResponse]{Matches: out, TotalMatches: len(out), Message: message}
}

func NewPairMatches(items []usecase.PairMatch) MatchListResponse[PairMatchResponse] {
	out := make([]PairMatchResponse, 0, len(items))
	for _, it := range items {
		out = append(out, PairMatchResponse{
			Candidate:   NewCandidateResponse(it.Candidate),
			Posting:     NewPostingResponse(it.Posting),
			MatchScores: newMatchScores(it.MatchScore, it.SimilarityScore, it.SkillScore, it.MatchedSkills),
		})
	}
	return MatchListResponse[PairMatchResponse]{Matches: out, TotalMatches: len(out)}
}
